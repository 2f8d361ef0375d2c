package ocr_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelcheck/internal/domain"
	"labelcheck/internal/ocr"
)

func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-tesseract")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestRecognizeText_Success(t *testing.T) {
	bin := fakeBinary(t, `printf 'Product Name: Choco Chips\nMRP: 45\n'`)
	r := ocr.NewTesseractRecognizer(bin, "eng")

	text, err := r.RecognizeText(context.Background(), "label.png")

	require.NoError(t, err)
	assert.Contains(t, text, "Product Name: Choco Chips")
}

func TestRecognizeText_EmptyOutput(t *testing.T) {
	bin := fakeBinary(t, `printf '  \n '`)
	r := ocr.NewTesseractRecognizer(bin, "")

	_, err := r.RecognizeText(context.Background(), "label.png")
	assert.ErrorIs(t, err, domain.ErrNoTextRecognized)
}

func TestRecognizeText_BinaryMissing(t *testing.T) {
	r := ocr.NewTesseractRecognizer("definitely-not-tesseract-xyz", "")

	_, err := r.RecognizeText(context.Background(), "label.png")
	assert.ErrorIs(t, err, domain.ErrOCRUnavailable)
}

func TestRecognizeText_BinaryFails(t *testing.T) {
	bin := fakeBinary(t, `echo 'cannot open image' >&2; exit 1`)
	r := ocr.NewTesseractRecognizer(bin, "")

	_, err := r.RecognizeText(context.Background(), "missing.png")
	assert.ErrorIs(t, err, domain.ErrOCRUnavailable)
	assert.Contains(t, err.Error(), "cannot open image")
}
