// Package ocr extracts printed text from label images via the tesseract CLI.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"labelcheck/internal/domain"
)

// TesseractRecognizer implements port.TextRecognizer by shelling out to the
// tesseract binary.
type TesseractRecognizer struct {
	binary string
	lang   string
}

// NewTesseractRecognizer creates a recognizer. Empty binary defaults to
// "tesseract" on PATH; empty lang defaults to "eng".
func NewTesseractRecognizer(binary, lang string) *TesseractRecognizer {
	if binary == "" {
		binary = "tesseract"
	}
	if lang == "" {
		lang = "eng"
	}
	return &TesseractRecognizer{binary: binary, lang: lang}
}

func (r *TesseractRecognizer) RecognizeText(ctx context.Context, imagePath string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, imagePath, "stdout", "-l", r.lang)
	out, err := cmd.Output()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s not on PATH", domain.ErrOCRUnavailable, r.binary)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %s", domain.ErrOCRUnavailable, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%w: %v", domain.ErrOCRUnavailable, err)
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", domain.ErrNoTextRecognized
	}
	return text, nil
}
