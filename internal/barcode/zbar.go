// Package barcode decodes product barcodes from images via the zbarimg CLI.
package barcode

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"labelcheck/internal/domain"
)

// zbarimg exits with 4 when it scanned the image but found no symbols.
const zbarNoSymbolsExit = 4

// ZbarDecoder implements port.BarcodeDecoder by shelling out to zbarimg.
type ZbarDecoder struct {
	binary string
}

// NewZbarDecoder creates a decoder. Empty binary defaults to "zbarimg" on PATH.
func NewZbarDecoder(binary string) *ZbarDecoder {
	if binary == "" {
		binary = "zbarimg"
	}
	return &ZbarDecoder{binary: binary}
}

func (d *ZbarDecoder) DecodeImage(ctx context.Context, imagePath string) (string, error) {
	cmd := exec.CommandContext(ctx, d.binary, "--raw", "-q", imagePath)
	out, err := cmd.Output()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s not on PATH", domain.ErrDecoderUnavailable, d.binary)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() == zbarNoSymbolsExit {
				return "", domain.ErrNoBarcodeFound
			}
			return "", fmt.Errorf("%w: %s: %s", domain.ErrDecoderUnavailable, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%w: %v", domain.ErrDecoderUnavailable, err)
	}

	// zbarimg prints one decoded symbol per line; the first one wins.
	code, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	if code == "" {
		return "", domain.ErrNoBarcodeFound
	}
	return strings.TrimSpace(code), nil
}
