package port

import "context"

// TextRecognizer extracts printed text from a label image.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, imagePath string) (string, error)
}

// BarcodeDecoder locates and decodes a barcode in an image.
type BarcodeDecoder interface {
	DecodeImage(ctx context.Context, imagePath string) (string, error)
}
