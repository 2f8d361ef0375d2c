package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserInactive          = errors.New("user is inactive")
	ErrDuplicateUsername     = errors.New("username already exists")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed          = errors.New("file upload to storage failed")
	ErrEmptyText             = errors.New("no text supplied for compliance check")
	ErrOCRUnavailable        = errors.New("text recognizer is unavailable")
	ErrNoTextRecognized      = errors.New("no text recognized in image")
	ErrDecoderUnavailable    = errors.New("barcode decoder is unavailable")
	ErrNoBarcodeFound        = errors.New("no barcode found in image")
	ErrInvalidBarcode        = errors.New("barcode contains no digits")
	ErrProductNotFound       = errors.New("product not found")
	ErrLookupUnavailable     = errors.New("product lookup service is unavailable")
	ErrUnsupportedStorefront = errors.New("unsupported storefront URL")
	ErrPageFetchFailed       = errors.New("failed to fetch product page")
	ErrNotificationFailed    = errors.New("complaint notification failed")
	ErrInvalidStatus         = errors.New("invalid complaint status")
)
