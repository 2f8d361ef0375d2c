package domain

// FileType represents the allowed image types for upload.
type FileType string

const (
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"image/jpeg": FileTypeJPG,
	"image/png":  FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// UserRole defines the two roles the system distinguishes.
type UserRole string

const (
	RoleOfficer UserRole = "OFFICER"
	RoleUser    UserRole = "USER"
)

// ValidUserRoles is the closed set of assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleOfficer: true,
	RoleUser:    true,
}

// SourceType records how the label text of a check was obtained.
type SourceType string

const (
	SourceCameraOCR     SourceType = "Camera OCR"
	SourceUploadOCR     SourceType = "Uploaded Image OCR"
	SourceURLScrape     SourceType = "Product URL Scrape"
	SourceBarcodeScan   SourceType = "Barcode Scan"
	SourceBarcodeCamera SourceType = "Barcode Camera Scan"
	SourceBarcodeManual SourceType = "Barcode Manual Entry"
)

// ValidSourceTypes is the closed set of check sources.
var ValidSourceTypes = map[SourceType]bool{
	SourceCameraOCR:     true,
	SourceUploadOCR:     true,
	SourceURLScrape:     true,
	SourceBarcodeScan:   true,
	SourceBarcodeCamera: true,
	SourceBarcodeManual: true,
}

// ComplaintStatus represents the lifecycle of a consumer complaint.
type ComplaintStatus string

const (
	ComplaintOpen     ComplaintStatus = "OPEN"
	ComplaintResolved ComplaintStatus = "RESOLVED"
	ComplaintRejected ComplaintStatus = "REJECTED"
)

// ValidComplaintStatuses is the closed set of complaint states.
var ValidComplaintStatuses = map[ComplaintStatus]bool{
	ComplaintOpen:     true,
	ComplaintResolved: true,
	ComplaintRejected: true,
}
