package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"labelcheck/internal/config"
	"labelcheck/internal/domain"
	"labelcheck/internal/export"
	"labelcheck/internal/label"
	"labelcheck/internal/port"
)

// TextCheckInput is the DTO for raw-text compliance checks. Clients that run
// OCR on-device submit the recognized text here.
type TextCheckInput struct {
	UserID     uuid.UUID
	Username   string
	SourceType domain.SourceType
	RawText    string
}

// ImageCheckInput is the DTO for image-based checks (server-side OCR or
// barcode decoding).
type ImageCheckInput struct {
	UserID     uuid.UUID
	Username   string
	SourceType domain.SourceType
	File       multipart.File
	Header     *multipart.FileHeader
}

// URLCheckInput is the DTO for storefront product page checks.
type URLCheckInput struct {
	UserID   uuid.UUID
	Username string
	URL      string
}

// BarcodeCheckInput is the DTO for barcode number checks.
type BarcodeCheckInput struct {
	UserID     uuid.UUID
	Username   string
	SourceType domain.SourceType
	Barcode    string
}

// CheckService runs label compliance checks and persists the results.
type CheckService interface {
	CheckText(ctx context.Context, input TextCheckInput) (*domain.CheckRecord, error)
	CheckImage(ctx context.Context, input ImageCheckInput) (*domain.CheckRecord, error)
	CheckURL(ctx context.Context, input URLCheckInput) (*domain.CheckRecord, error)
	CheckBarcode(ctx context.Context, input BarcodeCheckInput) (*domain.CheckRecord, error)
	CheckBarcodeImage(ctx context.Context, input ImageCheckInput) (*domain.CheckRecord, error)
}

type checkService struct {
	recordRepo port.RecordRepository
	recognizer port.TextRecognizer
	decoder    port.BarcodeDecoder
	lookup     port.ProductLookup
	scraper    port.LabelScraper
	storage    port.ObjectStorage
	appender   *export.Appender
	s3cfg      *config.S3Config
}

// NewCheckService creates a new CheckService implementation. storage may be
// nil when image archiving is disabled.
func NewCheckService(
	recordRepo port.RecordRepository,
	recognizer port.TextRecognizer,
	decoder port.BarcodeDecoder,
	lookup port.ProductLookup,
	scraper port.LabelScraper,
	storage port.ObjectStorage,
	appender *export.Appender,
	s3cfg *config.S3Config,
) CheckService {
	return &checkService{
		recordRepo: recordRepo,
		recognizer: recognizer,
		decoder:    decoder,
		lookup:     lookup,
		scraper:    scraper,
		storage:    storage,
		appender:   appender,
		s3cfg:      s3cfg,
	}
}

func (s *checkService) CheckText(ctx context.Context, input TextCheckInput) (*domain.CheckRecord, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return nil, domain.ErrEmptyText
	}
	if !domain.ValidSourceTypes[input.SourceType] {
		input.SourceType = domain.SourceCameraOCR
	}

	fields := label.Extract(input.RawText)
	eval := label.Evaluate(fields)
	record := s.assembleRecord(input.UserID, input.Username, input.SourceType, input.RawText, fields, eval)

	if err := s.persist(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *checkService) CheckImage(ctx context.Context, input ImageCheckInput) (*domain.CheckRecord, error) {
	imagePath, cleanup, err := s.saveTempImage(input.File, input.Header)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	rawText, err := s.recognizer.RecognizeText(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	fields := label.Extract(rawText)
	eval := label.Evaluate(fields)
	if input.SourceType == "" {
		input.SourceType = domain.SourceUploadOCR
	}
	record := s.assembleRecord(input.UserID, input.Username, input.SourceType, rawText, fields, eval)

	s.archiveImage(ctx, record, imagePath, input.Header)

	if err := s.persist(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *checkService) CheckURL(ctx context.Context, input URLCheckInput) (*domain.CheckRecord, error) {
	rawText, err := s.scraper.Scrape(ctx, input.URL)
	if err != nil {
		return nil, err
	}

	fields := label.Extract(rawText)
	eval := label.Evaluate(fields)
	record := s.assembleRecord(input.UserID, input.Username, domain.SourceURLScrape, rawText, fields, eval)

	if err := s.persist(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *checkService) CheckBarcode(ctx context.Context, input BarcodeCheckInput) (*domain.CheckRecord, error) {
	product, err := s.lookup.Lookup(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}

	fields, eval, rawText := label.MergeStructured(product)
	sourceType := input.SourceType
	if !domain.ValidSourceTypes[sourceType] {
		sourceType = domain.SourceBarcodeScan
	}
	record := s.assembleRecord(input.UserID, input.Username, sourceType, rawText, fields, eval)

	if err := s.persist(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *checkService) CheckBarcodeImage(ctx context.Context, input ImageCheckInput) (*domain.CheckRecord, error) {
	imagePath, cleanup, err := s.saveTempImage(input.File, input.Header)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	barcode, err := s.decoder.DecodeImage(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	sourceType := input.SourceType
	if !domain.ValidSourceTypes[sourceType] {
		sourceType = domain.SourceBarcodeCamera
	}
	return s.CheckBarcode(ctx, BarcodeCheckInput{
		UserID:     input.UserID,
		Username:   input.Username,
		SourceType: sourceType,
		Barcode:    barcode,
	})
}

func (s *checkService) assembleRecord(
	userID uuid.UUID,
	username string,
	sourceType domain.SourceType,
	rawText string,
	fields label.Fields,
	eval label.Evaluation,
) *domain.CheckRecord {
	return &domain.CheckRecord{
		ID:               uuid.New(),
		UserID:           userID,
		Username:         username,
		SourceType:       sourceType,
		RawText:          rawText,
		ProductName:      fields.ProductName,
		NetWeight:        fields.NetWeight,
		MRP:              fields.MRP,
		TaxesIncluded:    fields.TaxesIncluded,
		MfgDate:          fields.MfgDate,
		CountryOfOrigin:  fields.CountryOfOrigin,
		Manufacturer:     fields.Manufacturer,
		ComplianceStatus: eval.Status,
		CreatedAt:        time.Now().UTC(),
	}
}

func (s *checkService) persist(ctx context.Context, record *domain.CheckRecord) error {
	if err := s.recordRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("checkService.persist: %w", err)
	}

	// The flat-file log is best effort. A failed append never fails the check.
	if s.appender != nil {
		if err := s.appender.Append(record); err != nil {
			log.Printf("checkService.persist: csv append failed for record %s: %v", record.ID, err)
		}
	}
	return nil
}

// saveTempImage validates the upload and writes it to a temp file so the
// external recognizer binaries can read it. The caller must invoke cleanup.
func (s *checkService) saveTempImage(file multipart.File, header *multipart.FileHeader) (string, func(), error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return "", nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		return "", nil, domain.ErrFileTooLarge
	}

	// Magic-byte check, extension alone is not trustworthy
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", nil, fmt.Errorf("reading file header: %w", err)
	}
	if _, ok := domain.AllowedContentTypes[http.DetectContentType(buf[:n])]; !ok {
		return "", nil, domain.ErrUnsupportedFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", nil, fmt.Errorf("seeking file: %w", err)
	}

	tmp, err := os.CreateTemp("", "labelcheck-*."+ext)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	cleanup := func() { _ = os.Remove(tmp.Name()) }
	return tmp.Name(), cleanup, nil
}

// archiveImage uploads the checked image to S3 when archiving is enabled.
// Archive failures never fail the check.
func (s *checkService) archiveImage(ctx context.Context, record *domain.CheckRecord, imagePath string, header *multipart.FileHeader) {
	if s.storage == nil {
		return
	}

	f, err := os.Open(imagePath)
	if err != nil {
		log.Printf("checkService.archiveImage: opening image: %v", err)
		return
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	contentType := domain.AllowedFileTypes[domain.AllowedExtensions[ext]]
	key := fmt.Sprintf("labels/%s/%s.%s", record.UserID, record.ID, ext)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        f,
		ContentType: contentType,
		Size:        header.Size,
	})
	if err != nil {
		log.Printf("checkService.archiveImage: upload failed for record %s: %v", record.ID, err)
		return
	}
	record.ImageS3Key = key
}
