package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"labelcheck/internal/config"
	"labelcheck/internal/domain"
	"labelcheck/internal/export"
	"labelcheck/internal/port"
)

// RecordService exposes persisted compliance checks and their exports.
type RecordService interface {
	GetByID(ctx context.Context, requester *Claims, recordID uuid.UUID) (*domain.CheckRecord, error)
	List(ctx context.Context, requester *Claims, filter port.RecordFilter, offset, limit int) ([]domain.CheckRecord, int, error)
	ExportCSV(ctx context.Context, requester *Claims, filter port.RecordFilter, w io.Writer) error
	ExportXLSX(ctx context.Context, requester *Claims, filter port.RecordFilter, w io.Writer) error
	GetImageURL(ctx context.Context, requester *Claims, recordID uuid.UUID) (string, error)
}

type recordService struct {
	recordRepo port.RecordRepository
	storage    port.ObjectStorage
	s3cfg      *config.S3Config
}

// exportBatchSize bounds how many records each export query pulls at once.
const exportBatchSize = 500

// NewRecordService creates a new RecordService implementation. storage may be
// nil when image archiving is disabled.
func NewRecordService(recordRepo port.RecordRepository, storage port.ObjectStorage, s3cfg *config.S3Config) RecordService {
	return &recordService{
		recordRepo: recordRepo,
		storage:    storage,
		s3cfg:      s3cfg,
	}
}

// scopeFilter restricts regular users to their own records. Officers see
// everything.
func scopeFilter(requester *Claims, filter port.RecordFilter) port.RecordFilter {
	if requester.Role != domain.RoleOfficer {
		filter.UserID = requester.UserID
	}
	return filter
}

func (s *recordService) GetByID(ctx context.Context, requester *Claims, recordID uuid.UUID) (*domain.CheckRecord, error) {
	record, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RoleOfficer && record.UserID != requester.UserID {
		return nil, domain.ErrForbidden
	}
	return record, nil
}

func (s *recordService) List(ctx context.Context, requester *Claims, filter port.RecordFilter, offset, limit int) ([]domain.CheckRecord, int, error) {
	return s.recordRepo.List(ctx, scopeFilter(requester, filter), offset, limit)
}

func (s *recordService) ExportCSV(ctx context.Context, requester *Claims, filter port.RecordFilter, w io.Writer) error {
	filter = scopeFilter(requester, filter)

	if _, err := w.Write(export.BOM); err != nil {
		return fmt.Errorf("recordService.ExportCSV: %w", err)
	}

	cw := export.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("recordService.ExportCSV: %w", err)
	}

	if err := s.eachBatch(ctx, filter, func(batch []domain.CheckRecord) error {
		return cw.WriteRecords(batch)
	}); err != nil {
		return fmt.Errorf("recordService.ExportCSV: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

func (s *recordService) ExportXLSX(ctx context.Context, requester *Claims, filter port.RecordFilter, w io.Writer) error {
	filter = scopeFilter(requester, filter)

	var all []domain.CheckRecord
	if err := s.eachBatch(ctx, filter, func(batch []domain.CheckRecord) error {
		all = append(all, batch...)
		return nil
	}); err != nil {
		return fmt.Errorf("recordService.ExportXLSX: %w", err)
	}

	return export.WriteXLSX(w, all)
}

func (s *recordService) eachBatch(ctx context.Context, filter port.RecordFilter, fn func([]domain.CheckRecord) error) error {
	for offset := 0; ; offset += exportBatchSize {
		batch, total, err := s.recordRepo.List(ctx, filter, offset, exportBatchSize)
		if err != nil {
			return err
		}
		if len(batch) > 0 {
			if err := fn(batch); err != nil {
				return err
			}
		}
		if offset+len(batch) >= total || len(batch) == 0 {
			return nil
		}
	}
}

func (s *recordService) GetImageURL(ctx context.Context, requester *Claims, recordID uuid.UUID) (string, error) {
	record, err := s.GetByID(ctx, requester, recordID)
	if err != nil {
		return "", err
	}
	if record.ImageS3Key == "" || s.storage == nil {
		return "", domain.ErrNotFound
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, record.ImageS3Key, s.s3cfg.PresignExpiry)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("recordService.GetImageURL: %w", err)
	}
	return url, nil
}
