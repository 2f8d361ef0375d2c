package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"labelcheck/internal/domain"
	"labelcheck/internal/label"
	"labelcheck/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordRepository.
func NewRecordRepo(db *sqlx.DB) port.RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(ctx context.Context, record *domain.CheckRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO check_records (
		id, user_id, username, source_type, raw_text,
		product_name, net_weight, mrp, inclusive_of_all_taxes,
		mfg_date, country_of_origin, manufacturer,
		compliance_status, image_s3_key, created_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8, $9,
		$10, $11, $12,
		$13, $14, $15
	)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.UserID, record.Username, record.SourceType, record.RawText,
		record.ProductName, record.NetWeight, record.MRP, record.TaxesIncluded,
		record.MfgDate, record.CountryOfOrigin, record.Manufacturer,
		record.ComplianceStatus, record.ImageS3Key, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("recordRepo.Create: %w", err)
	}
	return nil
}

func (r *recordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CheckRecord, error) {
	var record domain.CheckRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM check_records WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("recordRepo.GetByID: %w", err)
	}
	return &record, nil
}

// buildRecordWhere constructs a dynamic WHERE clause for check_records queries.
// It returns the clause string (possibly empty) and the positional arguments.
func buildRecordWhere(filter port.RecordFilter) (clause string, args []interface{}) {
	argN := 1

	add := func(cond string, val interface{}) {
		if clause == "" {
			clause = "WHERE " + fmt.Sprintf(cond, argN)
		} else {
			clause += " AND " + fmt.Sprintf(cond, argN)
		}
		args = append(args, val)
		argN++
	}

	if filter.UserID != uuid.Nil {
		add("user_id = $%d", filter.UserID)
	}
	if filter.SourceType != "" {
		add("source_type = $%d", filter.SourceType)
	}
	if filter.Compliant != nil {
		if *filter.Compliant {
			add("compliance_status = $%d", label.StatusCompliant)
		} else {
			add("compliance_status <> $%d", label.StatusCompliant)
		}
	}

	return clause, args
}

func (r *recordRepo) List(ctx context.Context, filter port.RecordFilter, offset, limit int) ([]domain.CheckRecord, int, error) {
	clause, args := buildRecordWhere(filter)

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM check_records "+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("recordRepo.List count: %w", err)
	}

	listQuery := fmt.Sprintf(
		"SELECT * FROM check_records %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		clause, len(args)+1, len(args)+2)
	listArgs := append(append([]interface{}{}, args...), limit, offset)

	var records []domain.CheckRecord
	err = r.db.SelectContext(ctx, &records, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("recordRepo.List: %w", err)
	}
	return records, total, nil
}
