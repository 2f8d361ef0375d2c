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
	"labelcheck/internal/port"
)

type complaintRepo struct {
	db *sqlx.DB
}

// NewComplaintRepo creates a new PostgreSQL-backed ComplaintRepository.
func NewComplaintRepo(db *sqlx.DB) port.ComplaintRepository {
	return &complaintRepo{db: db}
}

func (r *complaintRepo) Create(ctx context.Context, complaint *domain.Complaint) error {
	if complaint.ID == uuid.Nil {
		complaint.ID = uuid.New()
	}
	now := time.Now().UTC()
	complaint.FiledAt = now
	complaint.UpdatedAt = now
	if complaint.Status == "" {
		complaint.Status = domain.ComplaintOpen
	}

	query := `INSERT INTO complaints (
		id, user_id, username, product_name, mrp, net_quantity,
		purchased_platform, date_of_order, date_of_delivery,
		issue_description, status, filed_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		complaint.ID, complaint.UserID, complaint.Username,
		complaint.ProductName, complaint.MRP, complaint.NetQuantity,
		complaint.PurchasedPlatform, complaint.DateOfOrder, complaint.DateOfDelivery,
		complaint.IssueDescription, complaint.Status, complaint.FiledAt, complaint.UpdatedAt)
	if err != nil {
		return fmt.Errorf("complaintRepo.Create: %w", err)
	}
	return nil
}

func (r *complaintRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	var complaint domain.Complaint
	err := r.db.GetContext(ctx, &complaint,
		"SELECT * FROM complaints WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("complaintRepo.GetByID: %w", err)
	}
	return &complaint, nil
}

func (r *complaintRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Complaint, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM complaints WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("complaintRepo.ListByUser count: %w", err)
	}

	var complaints []domain.Complaint
	err = r.db.SelectContext(ctx, &complaints,
		"SELECT * FROM complaints WHERE user_id = $1 ORDER BY filed_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("complaintRepo.ListByUser: %w", err)
	}
	return complaints, total, nil
}

func (r *complaintRepo) List(ctx context.Context, offset, limit int) ([]domain.Complaint, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM complaints")
	if err != nil {
		return nil, 0, fmt.Errorf("complaintRepo.List count: %w", err)
	}

	var complaints []domain.Complaint
	err = r.db.SelectContext(ctx, &complaints,
		"SELECT * FROM complaints ORDER BY filed_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("complaintRepo.List: %w", err)
	}
	return complaints, total, nil
}

func (r *complaintRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE complaints SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("complaintRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
