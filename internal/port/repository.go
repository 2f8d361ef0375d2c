package port

import (
	"context"

	"github.com/google/uuid"

	"labelcheck/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordFilter narrows record listings. Zero values mean no filtering.
type RecordFilter struct {
	UserID     uuid.UUID
	SourceType domain.SourceType
	Compliant  *bool
}

// RecordRepository defines the contract for compliance check persistence.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.CheckRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CheckRecord, error)
	List(ctx context.Context, filter RecordFilter, offset, limit int) ([]domain.CheckRecord, int, error)
}

// ComplaintRepository defines the contract for complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Complaint, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.Complaint, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus) error
}
