package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"labelcheck/internal/domain"
)

// MockComplaintRepo is a mock implementation of port.ComplaintRepository.
type MockComplaintRepo struct {
	mock.Mock
}

func (m *MockComplaintRepo) Create(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Complaint, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Complaint), args.Int(1), args.Error(2)
}

func (m *MockComplaintRepo) List(ctx context.Context, offset, limit int) ([]domain.Complaint, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Complaint), args.Int(1), args.Error(2)
}

func (m *MockComplaintRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
