package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"labelcheck/internal/domain"
	"labelcheck/internal/port"
)

// MockRecordRepo is a mock implementation of port.RecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) Create(ctx context.Context, record *domain.CheckRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CheckRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckRecord), args.Error(1)
}

func (m *MockRecordRepo) List(ctx context.Context, filter port.RecordFilter, offset, limit int) ([]domain.CheckRecord, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CheckRecord), args.Int(1), args.Error(2)
}
