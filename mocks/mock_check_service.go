package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelcheck/internal/domain"
	"labelcheck/internal/service"
)

// MockCheckService is a mock implementation of service.CheckService.
type MockCheckService struct {
	mock.Mock
}

func (m *MockCheckService) CheckText(ctx context.Context, input service.TextCheckInput) (*domain.CheckRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckRecord), args.Error(1)
}

func (m *MockCheckService) CheckImage(ctx context.Context, input service.ImageCheckInput) (*domain.CheckRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckRecord), args.Error(1)
}

func (m *MockCheckService) CheckURL(ctx context.Context, input service.URLCheckInput) (*domain.CheckRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckRecord), args.Error(1)
}

func (m *MockCheckService) CheckBarcode(ctx context.Context, input service.BarcodeCheckInput) (*domain.CheckRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckRecord), args.Error(1)
}

func (m *MockCheckService) CheckBarcodeImage(ctx context.Context, input service.ImageCheckInput) (*domain.CheckRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckRecord), args.Error(1)
}
