package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelcheck/internal/domain"
)

// MockTextRecognizer is a mock implementation of port.TextRecognizer.
type MockTextRecognizer struct {
	mock.Mock
}

func (m *MockTextRecognizer) RecognizeText(ctx context.Context, imagePath string) (string, error) {
	args := m.Called(ctx, imagePath)
	return args.String(0), args.Error(1)
}

// MockBarcodeDecoder is a mock implementation of port.BarcodeDecoder.
type MockBarcodeDecoder struct {
	mock.Mock
}

func (m *MockBarcodeDecoder) DecodeImage(ctx context.Context, imagePath string) (string, error) {
	args := m.Called(ctx, imagePath)
	return args.String(0), args.Error(1)
}

// MockProductLookup is a mock implementation of port.ProductLookup.
type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) Lookup(ctx context.Context, barcode string) (*domain.BarcodeProduct, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BarcodeProduct), args.Error(1)
}

// MockLabelScraper is a mock implementation of port.LabelScraper.
type MockLabelScraper struct {
	mock.Mock
}

func (m *MockLabelScraper) Scrape(ctx context.Context, rawURL string) (string, error) {
	args := m.Called(ctx, rawURL)
	return args.String(0), args.Error(1)
}

// MockComplaintNotifier is a mock implementation of port.ComplaintNotifier.
type MockComplaintNotifier struct {
	mock.Mock
}

func (m *MockComplaintNotifier) NotifyComplaintFiled(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintNotifier) NotifyStatusChanged(ctx context.Context, complaint *domain.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}
