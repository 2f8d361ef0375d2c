package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"labelcheck/internal/domain"
	"labelcheck/internal/port"
	"labelcheck/internal/service"
	"labelcheck/mocks"
)

func officerClaims() *service.Claims {
	return &service.Claims{
		UserID:   uuid.New(),
		Username: "officer1",
		Role:     domain.RoleOfficer,
	}
}

func userClaims() *service.Claims {
	return &service.Claims{
		UserID:   uuid.New(),
		Username: "consumer1",
		Role:     domain.RoleUser,
	}
}

func TestRecordService_List_UserScopedToOwnRecords(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	requester := userClaims()
	recordRepo.On("List", mock.Anything, mock.MatchedBy(func(f port.RecordFilter) bool {
		return f.UserID == requester.UserID
	}), 0, 20).Return([]domain.CheckRecord{}, 0, nil)

	// A user asking for another user's records gets silently rescoped.
	_, _, err := svc.List(context.Background(), requester, port.RecordFilter{UserID: uuid.New()}, 0, 20)

	assert.NoError(t, err)
	recordRepo.AssertExpectations(t)
}

func TestRecordService_List_OfficerSeesAll(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	recordRepo.On("List", mock.Anything, mock.MatchedBy(func(f port.RecordFilter) bool {
		return f.UserID == uuid.Nil
	}), 0, 20).Return([]domain.CheckRecord{}, 0, nil)

	_, _, err := svc.List(context.Background(), officerClaims(), port.RecordFilter{}, 0, 20)

	assert.NoError(t, err)
	recordRepo.AssertExpectations(t)
}

func TestRecordService_GetByID_OwnRecord(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	requester := userClaims()
	record := &domain.CheckRecord{ID: uuid.New(), UserID: requester.UserID}
	recordRepo.On("GetByID", mock.Anything, record.ID).Return(record, nil)

	got, err := svc.GetByID(context.Background(), requester, record.ID)

	assert.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestRecordService_GetByID_ForeignRecordForbidden(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	record := &domain.CheckRecord{ID: uuid.New(), UserID: uuid.New()}
	recordRepo.On("GetByID", mock.Anything, record.ID).Return(record, nil)

	got, err := svc.GetByID(context.Background(), userClaims(), record.ID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRecordService_GetByID_OfficerSeesForeignRecord(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	record := &domain.CheckRecord{ID: uuid.New(), UserID: uuid.New()}
	recordRepo.On("GetByID", mock.Anything, record.ID).Return(record, nil)

	got, err := svc.GetByID(context.Background(), officerClaims(), record.ID)

	assert.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestRecordService_ExportCSV(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	records := []domain.CheckRecord{
		{ID: uuid.New(), Username: "consumer1", ProductName: "Choco Chips", ComplianceStatus: "COMPLIANT"},
		{ID: uuid.New(), Username: "consumer1", ProductName: "Salted Crisps", ComplianceStatus: "NON-COMPLIANT: Missing MRP"},
	}
	recordRepo.On("List", mock.Anything, mock.Anything, 0, 500).Return(records, 2, nil)

	var buf bytes.Buffer
	err := svc.ExportCSV(context.Background(), officerClaims(), port.RecordFilter{}, &buf)

	require.NoError(t, err)
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, out, "Choco Chips")
	assert.Contains(t, out, "NON-COMPLIANT: Missing MRP")
}

func TestRecordService_ExportCSV_PagesThroughBatches(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	first := make([]domain.CheckRecord, 500)
	for i := range first {
		first[i] = domain.CheckRecord{ID: uuid.New(), Username: "consumer1"}
	}
	second := []domain.CheckRecord{{ID: uuid.New(), Username: "consumer1"}}

	recordRepo.On("List", mock.Anything, mock.Anything, 0, 500).Return(first, 501, nil).Once()
	recordRepo.On("List", mock.Anything, mock.Anything, 500, 500).Return(second, 501, nil).Once()

	var buf bytes.Buffer
	err := svc.ExportCSV(context.Background(), officerClaims(), port.RecordFilter{}, &buf)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 502)
	recordRepo.AssertExpectations(t)
}

func TestRecordService_ExportXLSX(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	svc := service.NewRecordService(recordRepo, nil, testS3Config())

	records := []domain.CheckRecord{
		{ID: uuid.New(), Username: "consumer1", ProductName: "Choco Chips", ComplianceStatus: "COMPLIANT"},
	}
	recordRepo.On("List", mock.Anything, mock.Anything, 0, 500).Return(records, 1, nil)

	var buf bytes.Buffer
	err := svc.ExportXLSX(context.Background(), officerClaims(), port.RecordFilter{}, &buf)

	require.NoError(t, err)
	// XLSX files are zip archives.
	assert.Equal(t, "PK", buf.String()[:2])
}

func TestRecordService_GetImageURL(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewRecordService(recordRepo, storage, testS3Config())

	requester := userClaims()
	record := &domain.CheckRecord{
		ID:         uuid.New(),
		UserID:     requester.UserID,
		ImageS3Key: "labels/u/r.jpg",
	}
	recordRepo.On("GetByID", mock.Anything, record.ID).Return(record, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-bucket", "labels/u/r.jpg", int64(900)).
		Return("https://signed.example/labels/u/r.jpg", nil)

	url, err := svc.GetImageURL(context.Background(), requester, record.ID)

	assert.NoError(t, err)
	assert.Equal(t, "https://signed.example/labels/u/r.jpg", url)
	storage.AssertExpectations(t)
}

func TestRecordService_GetImageURL_NoArchivedImage(t *testing.T) {
	recordRepo := new(mocks.MockRecordRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewRecordService(recordRepo, storage, testS3Config())

	requester := userClaims()
	record := &domain.CheckRecord{ID: uuid.New(), UserID: requester.UserID}
	recordRepo.On("GetByID", mock.Anything, record.ID).Return(record, nil)

	url, err := svc.GetImageURL(context.Background(), requester, record.ID)

	assert.Empty(t, url)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
