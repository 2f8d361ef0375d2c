package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"labelcheck/internal/domain"
	"labelcheck/internal/port"
)

// FileComplaintInput is the DTO for filing a consumer complaint.
type FileComplaintInput struct {
	ProductName       string `json:"product_name" binding:"required"`
	MRP               string `json:"mrp"`
	NetQuantity       string `json:"net_quantity"`
	PurchasedPlatform string `json:"purchased_platform"`
	DateOfOrder       string `json:"date_of_order"`
	DateOfDelivery    string `json:"date_of_delivery"`
	IssueDescription  string `json:"issue_description" binding:"required"`
}

// UpdateComplaintStatusInput is the DTO for officer status changes.
type UpdateComplaintStatusInput struct {
	Status domain.ComplaintStatus `json:"status" binding:"required"`
}

// ComplaintService manages consumer complaints.
type ComplaintService interface {
	File(ctx context.Context, requester *Claims, input FileComplaintInput) (*domain.Complaint, error)
	GetByID(ctx context.Context, requester *Claims, complaintID uuid.UUID) (*domain.Complaint, error)
	List(ctx context.Context, requester *Claims, offset, limit int) ([]domain.Complaint, int, error)
	UpdateStatus(ctx context.Context, requester *Claims, complaintID uuid.UUID, input UpdateComplaintStatusInput) (*domain.Complaint, error)
}

type complaintService struct {
	complaintRepo port.ComplaintRepository
	notifier      port.ComplaintNotifier
}

// NewComplaintService creates a new ComplaintService implementation.
func NewComplaintService(complaintRepo port.ComplaintRepository, notifier port.ComplaintNotifier) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		notifier:      notifier,
	}
}

func (s *complaintService) File(ctx context.Context, requester *Claims, input FileComplaintInput) (*domain.Complaint, error) {
	complaint := &domain.Complaint{
		UserID:            requester.UserID,
		Username:          requester.Username,
		ProductName:       input.ProductName,
		MRP:               input.MRP,
		NetQuantity:       input.NetQuantity,
		PurchasedPlatform: input.PurchasedPlatform,
		DateOfOrder:       input.DateOfOrder,
		DateOfDelivery:    input.DateOfDelivery,
		IssueDescription:  input.IssueDescription,
		Status:            domain.ComplaintOpen,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("complaintService.File: %w", err)
	}

	// Notification failures are logged, not surfaced. The complaint is filed.
	if err := s.notifier.NotifyComplaintFiled(ctx, complaint); err != nil {
		log.Printf("complaintService.File: notify failed for complaint %s: %v", complaint.ID, err)
	}
	return complaint, nil
}

func (s *complaintService) GetByID(ctx context.Context, requester *Claims, complaintID uuid.UUID) (*domain.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RoleOfficer && complaint.UserID != requester.UserID {
		return nil, domain.ErrForbidden
	}
	return complaint, nil
}

func (s *complaintService) List(ctx context.Context, requester *Claims, offset, limit int) ([]domain.Complaint, int, error) {
	if requester.Role == domain.RoleOfficer {
		return s.complaintRepo.List(ctx, offset, limit)
	}
	return s.complaintRepo.ListByUser(ctx, requester.UserID, offset, limit)
}

func (s *complaintService) UpdateStatus(ctx context.Context, requester *Claims, complaintID uuid.UUID, input UpdateComplaintStatusInput) (*domain.Complaint, error) {
	if requester.Role != domain.RoleOfficer {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidComplaintStatuses[input.Status] {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.complaintRepo.UpdateStatus(ctx, complaintID, input.Status); err != nil {
		return nil, err
	}

	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyStatusChanged(ctx, complaint); err != nil {
		log.Printf("complaintService.UpdateStatus: notify failed for complaint %s: %v", complaint.ID, err)
	}
	return complaint, nil
}
