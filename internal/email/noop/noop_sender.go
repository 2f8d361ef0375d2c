package noop

import (
	"context"
	"log"

	"labelcheck/internal/domain"
	"labelcheck/internal/port"
)

type noopNotifier struct{}

// NewNoopNotifier creates a no-op ComplaintNotifier that logs to stdout.
func NewNoopNotifier() port.ComplaintNotifier {
	return &noopNotifier{}
}

func (s *noopNotifier) NotifyComplaintFiled(_ context.Context, complaint *domain.Complaint) error {
	log.Printf("[NOOP EMAIL] Complaint %s filed by %s against %q", complaint.ID, complaint.Username, complaint.ProductName)
	return nil
}

func (s *noopNotifier) NotifyStatusChanged(_ context.Context, complaint *domain.Complaint) error {
	log.Printf("[NOOP EMAIL] Complaint %s is now %s", complaint.ID, complaint.Status)
	return nil
}
