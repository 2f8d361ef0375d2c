package port

import (
	"context"

	"labelcheck/internal/domain"
)

// ComplaintNotifier notifies the enforcement inbox about complaint activity.
type ComplaintNotifier interface {
	NotifyComplaintFiled(ctx context.Context, complaint *domain.Complaint) error
	NotifyStatusChanged(ctx context.Context, complaint *domain.Complaint) error
}
