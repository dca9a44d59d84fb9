package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
)

// Email templates known to the notifier.
const (
	TemplateApplicationStatus = "application_status"
	TemplateAgreementReady    = "agreement_ready"
	TemplateRentReminder      = "rent_reminder"
	TemplateLeaseExpiring     = "lease_expiring"
	TemplateMaintenanceUpdate = "maintenance_update"
	TemplateCredentials       = "credentials"
)

// Notification is one logical event addressed to one recipient. The email body
// is rendered from Template and Data; SMS is sent verbatim when non-empty.
type Notification struct {
	To       entities.Recipient
	Subject  string
	Template string
	Data     map[string]any
	SMS      string
}

// NotificationResult reports what each channel did.
type NotificationResult struct {
	Email  string   `json:"email,omitempty"`
	SMS    string   `json:"sms,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func (r NotificationResult) Failed() bool {
	return len(r.Errors) > 0
}

// INotifier fans notifications out to email and SMS.
type INotifier interface {
	// Notify is best effort: each channel is attempted independently and
	// failures only show up in the result.
	Notify(ctx context.Context, n Notification) NotificationResult
	// SendEmail delivers only the email channel and returns the failure, for
	// callers whose own outcome depends on delivery.
	SendEmail(ctx context.Context, n Notification) (string, error)
}
