package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
	"time"
)

// IPaymentRepository abstracts persistence for Payment.

type IPaymentRepository interface {
	// Create fails with ErrConditionFailed when a payment with the same id exists.
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Payment, error)
	ListByStatusDueOn(ctx context.Context, status entities.PaymentStatus, date time.Time) ([]entities.Payment, error)
	ListByStatusDueBefore(ctx context.Context, status entities.PaymentStatus, date time.Time) ([]entities.Payment, error)
	// Settle stores the paid fields of p. Missing payments yield the zero value.
	Settle(ctx context.Context, p entities.Payment) (entities.Payment, error)
	// MarkOverdue flips PENDING to OVERDUE and reports whether it did.
	MarkOverdue(ctx context.Context, id string) (bool, error)
}
