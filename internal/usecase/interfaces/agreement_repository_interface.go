package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
	"time"
)

// IAgreementRepository abstracts persistence for Agreement.

type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Agreement, error)
	// ListByStatusLeaseEndOnOrBefore backs the lease-expiry sweep.
	ListByStatusLeaseEndOnOrBefore(ctx context.Context, status entities.AgreementStatus, date time.Time) ([]entities.Agreement, error)
	// Transition persists a, provided the stored status is still from.
	// Fails with ErrConditionFailed otherwise.
	Transition(ctx context.Context, a entities.Agreement, from entities.AgreementStatus) (entities.Agreement, error)
}
