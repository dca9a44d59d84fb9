package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
	"time"
)

// IApplicationRepository abstracts persistence for Application.

type IApplicationRepository interface {
	Create(ctx context.Context, a entities.Application) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	List(ctx context.Context) ([]entities.Application, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Application, error)
	// Review records the decision. Fails with ErrConditionFailed unless the
	// application is still PENDING.
	Review(ctx context.Context, id string, status entities.ApplicationStatus, reviewedAt time.Time, notes string) (entities.Application, error)
}
