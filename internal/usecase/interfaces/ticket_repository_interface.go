package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
)

// ITicketRepository abstracts persistence for MaintenanceTicket.

type ITicketRepository interface {
	Create(ctx context.Context, t entities.MaintenanceTicket) (entities.MaintenanceTicket, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceTicket, error)
	List(ctx context.Context) ([]entities.MaintenanceTicket, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.MaintenanceTicket, error)
	// UpdateStatus fails with ErrConditionFailed unless the stored status is from.
	UpdateStatus(ctx context.Context, id string, from, to entities.TicketStatus) (entities.MaintenanceTicket, error)
}
