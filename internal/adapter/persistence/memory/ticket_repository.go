package memory

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
)

type TicketRepository struct {
	store *Store
}

var _ interfaces.ITicketRepository = (*TicketRepository)(nil)

func NewTicketRepository(store *Store) *TicketRepository {
	return &TicketRepository{store: store}
}

func (r *TicketRepository) Create(_ context.Context, t entities.MaintenanceTicket) (entities.MaintenanceTicket, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := first[entities.MaintenanceTicket](txn, tableTickets, indexID, t.ID)
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	if existing.ID != "" {
		return entities.MaintenanceTicket{}, interfaces.ErrConditionFailed
	}
	if err := insert(txn, tableTickets, t); err != nil {
		return entities.MaintenanceTicket{}, err
	}
	txn.Commit()
	return t, nil
}

func (r *TicketRepository) GetByID(_ context.Context, id string) (entities.MaintenanceTicket, error) {
	return first[entities.MaintenanceTicket](r.store.db.Txn(false), tableTickets, indexID, id)
}

func (r *TicketRepository) List(_ context.Context) ([]entities.MaintenanceTicket, error) {
	return everything[entities.MaintenanceTicket](r.store.db.Txn(false), tableTickets)
}

func (r *TicketRepository) ListByTenantID(_ context.Context, tenantID string) ([]entities.MaintenanceTicket, error) {
	return all[entities.MaintenanceTicket](r.store.db.Txn(false), tableTickets, indexTenantID, tenantID)
}

func (r *TicketRepository) UpdateStatus(_ context.Context, id string, from, to entities.TicketStatus) (entities.MaintenanceTicket, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	cur, err := first[entities.MaintenanceTicket](txn, tableTickets, indexID, id)
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	if cur.ID == "" || cur.Status != from {
		return entities.MaintenanceTicket{}, interfaces.ErrConditionFailed
	}
	cur.Status = to
	cur.UpdatedAt = time.Now().UTC()
	if err := insert(txn, tableTickets, cur); err != nil {
		return entities.MaintenanceTicket{}, err
	}
	txn.Commit()
	return cur, nil
}
