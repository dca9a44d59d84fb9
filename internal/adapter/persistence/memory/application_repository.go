package memory

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
)

type ApplicationRepository struct {
	store *Store
}

var _ interfaces.IApplicationRepository = (*ApplicationRepository)(nil)

func NewApplicationRepository(store *Store) *ApplicationRepository {
	return &ApplicationRepository{store: store}
}

func (r *ApplicationRepository) Create(_ context.Context, a entities.Application) (entities.Application, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := first[entities.Application](txn, tableApplications, indexID, a.ID)
	if err != nil {
		return entities.Application{}, err
	}
	if existing.ID != "" {
		return entities.Application{}, interfaces.ErrConditionFailed
	}
	if err := insert(txn, tableApplications, a); err != nil {
		return entities.Application{}, err
	}
	txn.Commit()
	return a, nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id string) (entities.Application, error) {
	return first[entities.Application](r.store.db.Txn(false), tableApplications, indexID, id)
}

func (r *ApplicationRepository) List(_ context.Context) ([]entities.Application, error) {
	return everything[entities.Application](r.store.db.Txn(false), tableApplications)
}

func (r *ApplicationRepository) ListByTenantID(_ context.Context, tenantID string) ([]entities.Application, error) {
	return all[entities.Application](r.store.db.Txn(false), tableApplications, indexTenantID, tenantID)
}

func (r *ApplicationRepository) Review(_ context.Context, id string, status entities.ApplicationStatus, reviewedAt time.Time, notes string) (entities.Application, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	a, err := first[entities.Application](txn, tableApplications, indexID, id)
	if err != nil {
		return entities.Application{}, err
	}
	if a.ID == "" || a.Status != entities.ApplicationStatusPending {
		return entities.Application{}, interfaces.ErrConditionFailed
	}
	a.Status = status
	a.ReviewedAt = &reviewedAt
	a.ReviewNotes = notes
	if err := insert(txn, tableApplications, a); err != nil {
		return entities.Application{}, err
	}
	txn.Commit()
	return a, nil
}
