package memory

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
)

type AgreementRepository struct {
	store *Store
}

var _ interfaces.IAgreementRepository = (*AgreementRepository)(nil)

func NewAgreementRepository(store *Store) *AgreementRepository {
	return &AgreementRepository{store: store}
}

func (r *AgreementRepository) Create(_ context.Context, a entities.Agreement) (entities.Agreement, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := first[entities.Agreement](txn, tableAgreements, indexID, a.ID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if existing.ID != "" {
		return entities.Agreement{}, interfaces.ErrConditionFailed
	}
	if err := insert(txn, tableAgreements, a); err != nil {
		return entities.Agreement{}, err
	}
	txn.Commit()
	return a, nil
}

func (r *AgreementRepository) GetByID(_ context.Context, id string) (entities.Agreement, error) {
	return first[entities.Agreement](r.store.db.Txn(false), tableAgreements, indexID, id)
}

func (r *AgreementRepository) List(_ context.Context) ([]entities.Agreement, error) {
	return everything[entities.Agreement](r.store.db.Txn(false), tableAgreements)
}

func (r *AgreementRepository) ListByTenantID(_ context.Context, tenantID string) ([]entities.Agreement, error) {
	return all[entities.Agreement](r.store.db.Txn(false), tableAgreements, indexTenantID, tenantID)
}

func (r *AgreementRepository) ListByStatusLeaseEndOnOrBefore(_ context.Context, status entities.AgreementStatus, date time.Time) ([]entities.Agreement, error) {
	list, err := all[entities.Agreement](r.store.db.Txn(false), tableAgreements, indexStatus, string(status))
	if err != nil {
		return nil, err
	}
	limit := entities.DateOf(date)
	out := list[:0]
	for _, a := range list {
		if !entities.DateOf(a.LeaseEnd).After(limit) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AgreementRepository) Transition(_ context.Context, a entities.Agreement, from entities.AgreementStatus) (entities.Agreement, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	cur, err := first[entities.Agreement](txn, tableAgreements, indexID, a.ID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if cur.ID == "" || cur.Status != from {
		return entities.Agreement{}, interfaces.ErrConditionFailed
	}
	if err := insert(txn, tableAgreements, a); err != nil {
		return entities.Agreement{}, err
	}
	txn.Commit()
	return a, nil
}
