package memory

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
)

type PaymentRepository struct {
	store *Store
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := first[entities.Payment](txn, tablePayments, indexID, p.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		return entities.Payment{}, interfaces.ErrConditionFailed
	}
	if err := insert(txn, tablePayments, p); err != nil {
		return entities.Payment{}, err
	}
	txn.Commit()
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id string) (entities.Payment, error) {
	return first[entities.Payment](r.store.db.Txn(false), tablePayments, indexID, id)
}

func (r *PaymentRepository) List(_ context.Context) ([]entities.Payment, error) {
	return everything[entities.Payment](r.store.db.Txn(false), tablePayments)
}

func (r *PaymentRepository) ListByTenantID(_ context.Context, tenantID string) ([]entities.Payment, error) {
	return all[entities.Payment](r.store.db.Txn(false), tablePayments, indexTenantID, tenantID)
}

func (r *PaymentRepository) ListByStatusDueOn(_ context.Context, status entities.PaymentStatus, date time.Time) ([]entities.Payment, error) {
	day := entities.DateOf(date)
	return r.byStatus(status, func(due time.Time) bool { return due.Equal(day) })
}

func (r *PaymentRepository) ListByStatusDueBefore(_ context.Context, status entities.PaymentStatus, date time.Time) ([]entities.Payment, error) {
	day := entities.DateOf(date)
	return r.byStatus(status, func(due time.Time) bool { return due.Before(day) })
}

func (r *PaymentRepository) byStatus(status entities.PaymentStatus, keep func(due time.Time) bool) ([]entities.Payment, error) {
	list, err := all[entities.Payment](r.store.db.Txn(false), tablePayments, indexStatus, string(status))
	if err != nil {
		return nil, err
	}
	out := list[:0]
	for _, p := range list {
		if keep(entities.DateOf(p.DueDate)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PaymentRepository) Settle(_ context.Context, p entities.Payment) (entities.Payment, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	cur, err := first[entities.Payment](txn, tablePayments, indexID, p.ID)
	if err != nil || cur.ID == "" {
		return entities.Payment{}, err
	}
	cur.Status = p.Status
	cur.AmountPaid = p.AmountPaid
	cur.PaidAt = p.PaidAt
	cur.Method = p.Method
	if err := insert(txn, tablePayments, cur); err != nil {
		return entities.Payment{}, err
	}
	txn.Commit()
	return cur, nil
}

func (r *PaymentRepository) MarkOverdue(_ context.Context, id string) (bool, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	cur, err := first[entities.Payment](txn, tablePayments, indexID, id)
	if err != nil {
		return false, err
	}
	if cur.ID == "" || cur.Status != entities.PaymentStatusPending {
		return false, nil
	}
	cur.Status = entities.PaymentStatusOverdue
	if err := insert(txn, tablePayments, cur); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}
