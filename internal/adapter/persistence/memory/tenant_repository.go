package memory

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"

	"github.com/hashicorp/go-memdb"
)

type TenantRepository struct {
	store *Store
}

var _ interfaces.ITenantRepository = (*TenantRepository)(nil)

func NewTenantRepository(store *Store) *TenantRepository {
	return &TenantRepository{store: store}
}

func (r *TenantRepository) Assign(_ context.Context, t entities.Tenant) (entities.Tenant, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := first[entities.Tenant](txn, tableTenants, indexID, t.ID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if existing.ID != "" {
		return entities.Tenant{}, interfaces.ErrConditionFailed
	}
	if err := bind(txn, t.ApartmentID, t.ID, t.UpdatedAt); err != nil {
		return entities.Tenant{}, err
	}
	if err := insert(txn, tableTenants, t); err != nil {
		return entities.Tenant{}, err
	}
	txn.Commit()
	return t, nil
}

// bind flips a free VACANT apartment to OCCUPIED by tenantID.
func bind(txn *memdb.Txn, apartmentID, tenantID string, at time.Time) error {
	apt, err := first[entities.Apartment](txn, tableApartments, indexID, apartmentID)
	if err != nil {
		return err
	}
	if apt.ID == "" || apt.Status != entities.ApartmentStatusVacant || apt.OccupantTenantID != "" {
		return interfaces.ErrConditionFailed
	}
	apt.Status = entities.ApartmentStatusOccupied
	apt.OccupantTenantID = tenantID
	apt.UpdatedAt = at
	return insert(txn, tableApartments, apt)
}

// release drops tenantID's binding; an OCCUPIED apartment goes back to VACANT.
func release(txn *memdb.Txn, apartmentID, tenantID string, at time.Time) error {
	apt, err := first[entities.Apartment](txn, tableApartments, indexID, apartmentID)
	if err != nil || apt.ID == "" || apt.OccupantTenantID != tenantID {
		return err
	}
	apt.OccupantTenantID = ""
	if apt.Status == entities.ApartmentStatusOccupied {
		apt.Status = entities.ApartmentStatusVacant
	}
	apt.UpdatedAt = at
	return insert(txn, tableApartments, apt)
}

func (r *TenantRepository) GetByID(_ context.Context, id string) (entities.Tenant, error) {
	return first[entities.Tenant](r.store.db.Txn(false), tableTenants, indexID, id)
}

func (r *TenantRepository) GetActiveByApartmentID(_ context.Context, apartmentID string) (entities.Tenant, error) {
	txn := r.store.db.Txn(false)
	apt, err := first[entities.Apartment](txn, tableApartments, indexID, apartmentID)
	if err != nil || apt.OccupantTenantID == "" {
		return entities.Tenant{}, err
	}
	t, err := first[entities.Tenant](txn, tableTenants, indexID, apt.OccupantTenantID)
	if err != nil || !t.IsActive {
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantRepository) List(_ context.Context) ([]entities.Tenant, error) {
	return everything[entities.Tenant](r.store.db.Txn(false), tableTenants)
}

func (r *TenantRepository) UpdatePasscode(_ context.Context, id, passcodeHash string, mustChange bool) (entities.Tenant, error) {
	return r.update(id, func(_ *memdb.Txn, t *entities.Tenant) error {
		t.PasscodeHash = passcodeHash
		t.MustChangePass = mustChange
		return nil
	})
}

func (r *TenantRepository) SetOnboardingDone(_ context.Context, id string, done bool) (entities.Tenant, error) {
	return r.update(id, func(_ *memdb.Txn, t *entities.Tenant) error {
		t.OnboardingDone = done
		return nil
	})
}

func (r *TenantRepository) SetActive(_ context.Context, id string, active bool) (entities.Tenant, error) {
	return r.update(id, func(txn *memdb.Txn, t *entities.Tenant) error {
		if t.ApartmentID != "" {
			apt, err := first[entities.Apartment](txn, tableApartments, indexID, t.ApartmentID)
			if err != nil {
				return err
			}
			switch {
			case active && apt.OccupantTenantID != t.ID:
				if err := bind(txn, t.ApartmentID, t.ID, time.Now().UTC()); err != nil {
					return err
				}
			case !active:
				if err := release(txn, t.ApartmentID, t.ID, time.Now().UTC()); err != nil {
					return err
				}
			}
		}
		t.IsActive = active
		return nil
	})
}

func (r *TenantRepository) update(id string, mutate func(*memdb.Txn, *entities.Tenant) error) (entities.Tenant, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	t, err := first[entities.Tenant](txn, tableTenants, indexID, id)
	if err != nil || t.ID == "" {
		return entities.Tenant{}, err
	}
	if err := mutate(txn, &t); err != nil {
		return entities.Tenant{}, err
	}
	t.UpdatedAt = time.Now().UTC()
	if err := insert(txn, tableTenants, t); err != nil {
		return entities.Tenant{}, err
	}
	txn.Commit()
	return t, nil
}
