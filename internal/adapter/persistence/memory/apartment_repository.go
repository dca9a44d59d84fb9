package memory

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
)

type ApartmentRepository struct {
	store *Store
}

var _ interfaces.IApartmentRepository = (*ApartmentRepository)(nil)

func NewApartmentRepository(store *Store) *ApartmentRepository {
	return &ApartmentRepository{store: store}
}

func (r *ApartmentRepository) Create(_ context.Context, a entities.Apartment) (entities.Apartment, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	byID, err := first[entities.Apartment](txn, tableApartments, indexID, a.ID)
	if err != nil {
		return entities.Apartment{}, err
	}
	byRoom, err := first[entities.Apartment](txn, tableApartments, indexRoomNumber, a.RoomNumber)
	if err != nil {
		return entities.Apartment{}, err
	}
	if byID.ID != "" || byRoom.ID != "" {
		return entities.Apartment{}, interfaces.ErrConditionFailed
	}
	if err := insert(txn, tableApartments, a); err != nil {
		return entities.Apartment{}, err
	}
	txn.Commit()
	return a, nil
}

func (r *ApartmentRepository) GetByID(_ context.Context, id string) (entities.Apartment, error) {
	txn := r.store.db.Txn(false)
	return first[entities.Apartment](txn, tableApartments, indexID, id)
}

func (r *ApartmentRepository) GetByRoomNumber(_ context.Context, roomNumber string) (entities.Apartment, error) {
	txn := r.store.db.Txn(false)
	return first[entities.Apartment](txn, tableApartments, indexRoomNumber, roomNumber)
}

func (r *ApartmentRepository) List(_ context.Context, status entities.ApartmentStatus) ([]entities.Apartment, error) {
	txn := r.store.db.Txn(false)
	if status == "" {
		return everything[entities.Apartment](txn, tableApartments)
	}
	return all[entities.Apartment](txn, tableApartments, indexStatus, string(status))
}

func (r *ApartmentRepository) UpdateDetails(_ context.Context, a entities.Apartment) (entities.Apartment, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	cur, err := first[entities.Apartment](txn, tableApartments, indexID, a.ID)
	if err != nil || cur.ID == "" {
		return entities.Apartment{}, err
	}
	cur.UnitName = a.UnitName
	cur.UnitNumber = a.UnitNumber
	cur.Floor = a.Floor
	cur.Type = a.Type
	cur.MonthlyRent = a.MonthlyRent
	cur.Water = a.Water
	cur.Sewage = a.Sewage
	cur.Cleaning = a.Cleaning
	cur.UpdatedAt = a.UpdatedAt
	if err := insert(txn, tableApartments, cur); err != nil {
		return entities.Apartment{}, err
	}
	txn.Commit()
	return cur, nil
}

func (r *ApartmentRepository) UpdateStatus(_ context.Context, id string, expected, next entities.ApartmentStatus) (entities.Apartment, error) {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	cur, err := first[entities.Apartment](txn, tableApartments, indexID, id)
	if err != nil {
		return entities.Apartment{}, err
	}
	if cur.ID == "" || cur.Status != expected {
		return entities.Apartment{}, interfaces.ErrConditionFailed
	}
	if next == entities.ApartmentStatusVacant && cur.OccupantTenantID != "" {
		return entities.Apartment{}, interfaces.ErrConditionFailed
	}
	if next == entities.ApartmentStatusOccupied && cur.OccupantTenantID == "" {
		return entities.Apartment{}, interfaces.ErrConditionFailed
	}
	cur.Status = next
	cur.UpdatedAt = time.Now().UTC()
	if err := insert(txn, tableApartments, cur); err != nil {
		return entities.Apartment{}, err
	}
	txn.Commit()
	return cur, nil
}

func (r *ApartmentRepository) Delete(_ context.Context, id string) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll(tableApartments, indexID, id); err != nil {
		return err
	}
	txn.Commit()
	return nil
}
