package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
)

// IApartmentRepository abstracts persistence for Apartment.
//
// Lookups of a missing apartment return the zero value and a nil error.

type IApartmentRepository interface {
	// Create fails with ErrConditionFailed when the room number is already taken.
	Create(ctx context.Context, a entities.Apartment) (entities.Apartment, error)
	GetByID(ctx context.Context, id string) (entities.Apartment, error)
	GetByRoomNumber(ctx context.Context, roomNumber string) (entities.Apartment, error)
	// List returns every apartment when status is empty.
	List(ctx context.Context, status entities.ApartmentStatus) ([]entities.Apartment, error)
	// UpdateDetails overwrites the descriptive and billing attributes (name, type, rent, utilities).
	UpdateDetails(ctx context.Context, a entities.Apartment) (entities.Apartment, error)
	// UpdateStatus moves the apartment from expected to next. Moving to VACANT also
	// requires that no tenant is bound. Fails with ErrConditionFailed otherwise.
	UpdateStatus(ctx context.Context, id string, expected, next entities.ApartmentStatus) (entities.Apartment, error)
	Delete(ctx context.Context, id string) error
}
