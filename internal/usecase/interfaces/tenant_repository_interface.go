package interfaces

import (
	"context"
	"rental_portal/internal/domain/entities"
)

// ITenantRepository abstracts persistence for Tenant and its apartment binding.

type ITenantRepository interface {
	// Assign atomically stores t and binds it to t.ApartmentID, flipping the
	// apartment from VACANT to OCCUPIED. Fails with ErrConditionFailed when the
	// apartment is not vacant or already has a bound tenant.
	Assign(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	GetActiveByApartmentID(ctx context.Context, apartmentID string) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
	UpdatePasscode(ctx context.Context, id, passcodeHash string, mustChange bool) (entities.Tenant, error)
	SetOnboardingDone(ctx context.Context, id string, done bool) (entities.Tenant, error)
	// SetActive toggles the active flag. Activation re-binds the apartment and fails
	// with ErrConditionFailed when another tenant holds it; deactivation releases it.
	SetActive(ctx context.Context, id string, active bool) (entities.Tenant, error)
}
