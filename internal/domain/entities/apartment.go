package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApartmentType string

const (
	ApartmentTypeStudio       ApartmentType = "STUDIO"
	ApartmentTypeOneBedroom   ApartmentType = "ONE_BEDROOM"
	ApartmentTypeTwoBedroom   ApartmentType = "TWO_BEDROOM"
	ApartmentTypeThreeBedroom ApartmentType = "THREE_BEDROOM"
)

func (t ApartmentType) Valid() bool {
	switch t {
	case ApartmentTypeStudio, ApartmentTypeOneBedroom, ApartmentTypeTwoBedroom, ApartmentTypeThreeBedroom:
		return true
	}
	return false
}

// ApartmentStatus is the occupancy lifecycle of a unit.
//
// A vacant unit becomes OCCUPIED only through tenant assignment. A unit that
// still has a bound tenant may return to OCCUPIED from MAINTENANCE or ARCHIVED.
type ApartmentStatus string

const (
	ApartmentStatusVacant      ApartmentStatus = "VACANT"
	ApartmentStatusOccupied    ApartmentStatus = "OCCUPIED"
	ApartmentStatusMaintenance ApartmentStatus = "MAINTENANCE"
	ApartmentStatusArchived    ApartmentStatus = "ARCHIVED"
)

var apartmentTransitions = map[ApartmentStatus][]ApartmentStatus{
	ApartmentStatusVacant:      {ApartmentStatusOccupied, ApartmentStatusMaintenance, ApartmentStatusArchived},
	ApartmentStatusOccupied:    {ApartmentStatusVacant, ApartmentStatusMaintenance, ApartmentStatusArchived},
	ApartmentStatusMaintenance: {ApartmentStatusVacant, ApartmentStatusOccupied, ApartmentStatusArchived},
	ApartmentStatusArchived:    {ApartmentStatusVacant, ApartmentStatusOccupied},
}

func (s ApartmentStatus) Valid() bool {
	_, ok := apartmentTransitions[s]
	return ok
}

func (s ApartmentStatus) CanTransitionTo(next ApartmentStatus) bool {
	return allowed(apartmentTransitions, s, next)
}

// Utility is a toggle plus its billing rates.
type Utility struct {
	Enabled     bool            `json:"enabled"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	AnnualRate  decimal.Decimal `json:"annual_rate"`
}

// Apartment is a leasable unit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - room_number uniqueness and lookup go through a separate room_numbers table
//
// OccupantTenantID holds the active tenant binding; assignment writes it with a
// condition so that two concurrent assignments cannot both win.
type Apartment struct {
	ID               string          `json:"id"`
	UnitName         string          `json:"unit_name"`
	UnitNumber       string          `json:"unit_number"`
	Floor            int             `json:"floor"`
	Type             ApartmentType   `json:"type"`
	MonthlyRent      decimal.Decimal `json:"monthly_rent"`
	Status           ApartmentStatus `json:"status"`
	RoomNumber       string          `json:"room_number"`
	PasscodeHash     string          `json:"-"`
	OccupantTenantID string          `json:"occupant_tenant_id,omitempty"`

	Water    Utility `json:"water"`
	Sewage   Utility `json:"sewage"`
	Cleaning Utility `json:"cleaning"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnabledUtilities returns the names and monthly total of the toggled utilities,
// in a stable Water, Sewage, Cleaning order.
func (a Apartment) EnabledUtilities() ([]string, decimal.Decimal) {
	names := make([]string, 0, 3)
	total := decimal.Zero
	for _, u := range []struct {
		name string
		u    Utility
	}{
		{"Water", a.Water},
		{"Sewage", a.Sewage},
		{"Cleaning", a.Cleaning},
	} {
		if !u.u.Enabled {
			continue
		}
		names = append(names, u.name)
		total = total.Add(u.u.MonthlyRate)
	}
	return names, total
}

// DisplayName is used in notifications.
func (a Apartment) DisplayName() string {
	if a.UnitName != "" {
		return a.UnitName
	}
	return "your unit"
}
