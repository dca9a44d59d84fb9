package response

import (
	"rental_portal/internal/domain/entities"
	"time"
)

type UtilityResponse struct {
	Enabled     bool   `json:"enabled"`
	MonthlyRate string `json:"monthly_rate"`
	AnnualRate  string `json:"annual_rate"`
}

type ApartmentResponse struct {
	ID               string          `json:"id"`
	UnitName         string          `json:"unit_name"`
	UnitNumber       string          `json:"unit_number"`
	Floor            int             `json:"floor"`
	Type             string          `json:"type"`
	MonthlyRent      string          `json:"monthly_rent"`
	Status           string          `json:"status"`
	RoomNumber       string          `json:"room_number"`
	OccupantTenantID string          `json:"occupant_tenant_id,omitempty"`
	Water            UtilityResponse `json:"water"`
	Sewage           UtilityResponse `json:"sewage"`
	Cleaning         UtilityResponse `json:"cleaning"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func fromUtility(u entities.Utility) UtilityResponse {
	return UtilityResponse{Enabled: u.Enabled, MonthlyRate: Money(u.MonthlyRate), AnnualRate: Money(u.AnnualRate)}
}

func FromApartment(a entities.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:               a.ID,
		UnitName:         a.UnitName,
		UnitNumber:       a.UnitNumber,
		Floor:            a.Floor,
		Type:             string(a.Type),
		MonthlyRent:      Money(a.MonthlyRent),
		Status:           string(a.Status),
		RoomNumber:       a.RoomNumber,
		OccupantTenantID: a.OccupantTenantID,
		Water:            fromUtility(a.Water),
		Sewage:           fromUtility(a.Sewage),
		Cleaning:         fromUtility(a.Cleaning),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func FromApartments(list []entities.Apartment) []ApartmentResponse {
	out := make([]ApartmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApartment(a))
	}
	return out
}

// ApartmentCreatedResponse shows the apartment passcode exactly once.
type ApartmentCreatedResponse struct {
	Apartment ApartmentResponse `json:"apartment"`
	Passcode  string            `json:"passcode"`
}
