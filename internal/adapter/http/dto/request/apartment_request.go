package request

import (
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

type UtilityRequest struct {
	Enabled     bool            `json:"enabled"`
	MonthlyRate decimal.Decimal `json:"monthly_rate"`
	AnnualRate  decimal.Decimal `json:"annual_rate"`
}

func (r UtilityRequest) toEntity() entities.Utility {
	return entities.Utility{Enabled: r.Enabled, MonthlyRate: r.MonthlyRate, AnnualRate: r.AnnualRate}
}

// ApartmentRequest creates or updates a unit. The room number is derived from
// the floor and unit number on create and never changes afterwards.
type ApartmentRequest struct {
	UnitName    string          `json:"unit_name" binding:"required"`
	UnitNumber  string          `json:"unit_number" binding:"required"`
	Floor       int             `json:"floor"`
	Type        string          `json:"type" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Water       UtilityRequest  `json:"water"`
	Sewage      UtilityRequest  `json:"sewage"`
	Cleaning    UtilityRequest  `json:"cleaning"`
}

func (r ApartmentRequest) ToInput() usecase.ApartmentInput {
	return usecase.ApartmentInput{
		UnitName:    r.UnitName,
		UnitNumber:  r.UnitNumber,
		Floor:       r.Floor,
		Type:        entities.ApartmentType(r.Type),
		MonthlyRent: r.MonthlyRent,
		Water:       r.Water.toEntity(),
		Sewage:      r.Sewage.toEntity(),
		Cleaning:    r.Cleaning.toEntity(),
	}
}

type ApartmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignRequest binds a new tenant to a vacant apartment.
type AssignRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r AssignRequest) ToContact() usecase.ContactInfo {
	return usecase.ContactInfo{Email: r.Email, Phone: r.Phone}
}
