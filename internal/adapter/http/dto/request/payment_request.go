package request

import (
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentRequest logs a charge, optionally already settled.
type PaymentRequest struct {
	TenantID    string          `json:"tenant_id" binding:"required"`
	ApartmentID string          `json:"apartment_id"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" binding:"required"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

func (r PaymentRequest) ToInput() (usecase.LogPaymentInput, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.LogPaymentInput{}, err
	}
	return usecase.LogPaymentInput{
		TenantID:    r.TenantID,
		ApartmentID: r.ApartmentID,
		Type:        entities.PaymentType(r.Type),
		Amount:      r.Amount,
		DueDate:     due,
		Status:      entities.PaymentStatus(r.Status),
		Notes:       r.Notes,
	}, nil
}

type SettleRequest struct {
	Method string `json:"method"`
}
