package response

import (
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"
	"time"
)

type PaymentResponse struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	ApartmentID string     `json:"apartment_id"`
	Type        string     `json:"type"`
	Amount      string     `json:"amount"`
	AmountPaid  string     `json:"amount_paid"`
	DueDate     string     `json:"due_date"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	Method      string     `json:"method,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		ApartmentID: p.ApartmentID,
		Type:        string(p.Type),
		Amount:      Money(p.Amount),
		AmountPaid:  Money(p.AmountPaid),
		DueDate:     Date(p.DueDate),
		Status:      string(p.Status),
		PaidAt:      p.PaidAt,
		Method:      p.Method,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

type InvoiceRunResponse struct {
	DueDate string `json:"due_date"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

func FromInvoiceRun(r usecase.InvoiceRun) InvoiceRunResponse {
	return InvoiceRunResponse{DueDate: Date(r.DueDate), Created: r.Created, Skipped: r.Skipped}
}
