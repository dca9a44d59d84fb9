package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeRent    PaymentType = "RENT"
	PaymentTypeUtility PaymentType = "UTILITY"
	PaymentTypeDeposit PaymentType = "DEPOSIT"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeRent, PaymentTypeUtility, PaymentTypeDeposit:
		return true
	}
	return false
}

// Label is the human name used in reminders.
func (t PaymentType) Label() string {
	switch t {
	case PaymentTypeRent:
		return "Rent"
	case PaymentTypeUtility:
		return "Utility Bill"
	default:
		return "Payment"
	}
}

// PaymentStatus: OVERDUE is only set by the overdue sweep.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

// PaymentMethodManual marks payments recorded as paid at entry time.
const PaymentMethodManual = "CASH"

// Payment is an invoice line owed by a tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
//   - GSI (status-due_date-index): status, due_date
type Payment struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	ApartmentID string          `json:"apartment_id"`
	Type        PaymentType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	DueDate     time.Time       `json:"due_date"`
	Status      PaymentStatus   `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Method      string          `json:"method,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MarkPaid settles the full amount. Partial payments are not supported.
func (p *Payment) MarkPaid(method string, at time.Time) {
	p.Status = PaymentStatusPaid
	p.AmountPaid = p.Amount
	p.PaidAt = &at
	p.Method = method
}
