package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgreementStatus only moves forward.
type AgreementStatus string

const (
	AgreementStatusDraft            AgreementStatus = "DRAFT"
	AgreementStatusPendingSignature AgreementStatus = "PENDING_SIGNATURE"
	AgreementStatusSigned           AgreementStatus = "SIGNED"
	AgreementStatusActive           AgreementStatus = "ACTIVE"
	AgreementStatusExpired          AgreementStatus = "EXPIRED"
)

var agreementTransitions = map[AgreementStatus][]AgreementStatus{
	AgreementStatusDraft:            {AgreementStatusPendingSignature},
	AgreementStatusPendingSignature: {AgreementStatusPendingSignature, AgreementStatusSigned},
	AgreementStatusSigned:           {AgreementStatusActive, AgreementStatusExpired},
	AgreementStatusActive:           {AgreementStatusExpired},
	AgreementStatusExpired:          nil,
}

func (s AgreementStatus) CanTransitionTo(next AgreementStatus) bool {
	return allowed(agreementTransitions, s, next)
}

// Agreement is a lease contract. Rent and deposit are snapshotted at creation and
// do not follow later apartment rent changes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
//   - GSI (status-lease_end-index): status, lease_end
type Agreement struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	ApplicationID   string          `json:"application_id,omitempty"`
	LeaseStart      time.Time       `json:"lease_start"`
	LeaseEnd        time.Time       `json:"lease_end"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
	Status          AgreementStatus `json:"status"`

	TenantSignatureURL string     `json:"tenant_signature_url,omitempty"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	AdminSignatureURL  string     `json:"admin_signature_url,omitempty"`
	AdminSignedAt      *time.Time `json:"admin_signed_at,omitempty"`
	TermsAccepted      bool       `json:"terms_accepted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
