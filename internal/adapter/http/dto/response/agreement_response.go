package response

import (
	"rental_portal/internal/domain/entities"
	"time"
)

type AgreementResponse struct {
	ID                 string     `json:"id"`
	TenantID           string     `json:"tenant_id"`
	ApplicationID      string     `json:"application_id,omitempty"`
	LeaseStart         string     `json:"lease_start"`
	LeaseEnd           string     `json:"lease_end"`
	MonthlyRent        string     `json:"monthly_rent"`
	SecurityDeposit    string     `json:"security_deposit"`
	Status             string     `json:"status"`
	TenantSignatureURL string     `json:"tenant_signature_url,omitempty"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	AdminSignatureURL  string     `json:"admin_signature_url,omitempty"`
	AdminSignedAt      *time.Time `json:"admin_signed_at,omitempty"`
	TermsAccepted      bool       `json:"terms_accepted"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:                 a.ID,
		TenantID:           a.TenantID,
		ApplicationID:      a.ApplicationID,
		LeaseStart:         Date(a.LeaseStart),
		LeaseEnd:           Date(a.LeaseEnd),
		MonthlyRent:        Money(a.MonthlyRent),
		SecurityDeposit:    Money(a.SecurityDeposit),
		Status:             string(a.Status),
		TenantSignatureURL: a.TenantSignatureURL,
		SignedAt:           a.SignedAt,
		AdminSignatureURL:  a.AdminSignatureURL,
		AdminSignedAt:      a.AdminSignedAt,
		TermsAccepted:      a.TermsAccepted,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func FromAgreements(list []entities.Agreement) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgreement(a))
	}
	return out
}
