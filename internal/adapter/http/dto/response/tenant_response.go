package response

import (
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"
	"time"
)

type TenantResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	ApartmentID    string    `json:"apartment_id,omitempty"`
	MustChangePass bool      `json:"must_change_pass"`
	IsActive       bool      `json:"is_active"`
	OnboardingDone bool      `json:"onboarding_done"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:             t.ID,
		Email:          t.Email,
		Phone:          t.Phone,
		ApartmentID:    t.ApartmentID,
		MustChangePass: t.MustChangePass,
		IsActive:       t.IsActive,
		OnboardingDone: t.OnboardingDone,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromTenants(list []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTenant(t))
	}
	return out
}

// CredentialsResponse is returned once, after assignment or a passcode reset.
type CredentialsResponse struct {
	Tenant     TenantResponse `json:"tenant"`
	RoomNumber string         `json:"room_number"`
	Passcode   string         `json:"passcode"`
}

func FromCredentials(c usecase.TenantCredentials) CredentialsResponse {
	return CredentialsResponse{Tenant: FromTenant(c.Tenant), RoomNumber: c.RoomNumber, Passcode: c.Passcode}
}

type DashboardResponse struct {
	Tenant         TenantResponse     `json:"tenant"`
	Apartment      *ApartmentResponse `json:"apartment,omitempty"`
	Agreement      *AgreementResponse `json:"agreement,omitempty"`
	NextPayment    *PaymentResponse   `json:"next_payment,omitempty"`
	RecentPayments []PaymentResponse  `json:"recent_payments"`
	RecentTickets  []TicketResponse   `json:"recent_tickets"`
}

func FromDashboard(d usecase.TenantDashboard) DashboardResponse {
	out := DashboardResponse{
		Tenant:         FromTenant(d.Tenant),
		RecentPayments: FromPayments(d.RecentPayments),
		RecentTickets:  FromTickets(d.RecentTickets),
	}
	if d.Apartment != nil {
		a := FromApartment(*d.Apartment)
		out.Apartment = &a
	}
	if d.Agreement != nil {
		a := FromAgreement(*d.Agreement)
		out.Agreement = &a
	}
	if d.NextPayment != nil {
		p := FromPayment(*d.NextPayment)
		out.NextPayment = &p
	}
	return out
}
