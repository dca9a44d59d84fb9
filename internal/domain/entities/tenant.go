package entities

import (
	"strings"
	"time"
)

// Tenant is an occupant bound to one apartment at a time.
//
// Tenants are only created by assigning a vacant apartment and are never
// deleted; Active=false is the terminal state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the active tenant of an apartment is found through Apartment.OccupantTenantID
type Tenant struct {
	ID             string    `json:"id"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	ApartmentID    string    `json:"apartment_id,omitempty"`
	PasscodeHash   string    `json:"-"`
	MustChangePass bool      `json:"must_change_pass"`
	IsActive       bool      `json:"is_active"`
	OnboardingDone bool      `json:"onboarding_done"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Contact is the notification address of a tenant.
func (t Tenant) Contact() Recipient {
	return Recipient{Email: t.Email, Phone: t.Phone}
}

// GreetingName derives a salutation from the email local part.
func (t Tenant) GreetingName() string {
	if local, _, _ := strings.Cut(t.Email, "@"); local != "" {
		return local
	}
	return "Valued Tenant"
}

// Recipient is where a notification goes. Either field may be empty.
type Recipient struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (r Recipient) Empty() bool {
	return r.Email == "" && r.Phone == ""
}
