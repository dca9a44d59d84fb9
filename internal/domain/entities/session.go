package entities

import "time"

const RoleTenant = "tenant"

// TenantSession is the identity carried by a verified tenant token.
type TenantSession struct {
	TenantID       string    `json:"tenant_id"`
	ApartmentID    string    `json:"apartment_id"`
	RoomNumber     string    `json:"room_number"`
	MustChangePass bool      `json:"must_change_pass"`
	Role           string    `json:"role"`
	TokenID        string    `json:"-"`
	IssuedAt       time.Time `json:"issued_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// AdminIdentity is whatever the external identity provider vouched for.
type AdminIdentity struct {
	Subject string `json:"subject"`
	Email   string `json:"email,omitempty"`
}
