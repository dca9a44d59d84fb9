package response

import (
	"fmt"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"
	"time"
)

// LoginResponse tells the client where to go next; the token itself only
// travels in the cookie.
type LoginResponse struct {
	Success        bool   `json:"success"`
	MustChangePass bool   `json:"must_change_pass"`
	RedirectTo     string `json:"redirect_to"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// SweepResponse is the body of every cron endpoint.
type SweepResponse struct {
	Processed    int    `json:"processed"`
	Notified     int    `json:"notified"`
	Transitioned int    `json:"transitioned"`
	Message      string `json:"message"`
}

func FromSweep(r usecase.SweepResult) SweepResponse {
	var msg string
	switch r.Sweep {
	case usecase.SweepRentDueSoon:
		msg = fmt.Sprintf("Processed %d upcoming payments. Sent %d reminders.", r.Processed, r.Notified)
	case usecase.SweepRentOverdue:
		msg = fmt.Sprintf("Processed %d overdue payments. Sent %d reminders. Marked %d overdue.", r.Processed, r.Notified, r.Transitioned)
	case usecase.SweepLeaseExpiring:
		msg = fmt.Sprintf("Processed %d nearing agreements. Sent %d exact 30-day notices.", r.Processed, r.Notified)
	default:
		msg = fmt.Sprintf("Processed %d records.", r.Processed)
	}
	return SweepResponse{Processed: r.Processed, Notified: r.Notified, Transitioned: r.Transitioned, Message: msg}
}

// SessionResponse describes the signed-in tenant.
type SessionResponse struct {
	TenantID       string `json:"tenant_id"`
	ApartmentID    string `json:"apartment_id"`
	RoomNumber     string `json:"room_number"`
	MustChangePass bool   `json:"must_change_pass"`
	ExpiresAt      string `json:"expires_at"`
}

func FromSession(s entities.TenantSession) SessionResponse {
	return SessionResponse{
		TenantID:       s.TenantID,
		ApartmentID:    s.ApartmentID,
		RoomNumber:     s.RoomNumber,
		MustChangePass: s.MustChangePass,
		ExpiresAt:      s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
