package response

import (
	"rental_portal/internal/domain/entities"
	"time"
)

type TicketResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	ApartmentID string    `json:"apartment_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromTicket(t entities.MaintenanceTicket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		TenantID:    t.TenantID,
		ApartmentID: t.ApartmentID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTickets(list []entities.MaintenanceTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTicket(t))
	}
	return out
}
