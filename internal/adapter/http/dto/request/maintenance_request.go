package request

import "rental_portal/internal/domain/entities"

type TicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
}

// ToPriority leaves an empty priority for the usecase to default.
func (r TicketRequest) ToPriority() entities.TicketPriority {
	return entities.TicketPriority(r.Priority)
}

type TicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
