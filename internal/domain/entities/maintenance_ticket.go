package entities

import (
	"strings"
	"time"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

type TicketStatus string

const (
	TicketStatusSubmitted  TicketStatus = "SUBMITTED"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Besides the forward path, RESOLVED and CLOSED tickets may be reopened to
// IN_PROGRESS so admins can correct a premature close.
var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusSubmitted:  {TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
	TicketStatusInProgress: {TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved:   {TicketStatusClosed, TicketStatusInProgress},
	TicketStatusClosed:     {TicketStatusInProgress},
}

func (s TicketStatus) Valid() bool {
	_, ok := ticketTransitions[s]
	return ok
}

func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	return allowed(ticketTransitions, s, next)
}

// Label renders IN_PROGRESS as "IN PROGRESS".
func (s TicketStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// MaintenanceTicket is a repair request raised by a tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
type MaintenanceTicket struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenant_id"`
	ApartmentID string         `json:"apartment_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
