package response

import (
	"rental_portal/internal/domain/entities"
	"time"
)

type ApplicationResponse struct {
	ID          string                  `json:"id"`
	TenantID    string                  `json:"tenant_id"`
	Status      string                  `json:"status"`
	Facts       entities.ApplicantFacts `json:"facts"`
	ReviewNotes string                  `json:"review_notes,omitempty"`
	ReviewedAt  *time.Time              `json:"reviewed_at,omitempty"`
	SubmittedAt time.Time               `json:"submitted_at"`
}

func FromApplication(a entities.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		TenantID:    a.TenantID,
		Status:      string(a.Status),
		Facts:       a.Facts,
		ReviewNotes: a.ReviewNotes,
		ReviewedAt:  a.ReviewedAt,
		SubmittedAt: a.SubmittedAt,
	}
}

func FromApplications(list []entities.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApplication(a))
	}
	return out
}
