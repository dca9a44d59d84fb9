package request

import "rental_portal/internal/domain/entities"

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes"`
}

func (r ReviewRequest) ToDecision() entities.ApplicationStatus {
	return entities.ApplicationStatus(r.Decision)
}

// ApplicationRequest is the tenant intake form, field for field.
type ApplicationRequest struct {
	entities.ApplicantFacts
}

func (r ApplicationRequest) ToFacts() entities.ApplicantFacts {
	return r.ApplicantFacts
}
