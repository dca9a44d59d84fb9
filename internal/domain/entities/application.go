package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsDecision reports whether s is a valid review outcome.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// ApplicantFacts is the declared intake form. None of it is interpreted by the
// lifecycle; it is stored for the reviewer.
type ApplicantFacts struct {
	FullName       string `json:"full_name"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	CurrentAddress string `json:"current_address,omitempty"`

	PreviousLandlord      string           `json:"previous_landlord,omitempty"`
	PreviousLandlordPhone string           `json:"previous_landlord_phone,omitempty"`
	PreviousRentAmount    *decimal.Decimal `json:"previous_rent_amount,omitempty"`
	ReasonForLeaving      string           `json:"reason_for_leaving,omitempty"`

	EmployerName           string           `json:"employer_name,omitempty"`
	EmployerAddress        string           `json:"employer_address,omitempty"`
	EmployerPhone          string           `json:"employer_phone,omitempty"`
	MonthlyIncomeRange     string           `json:"monthly_income_range,omitempty"`
	EmploymentLength       string           `json:"employment_length,omitempty"`
	AdditionalIncomeSource string           `json:"additional_income_source,omitempty"`
	AdditionalIncomeAmount *decimal.Decimal `json:"additional_income_amount,omitempty"`

	ReferenceName         string `json:"reference_name,omitempty"`
	ReferenceRelationship string `json:"reference_relationship,omitempty"`
	ReferencePhone        string `json:"reference_phone,omitempty"`

	EmergencyName         string `json:"emergency_name,omitempty"`
	EmergencyRelationship string `json:"emergency_relationship,omitempty"`
	EmergencyPhone        string `json:"emergency_phone,omitempty"`

	HasEvictionHistory  bool   `json:"has_eviction_history"`
	EvictionExplanation string `json:"eviction_explanation,omitempty"`
	HasPets             bool   `json:"has_pets"`
	PetDetails          string `json:"pet_details,omitempty"`
	IsSmoker            bool   `json:"is_smoker"`
	NumberOfOccupants   int    `json:"number_of_occupants"`
	VehicleInfo         string `json:"vehicle_info,omitempty"`

	ConsentBackgroundCheck bool   `json:"consent_background_check"`
	DeclarationAccurate    bool   `json:"declaration_accurate"`
	SignatureURL           string `json:"signature_url,omitempty"`
}

// Application is a tenant's intake form awaiting admin review.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
type Application struct {
	ID          string            `json:"id"`
	TenantID    string            `json:"tenant_id"`
	Facts       ApplicantFacts    `json:"facts"`
	Status      ApplicationStatus `json:"status"`
	ReviewedAt  *time.Time        `json:"reviewed_at,omitempty"`
	ReviewNotes string            `json:"review_notes,omitempty"`
	SubmittedAt time.Time         `json:"submitted_at"`
}
