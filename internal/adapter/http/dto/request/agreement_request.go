package request

import (
	"errors"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("dates must be formatted as YYYY-MM-DD")

type AgreementRequest struct {
	TenantID        string          `json:"tenant_id" binding:"required"`
	ApplicationID   string          `json:"application_id"`
	LeaseStart      string          `json:"lease_start" binding:"required"`
	LeaseEnd        string          `json:"lease_end" binding:"required"`
	MonthlyRent     decimal.Decimal `json:"monthly_rent"`
	SecurityDeposit decimal.Decimal `json:"security_deposit"`
}

func (r AgreementRequest) ToInput() (usecase.AgreementInput, error) {
	start, err := parseDate(r.LeaseStart)
	if err != nil {
		return usecase.AgreementInput{}, err
	}
	end, err := parseDate(r.LeaseEnd)
	if err != nil {
		return usecase.AgreementInput{}, err
	}
	return usecase.AgreementInput{
		TenantID:        r.TenantID,
		ApplicationID:   r.ApplicationID,
		LeaseStart:      start,
		LeaseEnd:        end,
		MonthlyRent:     r.MonthlyRent,
		SecurityDeposit: r.SecurityDeposit,
	}, nil
}

// SignatureRequest carries the uploaded signature image location.
type SignatureRequest struct {
	SignatureURL string `json:"signature_url" binding:"required"`
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(entities.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
