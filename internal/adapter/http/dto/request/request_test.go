package request

import (
	"testing"
	"time"

	"rental_portal/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestAgreementRequest_ToInput(t *testing.T) {
	r := AgreementRequest{
		TenantID:        "tenant-1",
		LeaseStart:      "2026-04-01",
		LeaseEnd:        " 2027-04-01 ",
		MonthlyRent:     decimal.NewFromInt(1200),
		SecurityDeposit: decimal.NewFromInt(2400),
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.LeaseStart.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected lease start %s", in.LeaseStart)
	}
	if !in.LeaseEnd.Equal(time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected lease end %s", in.LeaseEnd)
	}

	r.LeaseEnd = "01/04/2027"
	if _, err := r.ToInput(); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPaymentRequest_ToInput(t *testing.T) {
	in, err := PaymentRequest{
		TenantID: "tenant-1",
		Type:     "RENT",
		Amount:   decimal.RequireFromString("1200.50"),
		DueDate:  "2026-04-01",
		Status:   "PAID",
	}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Type != entities.PaymentTypeRent || in.Status != entities.PaymentStatusPaid {
		t.Fatalf("unexpected enums: %+v", in)
	}
	if in.Amount.String() != "1200.5" {
		t.Fatalf("unexpected amount %s", in.Amount)
	}

	if _, err := (PaymentRequest{DueDate: "tomorrow"}).ToInput(); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestApartmentRequest_ToInput(t *testing.T) {
	in := ApartmentRequest{
		UnitName:    "Unit 1A",
		UnitNumber:  "A",
		Floor:       1,
		Type:        "STUDIO",
		MonthlyRent: decimal.NewFromInt(900),
		Water:       UtilityRequest{Enabled: true, MonthlyRate: decimal.NewFromInt(25)},
	}.ToInput()

	if in.Type != entities.ApartmentTypeStudio {
		t.Fatalf("unexpected type %s", in.Type)
	}
	if !in.Water.Enabled || !in.Water.MonthlyRate.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("unexpected water utility %+v", in.Water)
	}
	if in.Sewage.Enabled || in.Cleaning.Enabled {
		t.Fatalf("utilities not in the payload must stay disabled")
	}
}
