package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAgreementStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to AgreementStatus
		want     bool
	}{
		{AgreementStatusDraft, AgreementStatusPendingSignature, true},
		{AgreementStatusPendingSignature, AgreementStatusPendingSignature, true},
		{AgreementStatusPendingSignature, AgreementStatusSigned, true},
		{AgreementStatusSigned, AgreementStatusActive, true},
		{AgreementStatusDraft, AgreementStatusSigned, false},
		{AgreementStatusDraft, AgreementStatusActive, false},
		{AgreementStatusPendingSignature, AgreementStatusActive, false},
		{AgreementStatusActive, AgreementStatusSigned, false},
		{AgreementStatusExpired, AgreementStatusActive, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	if !TicketStatusSubmitted.CanTransitionTo(TicketStatusInProgress) {
		t.Fatalf("expected SUBMITTED -> IN_PROGRESS")
	}
	if !TicketStatusClosed.CanTransitionTo(TicketStatusInProgress) {
		t.Fatalf("expected reopen CLOSED -> IN_PROGRESS")
	}
	if TicketStatusClosed.CanTransitionTo(TicketStatusSubmitted) {
		t.Fatalf("expected CLOSED -> SUBMITTED to be rejected")
	}
	if TicketStatusInProgress.CanTransitionTo(TicketStatusInProgress) {
		t.Fatalf("expected self transition to be rejected")
	}
	if TicketStatus("DONE").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	if got := TicketStatusInProgress.Label(); got != "IN PROGRESS" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestApartmentStatus_CanTransitionTo(t *testing.T) {
	if !ApartmentStatusVacant.CanTransitionTo(ApartmentStatusOccupied) {
		t.Fatalf("expected VACANT -> OCCUPIED")
	}
	if !ApartmentStatusMaintenance.CanTransitionTo(ApartmentStatusOccupied) {
		t.Fatalf("expected MAINTENANCE -> OCCUPIED for a unit handed back to its tenant")
	}
	if !ApartmentStatusArchived.CanTransitionTo(ApartmentStatusOccupied) {
		t.Fatalf("expected ARCHIVED -> OCCUPIED for a unit handed back to its tenant")
	}
	if ApartmentStatusMaintenance.CanTransitionTo(ApartmentStatusMaintenance) {
		t.Fatalf("MAINTENANCE -> MAINTENANCE must be refused")
	}
}

func TestApartment_EnabledUtilities(t *testing.T) {
	a := Apartment{
		Water:    Utility{Enabled: true, MonthlyRate: decimal.NewFromInt(20)},
		Sewage:   Utility{Enabled: false, MonthlyRate: decimal.NewFromInt(99)},
		Cleaning: Utility{Enabled: true, MonthlyRate: decimal.RequireFromString("15.50")},
	}
	names, total := a.EnabledUtilities()
	if len(names) != 2 || names[0] != "Water" || names[1] != "Cleaning" {
		t.Fatalf("unexpected names: %v", names)
	}
	if !total.Equal(decimal.RequireFromString("35.50")) {
		t.Fatalf("unexpected total: %s", total)
	}

	names, total = Apartment{}.EnabledUtilities()
	if len(names) != 0 || !total.IsZero() {
		t.Fatalf("expected no utilities, got %v %s", names, total)
	}
}

func TestPayment_MarkPaid(t *testing.T) {
	p := Payment{Amount: decimal.NewFromInt(1200), Status: PaymentStatusOverdue}
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	p.MarkPaid("MOBILE_MONEY", at)
	if p.Status != PaymentStatusPaid || !p.AmountPaid.Equal(p.Amount) || p.PaidAt == nil || !p.PaidAt.Equal(at) || p.Method != "MOBILE_MONEY" {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestDates(t *testing.T) {
	now := time.Date(2026, 12, 15, 23, 30, 0, 0, time.UTC)
	if got := FirstOfNextMonth(now); !got.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first of next month: %s", got)
	}
	if got := DaysBetween(now, time.Date(2027, 1, 14, 0, 0, 0, 0, time.UTC)); got != 30 {
		t.Fatalf("expected 30 days, got %d", got)
	}
	if got := DaysBetween(now, now); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
}

func TestTenant_GreetingName(t *testing.T) {
	if got := (Tenant{Email: "ama@example.com"}).GreetingName(); got != "ama" {
		t.Fatalf("unexpected greeting %q", got)
	}
	if got := (Tenant{}).GreetingName(); got != "Valued Tenant" {
		t.Fatalf("unexpected greeting %q", got)
	}
}
