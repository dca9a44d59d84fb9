package response

import (
	"testing"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromApartment(t *testing.T) {
	now := time.Now().UTC()
	a := entities.Apartment{
		ID:           "apt-1",
		UnitName:     "Unit 1A",
		MonthlyRent:  decimal.NewFromInt(1200),
		Status:       entities.ApartmentStatusVacant,
		RoomNumber:   "PIL-1A",
		PasscodeHash: "secret-hash",
		Water:        entities.Utility{Enabled: true, MonthlyRate: decimal.RequireFromString("25.5")},
		CreatedAt:    now,
	}

	res := FromApartment(a)
	if res.MonthlyRent != "1200.00" {
		t.Fatalf("expected fixed two decimals, got %s", res.MonthlyRent)
	}
	if res.Water.MonthlyRate != "25.50" || !res.Water.Enabled {
		t.Fatalf("unexpected water utility %+v", res.Water)
	}
	if res.Status != "VACANT" || res.RoomNumber != "PIL-1A" {
		t.Fatalf("unexpected mapped fields %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at %s", res.CreatedAt)
	}
}

func TestFromPayment(t *testing.T) {
	p := entities.Payment{
		ID:         "pay-1",
		Type:       entities.PaymentTypeRent,
		Amount:     decimal.NewFromInt(1200),
		AmountPaid: decimal.Zero,
		DueDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:     entities.PaymentStatusOverdue,
	}

	res := FromPayment(p)
	if res.DueDate != "2026-04-01" {
		t.Fatalf("unexpected due date %s", res.DueDate)
	}
	if res.Amount != "1200.00" || res.AmountPaid != "0.00" {
		t.Fatalf("unexpected amounts %+v", res)
	}
	if len(FromPayments(nil)) != 0 || FromPayments(nil) == nil {
		t.Fatalf("empty lists must render as []")
	}
}

func TestFromDashboard(t *testing.T) {
	apt := entities.Apartment{ID: "apt-1"}
	next := entities.Payment{ID: "pay-1"}
	res := FromDashboard(usecase.TenantDashboard{
		Tenant:      entities.Tenant{ID: "tenant-1"},
		Apartment:   &apt,
		NextPayment: &next,
	})

	if res.Apartment == nil || res.Apartment.ID != "apt-1" {
		t.Fatalf("expected apartment to be mapped")
	}
	if res.Agreement != nil {
		t.Fatalf("expected no agreement")
	}
	if res.NextPayment == nil || res.NextPayment.ID != "pay-1" {
		t.Fatalf("expected next payment to be mapped")
	}
	if res.RecentPayments == nil || res.RecentTickets == nil {
		t.Fatalf("recent lists must not be nil")
	}
}

func TestFromSweep(t *testing.T) {
	res := FromSweep(usecase.SweepResult{Sweep: usecase.SweepRentOverdue, Processed: 3, Notified: 2, Transitioned: 3})
	if res.Processed != 3 || res.Notified != 2 || res.Transitioned != 3 {
		t.Fatalf("unexpected counters %+v", res)
	}
	if res.Message != "Processed 3 overdue payments. Sent 2 reminders. Marked 3 overdue." {
		t.Fatalf("unexpected message %q", res.Message)
	}

	lease := FromSweep(usecase.SweepResult{Sweep: usecase.SweepLeaseExpiring, Processed: 4, Notified: 1})
	if lease.Message != "Processed 4 nearing agreements. Sent 1 exact 30-day notices." {
		t.Fatalf("unexpected message %q", lease.Message)
	}
}
