package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	mock_interfaces "rental_portal/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type sweepMocks struct {
	payments   *mock_interfaces.MockIPaymentRepository
	agreements *mock_interfaces.MockIAgreementRepository
	tenants    *mock_interfaces.MockITenantRepository
	apartments *mock_interfaces.MockIApartmentRepository
	notifier   *mock_interfaces.MockINotifier
}

func newSweepUseCase(t *testing.T, now time.Time) (*SweepUseCase, sweepMocks) {
	ctrl := gomock.NewController(t)
	m := sweepMocks{
		payments:   mock_interfaces.NewMockIPaymentRepository(ctrl),
		agreements: mock_interfaces.NewMockIAgreementRepository(ctrl),
		tenants:    mock_interfaces.NewMockITenantRepository(ctrl),
		apartments: mock_interfaces.NewMockIApartmentRepository(ctrl),
		notifier:   mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewSweepUseCase(m.payments, m.agreements, m.tenants, m.apartments, m.notifier, PortalSettings{}, nil)
	uc.now = fixedClock(now)
	return uc, m
}

func TestSweepUseCase_Run(t *testing.T) {
	uc, _ := newSweepUseCase(t, time.Now())
	if _, err := uc.Run(context.Background(), "rent-everything"); !errors.Is(err, ErrUnknownSweep) {
		t.Fatalf("expected ErrUnknownSweep, got %v", err)
	}
}

func TestSweepUseCase_RentDueSoon(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	due := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	t.Run("query failure", func(t *testing.T) {
		uc, m := newSweepUseCase(t, now)
		m.payments.EXPECT().ListByStatusDueOn(gomock.Any(), entities.PaymentStatusPending, due).Return(nil, errors.New("db"))
		if _, err := uc.RentDueSoon(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("looks each tenant up once", func(t *testing.T) {
		uc, m := newSweepUseCase(t, now)
		m.payments.EXPECT().ListByStatusDueOn(gomock.Any(), entities.PaymentStatusPending, due).Return([]entities.Payment{
			{ID: "p1", TenantID: "t-1", ApartmentID: "apt-1", Type: entities.PaymentTypeRent, Amount: decimal.NewFromInt(1000), DueDate: due},
			{ID: "p2", TenantID: "t-1", ApartmentID: "apt-1", Type: entities.PaymentTypeUtility, Amount: decimal.NewFromInt(40), DueDate: due},
		}, nil)
		m.tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1", Email: "ama@example.com", Phone: "+233200000000"}, nil).Times(1)
		m.apartments.EXPECT().GetByID(gomock.Any(), "apt-1").Return(entities.Apartment{ID: "apt-1", UnitName: "Palm Court"}, nil).Times(1)

		var subjects []string
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n interfaces.Notification) interfaces.NotificationResult {
			if n.To.Phone == "" || n.SMS == "" {
				t.Fatalf("expected SMS alongside email: %+v", n)
			}
			subjects = append(subjects, n.Subject)
			return interfaces.NotificationResult{Email: "m"}
		}).Times(2)

		res, err := uc.RentDueSoon(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processed != 2 || res.Notified != 2 || res.Transitioned != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if subjects[1] != "Reminder: Utility Bill Due Soon - PILAS Properties" {
			t.Fatalf("unexpected subject %q", subjects[1])
		}
	})
}

func TestSweepUseCase_RentOverdueMarkFailureContinues(t *testing.T) {
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	uc, m := newSweepUseCase(t, now)

	m.payments.EXPECT().ListByStatusDueBefore(gomock.Any(), entities.PaymentStatusPending, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)).Return([]entities.Payment{
		{ID: "p1", TenantID: "t-1"},
		{ID: "p2", TenantID: "t-2"},
	}, nil)
	m.tenants.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Tenant{}, nil).Times(2)
	m.payments.EXPECT().MarkOverdue(gomock.Any(), "p1").Return(false, errors.New("throttled"))
	m.payments.EXPECT().MarkOverdue(gomock.Any(), "p2").Return(true, nil)

	res, err := uc.RentOverdue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Processed != 2 || res.Transitioned != 1 || res.Notified != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
