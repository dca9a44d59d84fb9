package usecase

import (
	"context"
	"errors"
	"testing"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	mock_interfaces "rental_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMaintenanceUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("title and description required", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil, nil, nil, PortalSettings{}, nil)
		if _, err := uc.Submit(ctx, "t-1", " ", "x", ""); !errors.Is(err, ErrInvalidTicketInput) {
			t.Fatalf("expected ErrInvalidTicketInput, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil, nil, nil, PortalSettings{}, nil)
		if _, err := uc.Submit(ctx, "t-1", "Door", "Stuck", "CRITICAL"); !errors.Is(err, ErrInvalidTicketInput) {
			t.Fatalf("expected ErrInvalidTicketInput, got %v", err)
		}
	})

	t.Run("tenant without apartment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewMaintenanceUseCase(nil, tenants, nil, PortalSettings{}, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1"}, nil)
		if _, err := uc.Submit(ctx, "t-1", "Door", "Stuck", ""); !errors.Is(err, ErrTenantNoApartment) {
			t.Fatalf("expected ErrTenantNoApartment, got %v", err)
		}
	})
}

func TestMaintenanceUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ticket := entities.MaintenanceTicket{ID: "k-1", TenantID: "t-1", Title: "Door", Status: entities.TicketStatusSubmitted}

	t.Run("concurrent change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewMaintenanceUseCase(repo, nil, nil, PortalSettings{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "k-1").Return(ticket, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "k-1", entities.TicketStatusSubmitted, entities.TicketStatusResolved).Return(entities.MaintenanceTicket{}, interfaces.ErrConditionFailed)

		if _, err := uc.UpdateStatus(ctx, "k-1", entities.TicketStatusResolved); !errors.Is(err, ErrTicketStateConflict) {
			t.Fatalf("expected ErrTicketStateConflict, got %v", err)
		}
	})

	t.Run("notification failure is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewMaintenanceUseCase(repo, tenants, notifier, PortalSettings{BrandName: "Acme"}, nil)

		resolved := ticket
		resolved.Status = entities.TicketStatusResolved
		repo.EXPECT().GetByID(gomock.Any(), "k-1").Return(ticket, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "k-1", entities.TicketStatusSubmitted, entities.TicketStatusResolved).Return(resolved, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1", Email: "ama@example.com"}, nil)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n interfaces.Notification) interfaces.NotificationResult {
			if n.Subject != "Maintenance Update: Door - Acme" || n.Data["Status"] != "RESOLVED" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return interfaces.NotificationResult{Errors: []string{"email: timeout"}}
		})

		got, err := uc.UpdateStatus(ctx, "k-1", entities.TicketStatusResolved)
		if err != nil || got.Status != entities.TicketStatusResolved {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})
}
