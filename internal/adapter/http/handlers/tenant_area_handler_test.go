package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"rental_portal/internal/adapter/http/handlers/mocks"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type tenantAreaMocks struct {
	auth         *mocks.MockITenantAuthUseCase
	tenants      *mocks.MockITenantUseCase
	payments     *mocks.MockIPaymentUseCase
	maintenance  *mocks.MockIMaintenanceUseCase
	applications *mocks.MockIApplicationUseCase
	agreements   *mocks.MockIAgreementUseCase
}

var tenantCookie = &http.Cookie{Name: middleware.CookieName, Value: "tok"}

// newTenantAreaRouter signs every request in as tenant-1.
func newTenantAreaRouter(t *testing.T) (*gin.Engine, tenantAreaMocks) {
	ctrl := gomock.NewController(t)
	m := tenantAreaMocks{
		auth:         mocks.NewMockITenantAuthUseCase(ctrl),
		tenants:      mocks.NewMockITenantUseCase(ctrl),
		payments:     mocks.NewMockIPaymentUseCase(ctrl),
		maintenance:  mocks.NewMockIMaintenanceUseCase(ctrl),
		applications: mocks.NewMockIApplicationUseCase(ctrl),
		agreements:   mocks.NewMockIAgreementUseCase(ctrl),
	}
	m.auth.EXPECT().Verify(gomock.Any(), "tok").Return(&entities.TenantSession{
		TenantID:    "tenant-1",
		ApartmentID: "apt-1",
		RoomNumber:  "PIL-101",
		ExpiresAt:   time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
	}).AnyTimes()

	h := NewTenantAreaHandler(m.tenants, m.payments, m.maintenance, m.applications, m.agreements)
	r := gin.New()
	g := r.Group("/tenant", middleware.TenantGuard(m.auth))
	g.GET("", h.Dashboard)
	g.GET("/settings/change-passcode", h.ChangePasscodePage)
	g.GET("/payments", h.Payments)
	g.GET("/maintenance", h.ListTickets)
	g.POST("/maintenance", h.SubmitTicket)
	g.GET("/application", h.ListApplications)
	g.POST("/application", h.SubmitApplication)
	g.GET("/agreements/:id", h.GetAgreement)
	g.POST("/agreements/:id/sign", h.SignAgreement)
	return r, m
}

func TestTenantAreaHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("scoped to the session tenant", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.tenants.EXPECT().Dashboard(gomock.Any(), "tenant-1").Return(usecase.TenantDashboard{
			Tenant:    entities.Tenant{ID: "tenant-1", IsActive: true},
			Apartment: &entities.Apartment{ID: "apt-1", RoomNumber: "PIL-101"},
		}, nil)

		w := perform(r, http.MethodGet, "/tenant", "", tenantCookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PIL-101") {
			t.Fatalf("expected the apartment in %s", w.Body.String())
		}
	})

	t.Run("deactivated tenant", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.tenants.EXPECT().Dashboard(gomock.Any(), "tenant-1").Return(usecase.TenantDashboard{}, usecase.ErrTenantNotFound)

		w := perform(r, http.MethodGet, "/tenant", "", tenantCookie)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTenantAreaHandler_ChangePasscodePage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, _ := newTenantAreaRouter(t)

	w := perform(r, http.MethodGet, "/tenant/settings/change-passcode", "", tenantCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"room_number":"PIL-101"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestTenantAreaHandler_Payments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, m := newTenantAreaRouter(t)
	m.payments.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.Payment{{
		ID:       "pay-1",
		TenantID: "tenant-1",
		Type:     entities.PaymentTypeRent,
		Amount:   decimal.NewFromInt(1200),
		DueDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:   entities.PaymentStatusPending,
	}}, nil)

	w := perform(r, http.MethodGet, "/tenant/payments", "", tenantCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"amount":"1200.00"`) {
		t.Fatalf("expected money formatted with two decimals, got %s", w.Body.String())
	}
}

func TestTenantAreaHandler_Maintenance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing title", func(t *testing.T) {
		r, _ := newTenantAreaRouter(t)

		w := perform(r, http.MethodPost, "/tenant/maintenance", `{"description":"leak"}`, tenantCookie)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.maintenance.EXPECT().Submit(gomock.Any(), "tenant-1", "Leak", "Kitchen sink", entities.TicketPriority("HIGH")).
			Return(entities.MaintenanceTicket{ID: "tic-1", TenantID: "tenant-1", Title: "Leak", Priority: "HIGH", Status: entities.TicketStatusSubmitted}, nil)

		w := perform(r, http.MethodPost, "/tenant/maintenance", `{"title":"Leak","description":"Kitchen sink","priority":"HIGH"}`, tenantCookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.maintenance.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return(nil, nil)

		w := perform(r, http.MethodGet, "/tenant/maintenance", "", tenantCookie)
		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("expected an empty list, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestTenantAreaHandler_Application(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already pending", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.applications.EXPECT().Submit(gomock.Any(), "tenant-1", gomock.Any()).Return(entities.Application{}, usecase.ErrApplicationPending)

		w := perform(r, http.MethodPost, "/tenant/application", `{"full_name":"Ama Mensah","declaration_accurate":true}`, tenantCookie)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("submit binds the flat form", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.applications.EXPECT().Submit(gomock.Any(), "tenant-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, facts entities.ApplicantFacts) (entities.Application, error) {
				if facts.FullName != "Ama Mensah" || facts.NumberOfOccupants != 2 || !facts.HasPets {
					t.Fatalf("unexpected facts %+v", facts)
				}
				return entities.Application{ID: "app-1", TenantID: "tenant-1", Facts: facts, Status: entities.ApplicationStatusPending}, nil
			})

		w := perform(r, http.MethodPost, "/tenant/application", `{"full_name":"Ama Mensah","number_of_occupants":2,"has_pets":true}`, tenantCookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestTenantAreaHandler_Agreement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("another tenant's agreement is not found", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.agreements.EXPECT().GetForTenant(gomock.Any(), "tenant-1", "agr-9").Return(entities.Agreement{}, usecase.ErrAgreementNotFound)

		w := perform(r, http.MethodGet, "/tenant/agreements/agr-9", "", tenantCookie)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("sign", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.agreements.EXPECT().TenantSign(gomock.Any(), "tenant-1", "agr-1", "https://files/sig.png").
			Return(entities.Agreement{ID: "agr-1", TenantID: "tenant-1", Status: entities.AgreementStatusSigned}, nil)

		w := perform(r, http.MethodPost, "/tenant/agreements/agr-1/sign", `{"signature_url":"https://files/sig.png"}`, tenantCookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sign out of order", func(t *testing.T) {
		r, m := newTenantAreaRouter(t)
		m.agreements.EXPECT().TenantSign(gomock.Any(), "tenant-1", "agr-1", "https://files/sig.png").
			Return(entities.Agreement{}, usecase.ErrInvalidAgreementTransition)

		w := perform(r, http.MethodPost, "/tenant/agreements/agr-1/sign", `{"signature_url":"https://files/sig.png"}`, tenantCookie)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestTenantArea_RequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, _ := newTenantAreaRouter(t)

	w := perform(r, http.MethodGet, "/tenant/payments", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != middleware.LoginPath {
		t.Fatalf("expected a redirect to login, got %d %s", w.Code, w.Header().Get("Location"))
	}
}
