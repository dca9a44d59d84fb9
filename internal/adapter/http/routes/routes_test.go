package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental_portal/docs"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/adapter/persistence/memory"
	"rental_portal/internal/infrastructure/auth"
	"rental_portal/internal/infrastructure/metrics"
	"rental_portal/internal/infrastructure/notifications"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAdminSecret = "admin-secret"
	testCronSecret  = "cron-secret"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := memory.NewStore()
	require.NoError(t, err)
	apartments := memory.NewApartmentRepository(store)
	tenants := memory.NewTenantRepository(store)
	applications := memory.NewApplicationRepository(store)
	agreements := memory.NewAgreementRepository(store)
	payments := memory.NewPaymentRepository(store)
	tickets := memory.NewTicketRepository(store)

	m := metrics.New()
	templates, err := notifications.NewTemplates()
	require.NoError(t, err)
	notifier := notifications.NewDispatcher(nil, nil, templates, m, time.Second, zap.NewNop())

	hasher := auth.NewPasscodeHasher(4)
	tokens := auth.NewTenantTokens("tenant-secret", time.Hour)
	settings := usecase.PortalSettings{BrandName: "PILAS Properties", AppURL: "http://localhost:8080"}
	agreementUC := usecase.NewAgreementUseCase(agreements, tenants, notifier, settings, nil)

	return NewRouter(Dependencies{
		Apartments:   usecase.NewApartmentUseCase(apartments, hasher, "PIL", nil),
		Tenants:      usecase.NewTenantUseCase(apartments, tenants, agreements, payments, tickets, hasher, notifier, settings, nil),
		TenantAuth:   usecase.NewTenantAuthUseCase(apartments, tenants, hasher, tokens, nil, nil),
		Applications: usecase.NewApplicationUseCase(applications, tenants, apartments, agreementUC, notifier, settings, nil),
		Agreements:   agreementUC,
		Payments:     usecase.NewPaymentUseCase(payments, tenants, apartments, nil),
		Maintenance:  usecase.NewMaintenanceUseCase(tickets, tenants, notifier, settings, nil),
		Sweeps:       usecase.NewSweepUseCase(payments, agreements, tenants, apartments, notifier, settings, nil),

		AdminIdentity: auth.NewAdminTokens(testAdminSecret, nil),
		Metrics:       m,
		Logger:        zap.NewNop(),

		CronSecret: testCronSecret,
		SessionTTL: time.Hour,
	})
}

type client struct {
	t      *testing.T
	router *gin.Engine
	header http.Header
	cookie *http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			if ck.MaxAge < 0 {
				c.cookie = nil
			} else {
				c.cookie = ck
			}
		}
	}
	return w
}

func adminClient(t *testing.T, router *gin.Engine) *client {
	token, err := auth.NewAdminToken(testAdminSecret, "admin-1", "admin@example.com", jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)
	return &client{t: t, router: router, header: http.Header{"Authorization": {"Bearer " + token}}}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestEveryRouteIsDocumented(t *testing.T) {
	router := newTestRouter(t)

	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &spec))

	documented := 0
	for _, route := range router.Routes() {
		if route.Path == "/metrics" || strings.HasPrefix(route.Path, "/swagger/") {
			continue
		}
		segments := strings.Split(route.Path, "/")
		for i, seg := range segments {
			if strings.HasPrefix(seg, ":") {
				segments[i] = "{" + seg[1:] + "}"
			}
		}
		path := strings.Join(segments, "/")
		_, ok := spec.Paths[path][strings.ToLower(route.Method)]
		require.Truef(t, ok, "%s %s is not documented", route.Method, path)
		documented++
	}

	operations := 0
	for _, methods := range spec.Paths {
		operations += len(methods)
	}
	require.Equal(t, operations, documented, "documented operations without a route")
}

func TestRentReminderDocMatchesLeadTime(t *testing.T) {
	var spec struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &spec))
	require.Contains(t, spec.Paths["/api/cron/rent-reminders"]["get"].Summary, "seven days")
}

func TestPublicRoutes(t *testing.T) {
	router := newTestRouter(t)
	anon := &client{t: t, router: router}

	w := anon.do(http.MethodGet, "/api/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = anon.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "rental_portal_http_requests_total")
}

func TestAdminRoutesRequireIdentity(t *testing.T) {
	router := newTestRouter(t)
	anon := &client{t: t, router: router}

	w := anon.do(http.MethodGet, "/api/admin/apartments", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	forged := &client{t: t, router: router, header: http.Header{"Authorization": {"Bearer not-a-token"}}}
	w = forged.do(http.MethodGet, "/api/admin/tenants", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = adminClient(t, router).do(http.MethodGet, "/api/admin/apartments", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCronRoutesRequireSecret(t *testing.T) {
	router := newTestRouter(t)

	w := (&client{t: t, router: router}).do(http.MethodGet, "/api/cron/rent-overdue", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cron := &client{t: t, router: router, header: http.Header{"Authorization": {"Bearer " + testCronSecret}}}
	w = cron.do(http.MethodGet, "/api/cron/rent-overdue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Processed 0 overdue payments.")

	w = cron.do(http.MethodGet, "/api/cron/lease-expiry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Processed 0 nearing agreements. Sent 0 exact 30-day notices.")
}

// A freshly assigned tenant is forced through the passcode rotation before
// reaching the rest of the tenant area.
func TestFirstLoginPasscodeRotation(t *testing.T) {
	router := newTestRouter(t)
	admin := adminClient(t, router)

	w := admin.do(http.MethodPost, "/api/admin/apartments", map[string]any{
		"unit_name":    "Sunrise",
		"unit_number":  "01",
		"floor":        1,
		"type":         "ONE_BEDROOM",
		"monthly_rent": "1200",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[struct {
		Apartment struct {
			ID string `json:"id"`
		} `json:"apartment"`
	}](t, w)

	w = admin.do(http.MethodPost, "/api/admin/apartments/"+created.Apartment.ID+"/assign", map[string]string{"email": "ama@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	creds := decode[struct {
		RoomNumber string `json:"room_number"`
		Passcode   string `json:"passcode"`
	}](t, w)
	require.Len(t, creds.Passcode, 6)

	w = admin.do(http.MethodPost, "/api/admin/apartments/"+created.Apartment.ID+"/assign", map[string]string{"email": "kofi@example.com"})
	require.Equal(t, http.StatusConflict, w.Code)

	tenant := &client{t: t, router: router}

	w = tenant.do(http.MethodGet, "/tenant", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, middleware.LoginPath, w.Header().Get("Location"))

	w = tenant.do(http.MethodPost, "/api/tenant/auth/login", map[string]string{"room_number": creds.RoomNumber, "passcode": "000000"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = tenant.do(http.MethodPost, "/api/tenant/auth/login", map[string]string{"room_number": creds.RoomNumber, "passcode": creds.Passcode})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"must_change_pass":true`)
	require.NotNil(t, tenant.cookie)

	w = tenant.do(http.MethodGet, "/tenant/payments", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, middleware.ChangePasscodePath, w.Header().Get("Location"))

	w = tenant.do(http.MethodGet, middleware.ChangePasscodePath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = tenant.do(http.MethodPost, "/api/tenant/auth/change-passcode", map[string]string{"passcode": "654321"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"must_change_pass":false`)

	w = tenant.do(http.MethodGet, "/tenant", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), creds.RoomNumber)

	w = tenant.do(http.MethodPost, "/tenant/maintenance", map[string]string{"title": "Leak", "description": "Kitchen sink"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = tenant.do(http.MethodPost, "/api/tenant/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, tenant.cookie)

	w = tenant.do(http.MethodGet, "/tenant", nil)
	require.Equal(t, http.StatusFound, w.Code)

	fresh := &client{t: t, router: router}
	w = fresh.do(http.MethodPost, "/api/tenant/auth/login", map[string]string{"room_number": creds.RoomNumber, "passcode": creds.Passcode})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = fresh.do(http.MethodPost, "/api/tenant/auth/login", map[string]string{"room_number": strings.ToLower(creds.RoomNumber), "passcode": "654321"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"redirect_to":"/tenant"`)
}
