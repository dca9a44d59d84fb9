package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rental_portal/internal/adapter/http/handlers/mocks"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func perform(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}

func newAuthRouter(h *TenantAuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/tenant/auth/login", h.Login)
	r.POST("/api/tenant/auth/logout", h.Logout)
	r.POST("/api/tenant/auth/change-passcode", h.ChangePasscode)
	return r
}

func TestTenantAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))

		w := perform(r, http.MethodPost, "/api/tenant/auth/login", `{"room_number":"PIL-101"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown room looks like a wrong passcode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().Login(gomock.Any(), "PIL-999", "123456").Return(usecase.TenantLogin{}, usecase.ErrApartmentNotFound)

		w := perform(r, http.MethodPost, "/api/tenant/auth/login", `{"room_number":"PIL-999","passcode":"123456"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if sessionCookie(w) != nil {
			t.Fatalf("no cookie must be set on failure")
		}
	})

	t.Run("no active tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().Login(gomock.Any(), "PIL-101", "123456").Return(usecase.TenantLogin{}, usecase.ErrNoActiveTenant)

		w := perform(r, http.MethodPost, "/api/tenant/auth/login", `{"room_number":"PIL-101","passcode":"123456"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("first login must change passcode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, true, 7*24*time.Hour, nil))
		uc.EXPECT().Login(gomock.Any(), "PIL-101", "123456").Return(usecase.TenantLogin{
			Session: entities.TenantSession{TenantID: "tenant-1", MustChangePass: true},
			Token:   "signed-token",
		}, nil)

		w := perform(r, http.MethodPost, "/api/tenant/auth/login", `{"room_number":"PIL-101","passcode":"123456"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Success        bool   `json:"success"`
			MustChangePass bool   `json:"must_change_pass"`
			RedirectTo     string `json:"redirect_to"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !body.Success || !body.MustChangePass || body.RedirectTo != middleware.ChangePasscodePath {
			t.Fatalf("unexpected body %+v", body)
		}

		cookie := sessionCookie(w)
		if cookie == nil {
			t.Fatalf("expected the session cookie")
		}
		if cookie.Value != "signed-token" || !cookie.HttpOnly || !cookie.Secure || cookie.Path != "/" {
			t.Fatalf("unexpected cookie %+v", cookie)
		}
		if cookie.MaxAge != 7*24*60*60 {
			t.Fatalf("expected a 7 day cookie, got %d", cookie.MaxAge)
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
		}
		if strings.Contains(w.Body.String(), "signed-token") {
			t.Fatalf("the token must only travel in the cookie")
		}
	})
}

func TestTenantAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("revokes and clears the cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

		w := perform(r, http.MethodPost, "/api/tenant/auth/logout", "", &http.Cookie{Name: middleware.CookieName, Value: "tok"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cookie := sessionCookie(w)
		if cookie == nil || cookie.Value != "" || cookie.MaxAge >= 0 {
			t.Fatalf("expected the cookie to be cleared, got %+v", cookie)
		}
	})

	t.Run("revocation failure still clears the cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("redis down"))

		w := perform(r, http.MethodPost, "/api/tenant/auth/logout", "", &http.Cookie{Name: middleware.CookieName, Value: "tok"})
		if w.Code != http.StatusOK || sessionCookie(w) == nil {
			t.Fatalf("expected 200 with a cleared cookie, got %d", w.Code)
		}
	})

	t.Run("without a cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))

		w := perform(r, http.MethodPost, "/api/tenant/auth/logout", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTenantAuthHandler_ChangePasscode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("requires the session cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))

		w := perform(r, http.MethodPost, "/api/tenant/auth/change-passcode", `{"passcode":"654321"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("short passcode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().ChangePasscode(gomock.Any(), "tok", "123").Return(usecase.TenantLogin{}, usecase.ErrInvalidPasscode)

		w := perform(r, http.MethodPost, "/api/tenant/auth/change-passcode", `{"passcode":"123"}`, &http.Cookie{Name: middleware.CookieName, Value: "tok"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), usecase.ErrInvalidPasscode.Error()) {
			t.Fatalf("expected the validation message, got %s", w.Body.String())
		}
	})

	t.Run("expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().ChangePasscode(gomock.Any(), "tok", "654321").Return(usecase.TenantLogin{}, usecase.ErrUnauthorized)

		w := perform(r, http.MethodPost, "/api/tenant/auth/change-passcode", `{"passcode":"654321"}`, &http.Cookie{Name: middleware.CookieName, Value: "tok"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success replaces the cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITenantAuthUseCase(ctrl)
		r := newAuthRouter(NewTenantAuthHandler(uc, false, 7*24*time.Hour, nil))
		uc.EXPECT().ChangePasscode(gomock.Any(), "tok", "654321").Return(usecase.TenantLogin{
			Session: entities.TenantSession{TenantID: "tenant-1"},
			Token:   "fresh-token",
		}, nil)

		w := perform(r, http.MethodPost, "/api/tenant/auth/change-passcode", `{"passcode":"654321"}`, &http.Cookie{Name: middleware.CookieName, Value: "tok"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if c := sessionCookie(w); c == nil || c.Value != "fresh-token" {
			t.Fatalf("expected the fresh token in the cookie, got %+v", c)
		}
		if !strings.Contains(w.Body.String(), `"redirect_to":"/tenant"`) {
			t.Fatalf("expected a redirect to the dashboard, got %s", w.Body.String())
		}
	})
}
