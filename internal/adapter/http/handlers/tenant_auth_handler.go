package handlers

import (
	"errors"
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/usecase"
	"rental_portal/pkg"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tenantHomePath = "/tenant"

var errInvalidCredentials = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid room number or passcode", http.StatusUnauthorized)

// TenantAuthHandler owns the tenant_session cookie.
type TenantAuthHandler struct {
	auth   usecase.ITenantAuthUseCase
	secure bool
	maxAge int
	logger *zap.Logger
}

// NewTenantAuthHandler marks the cookie secure when secure is set (production)
// and lets it live for ttl.
func NewTenantAuthHandler(auth usecase.ITenantAuthUseCase, secure bool, ttl time.Duration, logger *zap.Logger) *TenantAuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenantAuthHandler{auth: auth, secure: secure, maxAge: int(ttl / time.Second), logger: logger}
}

// Login godoc
// @Summary      Tenant login
// @Tags         tenant-auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Room number and passcode"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /api/tenant/auth/login [post]
func (h *TenantAuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), payload.RoomNumber, payload.Passcode)
	if err != nil {
		// An unknown room must look exactly like a wrong passcode.
		if errors.Is(err, usecase.ErrApartmentNotFound) || errors.Is(err, usecase.ErrInvalidCredentials) {
			writeAppError(c, errInvalidCredentials)
			return
		}
		writeError(c, err)
		return
	}

	h.setSession(c, res.Token)
	c.JSON(http.StatusOK, response.LoginResponse{
		Success:        true,
		MustChangePass: res.Session.MustChangePass,
		RedirectTo:     redirectAfterLogin(res.Session.MustChangePass),
	})
}

// Logout godoc
// @Summary      Tenant logout
// @Tags         tenant-auth
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/tenant/auth/logout [post]
func (h *TenantAuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.CookieName); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			h.logger.Warn("[tenant-auth][handler] logout could not revoke token", zap.Error(err))
		}
	}
	h.clearSession(c)
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

// ChangePasscode godoc
// @Summary      Rotate the tenant passcode
// @Tags         tenant-auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ChangePasscodeRequest  true  "New passcode"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /api/tenant/auth/change-passcode [post]
func (h *TenantAuthHandler) ChangePasscode(c *gin.Context) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil || token == "" {
		writeAppError(c, errMissingSession)
		return
	}

	var payload request.ChangePasscodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	res, err := h.auth.ChangePasscode(c.Request.Context(), token, payload.Passcode)
	if err != nil {
		writeError(c, err)
		return
	}

	h.setSession(c, res.Token)
	c.JSON(http.StatusOK, response.LoginResponse{
		Success:        true,
		MustChangePass: res.Session.MustChangePass,
		RedirectTo:     redirectAfterLogin(res.Session.MustChangePass),
	})
}

func (h *TenantAuthHandler) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, h.maxAge, "/", "", h.secure, true)
}

func (h *TenantAuthHandler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.secure, true)
}

func redirectAfterLogin(mustChangePass bool) string {
	if mustChangePass {
		return middleware.ChangePasscodePath
	}
	return tenantHomePath
}
