package handlers

import (
	"net/http"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	tenants usecase.ITenantUseCase
}

func NewTenantHandler(tenants usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// List godoc
// @Summary      List tenants
// @Tags         admin-tenants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  response.TenantResponse
// @Router       /api/admin/tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	list, err := h.tenants.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTenants(list))
}

// Get godoc
// @Summary      Get a tenant
// @Tags         admin-tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.TenantResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/admin/tenants/{id} [get]
func (h *TenantHandler) Get(c *gin.Context) {
	tenant, err := h.tenants.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

// Deactivate godoc
// @Summary      Deactivate a tenant and free the apartment
// @Tags         admin-tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  response.TenantResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/admin/tenants/{id}/deactivate [post]
func (h *TenantHandler) Deactivate(c *gin.Context) {
	tenant, err := h.tenants.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

// Activate godoc
// @Summary      Reactivate a tenant on its previous apartment
// @Tags         admin-tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  response.TenantResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /api/admin/tenants/{id}/activate [post]
func (h *TenantHandler) Activate(c *gin.Context) {
	tenant, err := h.tenants.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

// ResetPasscode godoc
// @Summary      Issue a new passcode for the tenant's apartment
// @Tags         admin-tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  response.CredentialsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/admin/tenants/{id}/reset-passcode [post]
func (h *TenantHandler) ResetPasscode(c *gin.Context) {
	creds, err := h.tenants.ResetPasscode(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCredentials(creds))
}
