package handlers

import (
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applications usecase.IApplicationUseCase
}

func NewApplicationHandler(applications usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// List returns every application, or only one tenant's with ?tenant_id=.
// @Summary      List applications
// @Tags         admin-applications
// @Produce      json
// @Security     BearerAuth
// @Param        tenant_id  query    string  false  "Only this tenant"
// @Success      200        {array}  response.ApplicationResponse
// @Router       /api/admin/applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	var (
		list []entities.Application
		err  error
	)
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		list, err = h.applications.ListByTenantID(c.Request.Context(), tenantID)
	} else {
		list, err = h.applications.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(list))
}

// Get godoc
// @Summary      Get an application
// @Tags         admin-applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.ApplicationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/admin/applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applications.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// Review godoc
// @Summary      Approve or reject a pending application
// @Description  Approval drafts the lease agreement for the tenant.
// @Tags         admin-applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Application ID"
// @Param        payload  body      request.ReviewRequest  true  "Decision"
// @Success      200      {object}  response.ApplicationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/applications/{id}/review [post]
func (h *ApplicationHandler) Review(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	app, err := h.applications.Review(c.Request.Context(), c.Param("id"), payload.ToDecision(), payload.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}
