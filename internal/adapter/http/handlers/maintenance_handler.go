package handlers

import (
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenance usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(maintenance usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// List godoc
// @Summary      List maintenance tickets
// @Tags         admin-maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        tenant_id  query    string  false  "Only this tenant"
// @Success      200        {array}  response.TicketResponse
// @Router       /api/admin/maintenance [get]
func (h *MaintenanceHandler) List(c *gin.Context) {
	var (
		list []entities.MaintenanceTicket
		err  error
	)
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		list, err = h.maintenance.ListByTenantID(c.Request.Context(), tenantID)
	} else {
		list, err = h.maintenance.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(list))
}

// UpdateStatus godoc
// @Summary      Move a maintenance ticket along its workflow
// @Tags         admin-maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Ticket ID"
// @Param        payload  body      request.TicketStatusRequest  true  "Status"
// @Success      200      {object}  response.TicketResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/maintenance/{id}/status [patch]
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	var payload request.TicketStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	ticket, err := h.maintenance.UpdateStatus(c.Request.Context(), c.Param("id"), entities.TicketStatus(payload.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTicket(ticket))
}
