package handlers

import (
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TenantAreaHandler serves everything behind the tenant route guard. Every
// lookup is scoped to the tenant of the session.
type TenantAreaHandler struct {
	tenants      usecase.ITenantUseCase
	payments     usecase.IPaymentUseCase
	maintenance  usecase.IMaintenanceUseCase
	applications usecase.IApplicationUseCase
	agreements   usecase.IAgreementUseCase
}

func NewTenantAreaHandler(
	tenants usecase.ITenantUseCase,
	payments usecase.IPaymentUseCase,
	maintenance usecase.IMaintenanceUseCase,
	applications usecase.IApplicationUseCase,
	agreements usecase.IAgreementUseCase,
) *TenantAreaHandler {
	return &TenantAreaHandler{
		tenants:      tenants,
		payments:     payments,
		maintenance:  maintenance,
		applications: applications,
		agreements:   agreements,
	}
}

func currentTenant(c *gin.Context) (entities.TenantSession, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		writeAppError(c, errMissingSession)
	}
	return session, ok
}

// Dashboard godoc
// @Summary      Tenant dashboard
// @Tags         tenant
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Router       /tenant [get]
func (h *TenantAreaHandler) Dashboard(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	dash, err := h.tenants.Dashboard(c.Request.Context(), session.TenantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(dash))
}

// ChangePasscodePage is the one tenant page reachable while the issued
// passcode is still in use.
// @Summary      Session of a tenant that still has to rotate the passcode
// @Tags         tenant
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Router       /tenant/settings/change-passcode [get]
func (h *TenantAreaHandler) ChangePasscodePage(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Payments godoc
// @Summary      Payment history of the signed-in tenant
// @Tags         tenant
// @Produce      json
// @Success      200  {array}  response.PaymentResponse
// @Router       /tenant/payments [get]
func (h *TenantAreaHandler) Payments(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	list, err := h.payments.ListByTenantID(c.Request.Context(), session.TenantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// ListTickets godoc
// @Summary      Maintenance tickets of the signed-in tenant
// @Tags         tenant
// @Produce      json
// @Success      200  {array}  response.TicketResponse
// @Router       /tenant/maintenance [get]
func (h *TenantAreaHandler) ListTickets(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	list, err := h.maintenance.ListByTenantID(c.Request.Context(), session.TenantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(list))
}

// SubmitTicket godoc
// @Summary      Open a maintenance ticket
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        payload  body      request.TicketRequest  true  "Ticket"
// @Success      201      {object}  response.TicketResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /tenant/maintenance [post]
func (h *TenantAreaHandler) SubmitTicket(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	var payload request.TicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	ticket, err := h.maintenance.Submit(c.Request.Context(), session.TenantID, payload.Title, payload.Description, payload.ToPriority())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

// ListApplications godoc
// @Summary      Applications of the signed-in tenant
// @Tags         tenant
// @Produce      json
// @Success      200  {array}  response.ApplicationResponse
// @Router       /tenant/application [get]
func (h *TenantAreaHandler) ListApplications(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	list, err := h.applications.ListByTenantID(c.Request.Context(), session.TenantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(list))
}

// SubmitApplication godoc
// @Summary      Submit the rental application
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ApplicationRequest  true  "Applicant facts"
// @Success      201      {object}  response.ApplicationResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /tenant/application [post]
func (h *TenantAreaHandler) SubmitApplication(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	var payload request.ApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	app, err := h.applications.Submit(c.Request.Context(), session.TenantID, payload.ToFacts())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// GetAgreement godoc
// @Summary      Agreement of the signed-in tenant
// @Tags         tenant
// @Produce      json
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.AgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tenant/agreements/{id} [get]
func (h *TenantAreaHandler) GetAgreement(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	agreement, err := h.agreements.GetForTenant(c.Request.Context(), session.TenantID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

// SignAgreement godoc
// @Summary      Sign an agreement sent for signature
// @Tags         tenant
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Agreement ID"
// @Param        payload  body      request.SignatureRequest  true  "Signature"
// @Success      200      {object}  response.AgreementResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /tenant/agreements/{id}/sign [post]
func (h *TenantAreaHandler) SignAgreement(c *gin.Context) {
	session, ok := currentTenant(c)
	if !ok {
		return
	}
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	agreement, err := h.agreements.TenantSign(c.Request.Context(), session.TenantID, c.Param("id"), payload.SignatureURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}
