package handlers

import (
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AgreementHandler struct {
	agreements usecase.IAgreementUseCase
}

func NewAgreementHandler(agreements usecase.IAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{agreements: agreements}
}

// List godoc
// @Summary      List agreements
// @Tags         admin-agreements
// @Produce      json
// @Security     BearerAuth
// @Param        tenant_id  query    string  false  "Only this tenant"
// @Success      200        {array}  response.AgreementResponse
// @Router       /api/admin/agreements [get]
func (h *AgreementHandler) List(c *gin.Context) {
	var (
		list []entities.Agreement
		err  error
	)
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		list, err = h.agreements.ListByTenantID(c.Request.Context(), tenantID)
	} else {
		list, err = h.agreements.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreements(list))
}

// Get godoc
// @Summary      Get an agreement
// @Tags         admin-agreements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resource ID"
// @Success      200  {object}  response.AgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /api/admin/agreements/{id} [get]
func (h *AgreementHandler) Get(c *gin.Context) {
	agreement, err := h.agreements.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

// Create godoc
// @Summary      Draft a lease agreement
// @Tags         admin-agreements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.AgreementRequest  true  "Agreement"
// @Success      201      {object}  response.AgreementResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /api/admin/agreements [post]
func (h *AgreementHandler) Create(c *gin.Context) {
	var payload request.AgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}
	agreement, err := h.agreements.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAgreement(agreement))
}

// Dispatch godoc
// @Summary      Email the agreement to the tenant for signature
// @Description  Unlike other notifications, a failed email fails the request and leaves the agreement a draft.
// @Tags         admin-agreements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Agreement ID"
// @Success      200  {object}  response.AgreementResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /api/admin/agreements/{id}/dispatch [post]
func (h *AgreementHandler) Dispatch(c *gin.Context) {
	agreement, err := h.agreements.DispatchForSignature(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

// Countersign godoc
// @Summary      Countersign a tenant-signed agreement
// @Tags         admin-agreements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Agreement ID"
// @Param        payload  body      request.SignatureRequest  true  "Signature"
// @Success      200      {object}  response.AgreementResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/agreements/{id}/countersign [post]
func (h *AgreementHandler) Countersign(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	agreement, err := h.agreements.AdminCountersign(c.Request.Context(), c.Param("id"), payload.SignatureURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}
