package handlers

import (
	"net/http"
	request "rental_portal/internal/adapter/http/dto/request"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments usecase.IPaymentUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// List godoc
// @Summary      List payments
// @Tags         admin-payments
// @Produce      json
// @Security     BearerAuth
// @Param        tenant_id  query    string  false  "Only this tenant"
// @Success      200        {array}  response.PaymentResponse
// @Router       /api/admin/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	var (
		list []entities.Payment
		err  error
	)
	if tenantID := c.Query("tenant_id"); tenantID != "" {
		list, err = h.payments.ListByTenantID(c.Request.Context(), tenantID)
	} else {
		list, err = h.payments.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(list))
}

// Create godoc
// @Summary      Log a payment
// @Tags         admin-payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.PaymentRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /api/admin/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}
	payment, err := h.payments.Log(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

// Settle godoc
// @Summary      Mark a payment as paid
// @Tags         admin-payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Payment ID"
// @Param        payload  body      request.SettleRequest  false "Payment method"
// @Success      200      {object}  response.PaymentResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /api/admin/payments/{id}/settle [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	var payload request.SettleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeAppError(c, errInvalidPayload)
			return
		}
	}
	payment, err := h.payments.Settle(c.Request.Context(), c.Param("id"), payload.Method)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// GenerateInvoices godoc
// @Summary      Create next month's rent invoices
// @Description  Idempotent: tenants already invoiced for the due date are skipped.
// @Tags         admin-payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.InvoiceRunResponse
// @Router       /api/admin/payments/invoices/generate [post]
func (h *PaymentHandler) GenerateInvoices(c *gin.Context) {
	run, err := h.payments.GenerateMonthlyInvoices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceRun(run))
}
