package handlers

import (
	"context"
	"net/http"
	response "rental_portal/internal/adapter/http/dto/response"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SweepRecorder receives the outcome of every sweep run.
type SweepRecorder interface {
	SweepCompleted(sweep string, notified, failed, transitioned int, err error)
}

type CronHandler struct {
	sweeps   usecase.ISweepUseCase
	recorder SweepRecorder
}

func NewCronHandler(sweeps usecase.ISweepUseCase, recorder SweepRecorder) *CronHandler {
	return &CronHandler{sweeps: sweeps, recorder: recorder}
}

// RentReminders godoc
// @Summary      Remind tenants of rent due in seven days
// @Tags         cron
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.SweepResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /api/cron/rent-reminders [get]
func (h *CronHandler) RentReminders(c *gin.Context) {
	h.run(c, usecase.SweepRentDueSoon, h.sweeps.RentDueSoon)
}

// RentOverdue godoc
// @Summary      Mark and remind overdue rent
// @Tags         cron
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.SweepResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /api/cron/rent-overdue [get]
func (h *CronHandler) RentOverdue(c *gin.Context) {
	h.run(c, usecase.SweepRentOverdue, h.sweeps.RentOverdue)
}

// LeaseExpiry godoc
// @Summary      Send the 30-day lease expiry notice
// @Tags         cron
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.SweepResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /api/cron/lease-expiry [get]
func (h *CronHandler) LeaseExpiry(c *gin.Context) {
	h.run(c, usecase.SweepLeaseExpiring, h.sweeps.LeaseExpiring)
}

func (h *CronHandler) run(c *gin.Context, name string, sweep func(ctx context.Context) (usecase.SweepResult, error)) {
	res, err := sweep(c.Request.Context())
	if h.recorder != nil {
		h.recorder.SweepCompleted(name, res.Notified, res.Failed, res.Transitioned, err)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	if res.Sweep == "" {
		res.Sweep = name
	}
	c.JSON(http.StatusOK, response.FromSweep(res))
}
