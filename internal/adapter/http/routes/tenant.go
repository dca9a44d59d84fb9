package routes

import (
	"rental_portal/internal/adapter/http/handlers"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

func addTenantAuthRoutes(rg *gin.RouterGroup, h *handlers.TenantAuthHandler) {
	auth := rg.Group("/tenant/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/change-passcode", h.ChangePasscode)
	}
}

func addCronRoutes(rg *gin.RouterGroup, h *handlers.CronHandler) {
	rg.GET("/rent-reminders", h.RentReminders)
	rg.GET("/rent-overdue", h.RentOverdue)
	rg.GET("/lease-expiry", h.LeaseExpiry)
}

// addTenantAreaRoutes mounts the pages behind the tenant route guard.
func addTenantAreaRoutes(router *gin.Engine, auth usecase.ITenantAuthUseCase, h *handlers.TenantAreaHandler) {
	tenant := router.Group("/tenant", middleware.TenantGuard(auth))
	{
		tenant.GET("", h.Dashboard)
		tenant.GET("/settings/change-passcode", h.ChangePasscodePage)
		tenant.GET("/payments", h.Payments)
		tenant.GET("/maintenance", h.ListTickets)
		tenant.POST("/maintenance", h.SubmitTicket)
		tenant.GET("/application", h.ListApplications)
		tenant.POST("/application", h.SubmitApplication)
		tenant.GET("/agreements/:id", h.GetAgreement)
		tenant.POST("/agreements/:id/sign", h.SignAgreement)
	}
}
