package routes

import (
	"rental_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApartments   = "/apartments"
	PathTenants      = "/tenants"
	PathApplications = "/applications"
	PathAgreements   = "/agreements"
	PathPayments     = "/payments"
	PathMaintenance  = "/maintenance"
)

func addAdminRoutes(rg *gin.RouterGroup, deps Dependencies) {
	apartmentHandler := handlers.NewApartmentHandler(deps.Apartments, deps.Tenants)
	tenantHandler := handlers.NewTenantHandler(deps.Tenants)
	applicationHandler := handlers.NewApplicationHandler(deps.Applications)
	agreementHandler := handlers.NewAgreementHandler(deps.Agreements)
	paymentHandler := handlers.NewPaymentHandler(deps.Payments)
	maintenanceHandler := handlers.NewMaintenanceHandler(deps.Maintenance)

	apartments := rg.Group(PathApartments)
	{
		apartments.GET("", apartmentHandler.List)
		apartments.POST("", apartmentHandler.Create)
		apartments.GET("/:id", apartmentHandler.Get)
		apartments.PUT("/:id", apartmentHandler.Update)
		apartments.DELETE("/:id", apartmentHandler.Delete)
		apartments.PATCH("/:id/status", apartmentHandler.ChangeStatus)
		apartments.POST("/:id/archive", apartmentHandler.Archive)
		apartments.POST("/:id/assign", apartmentHandler.Assign)
	}

	tenants := rg.Group(PathTenants)
	{
		tenants.GET("", tenantHandler.List)
		tenants.GET("/:id", tenantHandler.Get)
		tenants.POST("/:id/deactivate", tenantHandler.Deactivate)
		tenants.POST("/:id/activate", tenantHandler.Activate)
		tenants.POST("/:id/reset-passcode", tenantHandler.ResetPasscode)
	}

	applications := rg.Group(PathApplications)
	{
		applications.GET("", applicationHandler.List)
		applications.GET("/:id", applicationHandler.Get)
		applications.POST("/:id/review", applicationHandler.Review)
	}

	agreements := rg.Group(PathAgreements)
	{
		agreements.GET("", agreementHandler.List)
		agreements.POST("", agreementHandler.Create)
		agreements.GET("/:id", agreementHandler.Get)
		agreements.POST("/:id/dispatch", agreementHandler.Dispatch)
		agreements.POST("/:id/countersign", agreementHandler.Countersign)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("", paymentHandler.List)
		payments.POST("", paymentHandler.Create)
		payments.POST("/invoices/generate", paymentHandler.GenerateInvoices)
		payments.POST("/:id/settle", paymentHandler.Settle)
	}

	maintenance := rg.Group(PathMaintenance)
	{
		maintenance.GET("", maintenanceHandler.List)
		maintenance.PATCH("/:id/status", maintenanceHandler.UpdateStatus)
	}
}
