package routes

import (
	"context"
	"errors"
	"net/http"
	_ "rental_portal/docs"
	"rental_portal/internal/adapter/http/handlers"
	"rental_portal/internal/adapter/http/middleware"
	"rental_portal/internal/infrastructure/metrics"
	"rental_portal/internal/usecase"
	"rental_portal/internal/usecase/interfaces"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI   = "/api"
	PathAdmin = "/admin"
	PathCron  = "/cron"
)

// Dependencies is everything the HTTP surface needs from the composition root.
type Dependencies struct {
	Apartments   usecase.IApartmentUseCase
	Tenants      usecase.ITenantUseCase
	TenantAuth   usecase.ITenantAuthUseCase
	Applications usecase.IApplicationUseCase
	Agreements   usecase.IAgreementUseCase
	Payments     usecase.IPaymentUseCase
	Maintenance  usecase.IMaintenanceUseCase
	Sweeps       usecase.ISweepUseCase

	AdminIdentity interfaces.IAdminIdentity
	Metrics       *metrics.Metrics
	Logger        *zap.Logger

	CronSecret    string
	SecureCookies bool
	SessionTTL    time.Duration
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(deps.Metrics.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addTenantAuthRoutes(api, handlers.NewTenantAuthHandler(deps.TenantAuth, deps.SecureCookies, deps.SessionTTL, logger))
	addCronRoutes(api.Group(PathCron, middleware.CronAuth(deps.CronSecret)), handlers.NewCronHandler(deps.Sweeps, deps.Metrics))
	addAdminRoutes(api.Group(PathAdmin, middleware.AdminAuth(deps.AdminIdentity, logger)), deps)

	addTenantAreaRoutes(router, deps.TenantAuth, handlers.NewTenantAreaHandler(
		deps.Tenants,
		deps.Payments,
		deps.Maintenance,
		deps.Applications,
		deps.Agreements,
	))

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][server] listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("[http][server] shutting down")
	return srv.Shutdown(shutdownCtx)
}
