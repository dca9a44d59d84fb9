package main

import (
	"context"
	"fmt"
	"rental_portal/internal/adapter/http/routes"
	"rental_portal/internal/adapter/persistence/memory"
	"rental_portal/internal/adapter/persistence/repository"
	"rental_portal/internal/config"
	"rental_portal/internal/infrastructure/auth"
	"rental_portal/internal/infrastructure/database"
	"rental_portal/internal/infrastructure/logger"
	"rental_portal/internal/infrastructure/metrics"
	"rental_portal/internal/infrastructure/notifications"
	"rental_portal/internal/usecase"
	"rental_portal/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "rental-portal"

type repositories struct {
	apartments   interfaces.IApartmentRepository
	tenants      interfaces.ITenantRepository
	applications interfaces.IApplicationRepository
	agreements   interfaces.IAgreementRepository
	payments     interfaces.IPaymentRepository
	tickets      interfaces.ITicketRepository
}

// app is the composition root shared by every command.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	redis   *redis.Client

	deps routes.Dependencies
}

// loadConfig reads and validates the environment and builds the logger.
func loadConfig() (config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		return cfg, nil, fmt.Errorf("build logger: %w", err)
	}
	for _, w := range cfg.Warnings() {
		log.Warn("[config] " + w)
	}
	return cfg, log, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	repos, err := newRepositories(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: log, metrics: metrics.New()}

	var revoker interfaces.ISessionRevoker
	if cfg.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := a.redis.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		revoker = auth.NewRedisRevoker(a.redis)
	}

	notifier, err := newNotifier(cfg, a.metrics, log)
	if err != nil {
		return nil, err
	}

	settings := usecase.PortalSettings{
		BrandName:      cfg.BrandName,
		AppURL:         cfg.AppURL,
		CurrencySymbol: cfg.Currency,
	}
	hasher := auth.NewPasscodeHasher(auth.PasscodeCost)
	tokens := auth.NewTenantTokens(cfg.SigningSecret(), cfg.TenantSessionTTL)

	agreements := usecase.NewAgreementUseCase(repos.agreements, repos.tenants, notifier, settings, log)
	a.deps = routes.Dependencies{
		Apartments:   usecase.NewApartmentUseCase(repos.apartments, hasher, cfg.RoomPrefix, log),
		Tenants:      usecase.NewTenantUseCase(repos.apartments, repos.tenants, repos.agreements, repos.payments, repos.tickets, hasher, notifier, settings, log),
		TenantAuth:   usecase.NewTenantAuthUseCase(repos.apartments, repos.tenants, hasher, tokens, revoker, log),
		Applications: usecase.NewApplicationUseCase(repos.applications, repos.tenants, repos.apartments, agreements, notifier, settings, log),
		Agreements:   agreements,
		Payments:     usecase.NewPaymentUseCase(repos.payments, repos.tenants, repos.apartments, log),
		Maintenance:  usecase.NewMaintenanceUseCase(repos.tickets, repos.tenants, notifier, settings, log),
		Sweeps:       usecase.NewSweepUseCase(repos.payments, repos.agreements, repos.tenants, repos.apartments, notifier, settings, log),

		AdminIdentity: auth.NewAdminTokens(cfg.AdminSecret, log),
		Metrics:       a.metrics,
		Logger:        log,

		CronSecret:    cfg.CronSecret,
		SecureCookies: cfg.Production(),
		SessionTTL:    cfg.TenantSessionTTL,
	}
	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("[app] redis close failed", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

func newRepositories(ctx context.Context, cfg config.Config, log *zap.Logger) (repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("[app] using the in-memory store; data is lost on restart")
		store, err := memory.NewStore()
		if err != nil {
			return repositories{}, fmt.Errorf("memory store: %w", err)
		}
		return repositories{
			apartments:   memory.NewApartmentRepository(store),
			tenants:      memory.NewTenantRepository(store),
			applications: memory.NewApplicationRepository(store),
			agreements:   memory.NewAgreementRepository(store),
			payments:     memory.NewPaymentRepository(store),
			tickets:      memory.NewTicketRepository(store),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(cfg))
	if err != nil {
		return repositories{}, err
	}
	tables := repository.TableNamesFromEnv()
	return repositories{
		apartments:   repository.NewApartmentDynamoRepository(ddb, tables),
		tenants:      repository.NewTenantDynamoRepository(ddb, tables),
		applications: repository.NewApplicationDynamoRepository(ddb, tables),
		agreements:   repository.NewAgreementDynamoRepository(ddb, tables),
		payments:     repository.NewPaymentDynamoRepository(ddb, tables),
		tickets:      repository.NewTicketDynamoRepository(ddb, tables),
	}, nil
}

func dynamoOptions(cfg config.Config) database.Options {
	return database.Options{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
}

// newNotifier wires the real providers only when their keys are present;
// a missing provider leaves that channel in mock mode.
func newNotifier(cfg config.Config, m *metrics.Metrics, log *zap.Logger) (*notifications.Dispatcher, error) {
	templates, err := notifications.NewTemplates()
	if err != nil {
		return nil, fmt.Errorf("notification templates: %w", err)
	}

	var email notifications.EmailSender
	if cfg.ResendAPIKey != "" {
		email = notifications.NewResendClient(cfg.ResendBaseURL, cfg.ResendAPIKey, cfg.EmailFrom, cfg.NotifyTimeout, log)
	}
	var sms notifications.SMSSender
	if cfg.TwilioSID != "" && cfg.TwilioAuthToken != "" {
		sms = notifications.NewTwilioClient(cfg.TwilioBaseURL, cfg.TwilioSID, cfg.TwilioAuthToken, cfg.TwilioFrom, cfg.NotifyTimeout, log)
	}
	return notifications.NewDispatcher(email, sms, templates, m, cfg.NotifyTimeout, log), nil
}
