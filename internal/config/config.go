package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	// InsecureTenantSecret signs tenant tokens when JWT_SECRET_KEY is unset
	// outside production.
	InsecureTenantSecret = "fallback-pilas-tenant-secret-key-32chars"
)

var ErrMissingTenantSecret = errors.New("JWT_SECRET_KEY must be set in production")

type Config struct {
	HTTPAddr      string
	AppEnv        string
	AppURL        string
	BrandName     string
	Currency      string
	RoomPrefix    string
	StorageDriver string

	AWSRegion          string
	DynamoDBEndpoint   string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	TableWait          time.Duration

	TenantSecret     string
	TenantSessionTTL time.Duration
	CronSecret       string
	AdminSecret      string

	ResendAPIKey    string
	ResendBaseURL   string
	EmailFrom       string
	TwilioSID       string
	TwilioAuthToken string
	TwilioFrom      string
	TwilioBaseURL   string
	NotifyTimeout   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel  string
	LogFormat string
}

func Load() Config {
	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		AppEnv:        strings.ToLower(getenv("APP_ENV", "development")),
		AppURL:        strings.TrimRight(getenv("APP_URL", "http://localhost:8080"), "/"),
		BrandName:     getenv("BRAND_NAME", "PILAS Properties"),
		Currency:      getenv("CURRENCY_SYMBOL", "GH₵"),
		RoomPrefix:    getenv("ROOM_PREFIX", "PIL"),
		StorageDriver: strings.ToLower(getenv("STORAGE_DRIVER", StorageDynamoDB)),

		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		TableWait:          getenvDuration("DYNAMODB_TABLE_WAIT", 2*time.Minute),

		TenantSecret:     os.Getenv("JWT_SECRET_KEY"),
		TenantSessionTTL: getenvDuration("TENANT_SESSION_TTL", 7*24*time.Hour),
		CronSecret:       os.Getenv("CRON_SECRET"),
		AdminSecret:      os.Getenv("ADMIN_JWT_SECRET"),

		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ResendBaseURL:   os.Getenv("RESEND_BASE_URL"),
		EmailFrom:       getenv("EMAIL_FROM", "PILAS Properties <noreply@pilasproperties.com>"),
		TwilioSID:       os.Getenv("TWILIO_SID"),
		TwilioAuthToken: os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:      os.Getenv("TWILIO_FROM"),
		TwilioBaseURL:   os.Getenv("TWILIO_BASE_URL"),
		NotifyTimeout:   getenvDuration("NOTIFY_TIMEOUT", 10*time.Second),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// Validate rejects configurations that must not serve traffic.
func (c Config) Validate() error {
	if c.Production() && c.TenantSecret == "" {
		return ErrMissingTenantSecret
	}
	if c.StorageDriver != StorageDynamoDB && c.StorageDriver != StorageMemory {
		return errors.New("STORAGE_DRIVER must be dynamodb or memory")
	}
	return nil
}

// SigningSecret is the tenant token key, falling back to a well-known
// development key when none is configured.
func (c Config) SigningSecret() string {
	if c.TenantSecret == "" {
		return InsecureTenantSecret
	}
	return c.TenantSecret
}

// Warnings lists insecure or degraded settings worth logging at startup.
func (c Config) Warnings() []string {
	var out []string
	if c.TenantSecret == "" {
		out = append(out, "JWT_SECRET_KEY is not set; tenant tokens are signed with the insecure development key")
	}
	if c.CronSecret == "" {
		out = append(out, "CRON_SECRET is not set; cron endpoints are open")
	}
	if c.AdminSecret == "" {
		out = append(out, "ADMIN_JWT_SECRET is not set; every admin request will be rejected")
	}
	if c.ResendAPIKey == "" {
		out = append(out, "RESEND_API_KEY is not set; emails are logged instead of sent")
	}
	if c.TwilioSID == "" || c.TwilioAuthToken == "" {
		out = append(out, "TWILIO_SID or TWILIO_AUTH_TOKEN is not set; SMS are logged instead of sent")
	}
	if c.RedisAddr == "" {
		out = append(out, "REDIS_ADDR is not set; logged-out tokens stay valid until they expire")
	}
	return out
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
