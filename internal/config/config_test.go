package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "APP_ENV", "JWT_SECRET_KEY", "STORAGE_DRIVER", "TENANT_SESSION_TTL", "ROOM_PREFIX", "CRON_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default HTTP_ADDR, got %s", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("expected dynamodb storage, got %s", cfg.StorageDriver)
	}
	if cfg.TenantSessionTTL != 7*24*time.Hour {
		t.Fatalf("expected a 7 day session, got %s", cfg.TenantSessionTTL)
	}
	if cfg.SigningSecret() != InsecureTenantSecret {
		t.Fatalf("expected the development fallback secret")
	}
	if cfg.RoomPrefix != "PIL" {
		t.Fatalf("expected PIL room prefix, got %s", cfg.RoomPrefix)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("development defaults should validate: %v", err)
	}
	if len(cfg.Warnings()) == 0 {
		t.Fatalf("expected warnings for the insecure defaults")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_URL", "https://portal.example.com/")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("JWT_SECRET_KEY", "a-real-secret")
	t.Setenv("TENANT_SESSION_TTL", "12h")
	t.Setenv("NOTIFY_TIMEOUT_SECONDS", "3")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected HTTP_ADDR override, got %s", cfg.HTTPAddr)
	}
	if cfg.AppURL != "https://portal.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.AppURL)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage, got %s", cfg.StorageDriver)
	}
	if cfg.SigningSecret() != "a-real-secret" {
		t.Fatalf("expected configured secret")
	}
	if cfg.TenantSessionTTL != 12*time.Hour {
		t.Fatalf("expected 12h session, got %s", cfg.TenantSessionTTL)
	}
	if cfg.NotifyTimeout != 3*time.Second {
		t.Fatalf("expected 3s notify timeout, got %s", cfg.NotifyTimeout)
	}
	if cfg.RedisDB != 2 {
		t.Fatalf("expected redis db 2, got %d", cfg.RedisDB)
	}
}

func TestValidate(t *testing.T) {
	t.Run("production requires a tenant secret", func(t *testing.T) {
		cfg := Config{AppEnv: "production", StorageDriver: StorageDynamoDB}
		if err := cfg.Validate(); err != ErrMissingTenantSecret {
			t.Fatalf("expected ErrMissingTenantSecret, got %v", err)
		}
		cfg.TenantSecret = "s"
		if err := cfg.Validate(); err != nil {
			t.Fatalf("expected valid config, got %v", err)
		}
	})

	t.Run("unknown storage driver", func(t *testing.T) {
		cfg := Config{StorageDriver: "postgres"}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected an error")
		}
	})
}
