package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATABASE_DRIVER", "DATABASE_DSN", "JWT_SECRET", "SESSION_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseDriver != "mysql" {
		t.Errorf("DatabaseDriver = %q, want mysql", cfg.DatabaseDriver)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:passforge.db")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")

	cfg := Load()
	if cfg.DatabaseDriver != "sqlite" || cfg.DatabaseDSN != "file:passforge.db" {
		t.Errorf("database = %s %s", cfg.DatabaseDriver, cfg.DatabaseDSN)
	}
	if cfg.SessionTTL != 90*time.Minute {
		t.Errorf("SessionTTL = %v, want 90m", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 4 {
		t.Errorf("rate limit = %v/%d, want 2.5/4", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("RATE_LIMIT_RPS", "-1")
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg := Load()
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want default 24h", cfg.SessionTTL)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("rate limit = %v/%d, want defaults 5/10", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}
