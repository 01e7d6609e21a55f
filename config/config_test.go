package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "GIN_MODE", "ENVIRONMENT", "ENV", "LOG_LEVEL", "FRONTEND_URL",
		"JWT_SECRET", "INVITE_CODE", "ADMIN_NAME", "SECONDARY_CURRENCY", "EXCHANGE_RATE",
		"DATA_ENCRYPTION_KEY", "RATE_LIMIT_PER_MINUTE", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
		"TRIP_DESTINATION", "TRIP_START_DATE", "TRIP_END_DATE", "TRIP_TRAVELERS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("INVITE_CODE", "  letmein ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" || cfg.ExchangeRate != 0.85 || cfg.SecondaryCurrency != "GBP" {
		t.Errorf("defaults = port %s rate %v currency %s", cfg.Port, cfg.ExchangeRate, cfg.SecondaryCurrency)
	}
	if cfg.InviteCode != "letmein" {
		t.Errorf("InviteCode = %q, want trimmed", cfg.InviteCode)
	}
	if cfg.JWTSecret != devJWTSecret || cfg.TokenTTL != 7*24*time.Hour {
		t.Errorf("token config = %q / %v", cfg.JWTSecret, cfg.TokenTTL)
	}
	if cfg.RateLimitPerMinute != 100 || cfg.IsProduction() || cfg.TelegramEnabled() || cfg.SeedTrip != nil {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadCollectsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("EXCHANGE_RATE", "abc")
	t.Setenv("DATA_ENCRYPTION_KEY", "too-short")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")

	_, err := Load()
	if err == nil {
		t.Fatal("Load succeeded with broken environment")
	}

	for _, key := range []string{"INVITE_CODE", "JWT_SECRET", "DATABASE_URL", "EXCHANGE_RATE", "DATA_ENCRYPTION_KEY", "TELEGRAM_CHAT_ID"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error does not mention %s: %v", key, err)
		}
	}
}

func TestLoadRejectsNonFiniteExchangeRate(t *testing.T) {
	for _, raw := range []string{"0", "-1", "NaN", "Inf", "-Inf", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("INVITE_CODE", "letmein")
			t.Setenv("EXCHANGE_RATE", raw)

			cfg, err := Load()
			if err == nil {
				t.Fatalf("Load accepted EXCHANGE_RATE=%s (rate=%v)", raw, cfg.ExchangeRate)
			}
			if !strings.Contains(err.Error(), "EXCHANGE_RATE") {
				t.Errorf("error does not mention EXCHANGE_RATE: %v", err)
			}
		})
	}
}

func TestLoadSeedTripAndTelegram(t *testing.T) {
	clearEnv(t)
	t.Setenv("INVITE_CODE", "letmein")
	t.Setenv("TRIP_DESTINATION", "Lisbon")
	t.Setenv("TRIP_START_DATE", "2030-06-01")
	t.Setenv("TRIP_END_DATE", "2030-06-10")
	t.Setenv("TRIP_TRAVELERS", "12")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001234")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SeedTrip == nil || cfg.SeedTrip.Travelers != 12 || cfg.SeedTrip.Destination != "Lisbon" {
		t.Errorf("SeedTrip = %+v", cfg.SeedTrip)
	}
	if !cfg.TelegramEnabled() || cfg.TelegramChatID != -1001234 {
		t.Errorf("telegram = %v / %d", cfg.TelegramEnabled(), cfg.TelegramChatID)
	}
}
