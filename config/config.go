package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config holds all configuration for the application
type Config struct {
	Port        string
	DatabaseURL string
	Environment string
	LogLevel    string
	FrontendURL string

	JWTSecret  string
	TokenTTL   time.Duration
	InviteCode string
	AdminName  string

	SecondaryCurrency string
	ExchangeRate      float64

	DataEncryptionKey  string
	RateLimitPerMinute int

	TelegramToken  string
	TelegramChatID int64

	SeedTrip *SeedTrip
}

// SeedTrip describes the trip inserted on first start when the trips table is empty.
type SeedTrip struct {
	Destination string
	StartDate   string
	EndDate     string
	Travelers   int
}

const devJWTSecret = "holiday-dashboard-dev-secret"

// Load loads configuration from environment variables. Every problem found is
// reported at once.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Environment:       environment(),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		FrontendURL:       getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          7 * 24 * time.Hour,
		InviteCode:        strings.TrimSpace(os.Getenv("INVITE_CODE")),
		AdminName:         strings.TrimSpace(os.Getenv("ADMIN_NAME")),
		SecondaryCurrency: getEnvOrDefault("SECONDARY_CURRENCY", "GBP"),
		DataEncryptionKey: os.Getenv("DATA_ENCRYPTION_KEY"),
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
	}

	var result *multierror.Error

	if cfg.InviteCode == "" {
		result = multierror.Append(result, fmt.Errorf("INVITE_CODE environment variable is required"))
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			result = multierror.Append(result, fmt.Errorf("JWT_SECRET environment variable is required in production"))
		}
		cfg.JWTSecret = devJWTSecret
	}

	if cfg.DatabaseURL == "" && cfg.IsProduction() {
		result = multierror.Append(result, fmt.Errorf("DATABASE_URL environment variable is required in production"))
	}

	if n := len(cfg.DataEncryptionKey); n != 0 && n != 32 {
		result = multierror.Append(result, fmt.Errorf("DATA_ENCRYPTION_KEY must be exactly 32 characters, got %d", n))
	}

	rate, err := strconv.ParseFloat(getEnvOrDefault("EXCHANGE_RATE", "0.85"), 64)
	if err != nil || rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		result = multierror.Append(result, fmt.Errorf("EXCHANGE_RATE must be a positive number"))
	}
	cfg.ExchangeRate = rate

	limit, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_PER_MINUTE", "100"))
	if err != nil || limit <= 0 {
		result = multierror.Append(result, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer"))
	}
	cfg.RateLimitPerMinute = limit

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err))
		}
		cfg.TelegramChatID = chatID
	}

	if dest := strings.TrimSpace(os.Getenv("TRIP_DESTINATION")); dest != "" {
		travelers, err := strconv.Atoi(getEnvOrDefault("TRIP_TRAVELERS", "1"))
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("TRIP_TRAVELERS must be an integer: %w", err))
		}
		cfg.SeedTrip = &SeedTrip{
			Destination: dest,
			StartDate:   os.Getenv("TRIP_START_DATE"),
			EndDate:     os.Getenv("TRIP_END_DATE"),
			Travelers:   travelers,
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction mirrors the environment switches the deployment uses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TelegramEnabled reports whether group chat notifications are configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func environment() string {
	if os.Getenv("GIN_MODE") == "release" || os.Getenv("ENVIRONMENT") == "production" || os.Getenv("ENV") == "production" {
		return "production"
	}
	return "development"
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
