package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/LovationAdmin/holiday-api/config"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/notify"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/repository/memory"
	"github.com/LovationAdmin/holiday-api/repository/postgres"
	"github.com/LovationAdmin/holiday-api/routes"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const appName = "holiday-api"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.InitLogger(cfg.LogLevel, cfg.IsProduction())
	utils.RegisterSecret(cfg.InviteCode)
	utils.RegisterSecret(cfg.JWTSecret)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	sealer, err := utils.NewSealer(cfg.DataEncryptionKey)
	if err != nil {
		logger.Fatalf("Failed to initialise encryption: %v", err)
	}
	if !sealer.Enabled() {
		utils.SafeWarn("DATA_ENCRYPTION_KEY not set, booking references are stored in plain text")
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			utils.SafeWarn("Telegram notifications disabled: %v", err)
		} else {
			notifier = tg
		}
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	activities := services.NewActivityService(store.Trips, store.Activities, notifier)
	svc := routes.Services{
		Auth:       services.NewAuthService(store.Users, tokens, cfg.InviteCode, cfg.AdminName),
		Members:    services.NewMemberService(store.Users),
		Trips:      services.NewTripService(store.Trips),
		Itinerary:  services.NewItineraryService(store.Trips, store.Itinerary, notifier),
		Activities: activities,
		Travel:     services.NewTravelService(store.Trips, store.Travel, sealer),
		Budget:     services.NewBudgetService(store.Trips, store.Itinerary, activities, cfg.ExchangeRate, cfg.SecondaryCurrency),
	}

	bootstrap(cfg, svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.LogStartup(appName, "1.0.0", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	utils.SafeInfo("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		utils.SafeError("Graceful shutdown failed: %v", err)
	}
}

// openStore connects to PostgreSQL and migrates it, or falls back to the
// in-memory store when no database is configured outside production.
func openStore(cfg *config.Config) (*repository.Store, func()) {
	if cfg.DatabaseURL == "" {
		utils.SafeWarn("DATABASE_URL not set, using the in-memory store; data is lost on restart")
		return memory.NewStore(), func() {}
	}

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		utils.Logger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.SafeInfo("Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		utils.Logger.Fatalf("Failed to run migrations: %v", err)
	}

	return postgres.NewStore(db), func() { db.Close() }
}

// bootstrap corrects the admin role and seeds the first trip.
func bootstrap(cfg *config.Config, svc routes.Services) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.Auth.SyncAdmin(ctx); err != nil {
		utils.SafeWarn("Admin role sync failed: %v", err)
	}

	if cfg.SeedTrip == nil {
		return
	}
	trip, err := svc.Trips.Seed(ctx, models.TripRequest{
		Destination: cfg.SeedTrip.Destination,
		StartDate:   cfg.SeedTrip.StartDate,
		EndDate:     cfg.SeedTrip.EndDate,
		Travelers:   cfg.SeedTrip.Travelers,
	})
	if err != nil {
		utils.SafeWarn("Trip seed skipped: %v", err)
		return
	}
	if trip != nil {
		utils.SafeInfo("Seeded trip to %s", trip.Destination)
	}
}
