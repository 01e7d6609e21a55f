package main

import (
	"context"
	"testing"
	"time"

	"github.com/LovationAdmin/holiday-api/config"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/routes"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"
)

func TestBootstrapSeedsInMemoryStore(t *testing.T) {
	cfg := &config.Config{
		AdminName: "Captain",
		SeedTrip: &config.SeedTrip{
			Destination: "Lisbon",
			StartDate:   "2030-06-01",
			EndDate:     "2030-06-10",
			Travelers:   12,
		},
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	ctx := context.Background()
	if _, err := store.Users.Create(ctx, &models.User{Name: "captain", Role: models.RoleMember}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	tokens := utils.NewTokenManager("test-secret", time.Hour)
	svc := routes.Services{
		Auth:  services.NewAuthService(store.Users, tokens, "letmein", cfg.AdminName),
		Trips: services.NewTripService(store.Trips),
	}

	bootstrap(cfg, svc)
	bootstrap(cfg, svc)

	trips, err := svc.Trips.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(trips) != 1 || trips[0].Destination != "Lisbon" || trips[0].Travelers != 12 {
		t.Errorf("trips = %+v, want one seeded Lisbon trip", trips)
	}

	admin, err := store.Users.GetByName(ctx, "captain")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin after sync", admin.Role)
	}
}
