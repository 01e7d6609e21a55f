package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/repository"
	"github.com/LovationAdmin/holiday-api/repository/memory"
	"github.com/LovationAdmin/holiday-api/utils"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages)
}

type testEnv struct {
	store      *repository.Store
	notifier   *recordingNotifier
	trips      *TripService
	itinerary  *ItineraryService
	activities *ActivityService
	members    *MemberService
	auth       *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	notifier := &recordingNotifier{}
	return &testEnv{
		store:      store,
		notifier:   notifier,
		trips:      NewTripService(store.Trips),
		itinerary:  NewItineraryService(store.Trips, store.Itinerary, notifier),
		activities: NewActivityService(store.Trips, store.Activities, notifier),
		members:    NewMemberService(store.Users),
		auth:       NewAuthService(store.Users, utils.NewTokenManager("test-secret", time.Hour), "letmein", "Captain"),
	}
}

func (e *testEnv) trip(t *testing.T, travelers int) *models.Trip {
	t.Helper()
	trip, err := e.trips.Create(context.Background(), nil, models.TripRequest{
		Destination: "Lisbon",
		StartDate:   "2030-06-01",
		EndDate:     "2030-06-10",
		Travelers:   travelers,
	})
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}
	return trip
}

func (e *testEnv) user(t *testing.T, name string) *models.User {
	t.Helper()
	user, err := e.store.Users.Create(context.Background(), &models.User{Name: name, Role: models.RoleMember})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (e *testEnv) activity(t *testing.T, tripID string, proposer *models.User, cost float64) *models.Activity {
	t.Helper()
	a, err := e.activities.Create(context.Background(), tripID, proposer, models.ActivityRequest{Title: "Surf lesson", CostEUR: &cost})
	if err != nil {
		t.Fatalf("create activity: %v", err)
	}
	return a
}

func isNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func isValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func isUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
func isForbidden(err error) bool    { return errors.Is(err, ErrForbidden) }
