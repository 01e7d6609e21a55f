package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LovationAdmin/holiday-api/config"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/notify"
	"github.com/LovationAdmin/holiday-api/repository/memory"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
)

const missingID = "3f1c1d3e-0000-4000-8000-000000000000"

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		FrontendURL:        "http://localhost:3000",
		RateLimitPerMinute: 1000,
	}

	store := memory.NewStore()
	sealer, _ := utils.NewSealer("")
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	activities := services.NewActivityService(store.Trips, store.Activities, notify.Nop{})

	router := NewRouter(cfg, Services{
		Auth:       services.NewAuthService(store.Users, tokens, "letmein", "Captain"),
		Members:    services.NewMemberService(store.Users),
		Trips:      services.NewTripService(store.Trips),
		Itinerary:  services.NewItineraryService(store.Trips, store.Itinerary, nil),
		Activities: activities,
		Travel:     services.NewTravelService(store.Trips, store.Travel, sealer),
		Budget:     services.NewBudgetService(store.Trips, store.Itinerary, activities, 0.85, "GBP"),
	})

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) signup(name string) models.AuthResponse {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/auth/signup", "", gin.H{"name": name, "password": "secret1", "invite_code": "letmein"})
	if w.Code != http.StatusCreated {
		s.t.Fatalf("signup %s: status %d body %s", name, w.Code, w.Body.String())
	}
	var resp models.AuthResponse
	decode(s.t, w, &resp)
	return resp
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}

func (s *testServer) createTrip(token string) models.Trip {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/v1/trips", token, gin.H{
		"destination": "Lisbon", "start_date": "2030-06-01", "end_date": "2030-06-10", "travelers": 12,
	})
	expectStatus(s.t, w, http.StatusCreated)
	var trip models.Trip
	decode(s.t, w, &trip)
	return trip
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	expectStatus(t, s.do(http.MethodGet, "/health", "", nil), http.StatusOK)
	expectStatus(t, s.do(http.MethodGet, "/metrics", "", nil), http.StatusOK)
}

func TestAccessGate(t *testing.T) {
	s := newTestServer(t)
	admin := s.signup("Captain")
	member := s.signup("Bob")

	if !admin.User.IsAdmin || member.User.IsAdmin {
		t.Fatalf("roles: admin=%v member=%v", admin.User.IsAdmin, member.User.IsAdmin)
	}

	trip := s.createTrip(admin.Token)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		want   int
	}{
		{"no token", http.MethodGet, "/api/v1/trips", "", nil, http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/v1/trips", "garbage", nil, http.StatusUnauthorized},
		{"member reads", http.MethodGet, "/api/v1/trips", member.Token, nil, http.StatusOK},
		{"member creates trip", http.MethodPost, "/api/v1/trips", member.Token, gin.H{"destination": "x"}, http.StatusForbidden},
		{"member adds itinerary", http.MethodPost, "/api/v1/trips/" + trip.ID + "/itinerary", member.Token, gin.H{"day": 1}, http.StatusForbidden},
		{"member deletes activity", http.MethodDelete, "/api/v1/activities/" + missingID, member.Token, nil, http.StatusForbidden},
		{"member sets role", http.MethodPut, "/api/v1/members/" + admin.User.ID + "/role", member.Token, gin.H{"role": "member"}, http.StatusForbidden},
		{"anonymous vote", http.MethodPost, "/api/v1/activities/" + missingID + "/vote", "", gin.H{"vote": "yes"}, http.StatusUnauthorized},
		{"me", http.MethodGet, "/api/v1/auth/me", member.Token, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, s.do(tt.method, tt.path, tt.token, tt.body), tt.want)
		})
	}
}

func TestRoleChangeAppliesOnNextRequest(t *testing.T) {
	s := newTestServer(t)
	admin := s.signup("Captain")
	member := s.signup("Bob")

	expectStatus(t, s.do(http.MethodPut, "/api/v1/members/"+member.User.ID+"/role", admin.Token, gin.H{"role": "admin"}), http.StatusOK)

	// Same token, new stored role.
	s.createTrip(member.Token)

	w := s.do(http.MethodPut, "/api/v1/members/"+admin.User.ID+"/role", admin.Token, gin.H{"role": "member"})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestVotingAndBudget(t *testing.T) {
	s := newTestServer(t)
	admin := s.signup("Captain")
	member := s.signup("Bob")
	trip := s.createTrip(admin.Token)

	expectStatus(t, s.do(http.MethodPost, "/api/v1/trips/"+trip.ID+"/itinerary", admin.Token, gin.H{
		"day": 1, "time": "09:00", "activity": "Villa", "location": "Cascais", "cost_eur": 1200,
	}), http.StatusCreated)

	w := s.do(http.MethodPost, "/api/v1/trips/"+trip.ID+"/activities", admin.Token, gin.H{"title": "Kayak", "cost_eur": 50})
	expectStatus(t, w, http.StatusCreated)
	var activity models.Activity
	decode(t, w, &activity)
	if activity.ProposedBy != "Captain" {
		t.Errorf("ProposedBy = %q, want Captain", activity.ProposedBy)
	}

	votePath := "/api/v1/activities/" + activity.ID + "/vote"
	expectStatus(t, s.do(http.MethodPost, votePath, member.Token, gin.H{"vote": "maybe"}), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPost, votePath, member.Token, gin.H{"vote": "yes"}), http.StatusOK)
	expectStatus(t, s.do(http.MethodPost, votePath, admin.Token, gin.H{"vote": "no"}), http.StatusOK)
	expectStatus(t, s.do(http.MethodPost, "/api/v1/activities/"+missingID+"/vote", member.Token, gin.H{"vote": "yes"}), http.StatusNotFound)

	commentPath := "/api/v1/activities/" + activity.ID + "/comment"
	expectStatus(t, s.do(http.MethodPost, commentPath, member.Token, gin.H{"text": "  "}), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPost, commentPath, member.Token, gin.H{"text": "Count me in"}), http.StatusCreated)

	w = s.do(http.MethodGet, "/api/v1/trips/"+trip.ID+"/activities", member.Token, nil)
	expectStatus(t, w, http.StatusOK)
	var board []models.Activity
	decode(t, w, &board)
	if len(board) != 1 || board[0].Votes["Bob"] != "yes" || board[0].Votes["Captain"] != "no" || len(board[0].Comments) != 1 {
		t.Errorf("board = %+v", board)
	}

	w = s.do(http.MethodGet, "/api/v1/trips/"+trip.ID+"/budget?expanded=true", member.Token, nil)
	expectStatus(t, w, http.StatusOK)
	var budget models.BudgetBreakdown
	decode(t, w, &budget)
	if budget.TotalEUR != 150 || budget.TotalSecondary != 127.5 || budget.UserName != "Bob" {
		t.Errorf("budget = %+v, want 150 EUR / 127.5 GBP for Bob", budget)
	}
	if len(budget.PerUser) != 2 {
		t.Errorf("PerUser = %+v, want 2 rows", budget.PerUser)
	}
}

func TestDeletesAreIdempotent(t *testing.T) {
	s := newTestServer(t)
	admin := s.signup("Captain")

	for _, path := range []string{
		"/api/v1/itinerary/" + missingID,
		"/api/v1/activities/" + missingID,
		"/api/v1/hotels/" + missingID,
		"/api/v1/flights/" + missingID,
		"/api/v1/trips/" + missingID,
	} {
		t.Run(path, func(t *testing.T) {
			expectStatus(t, s.do(http.MethodDelete, path, admin.Token, nil), http.StatusOK)
		})
	}
}

func TestMalformedIDs(t *testing.T) {
	s := newTestServer(t)
	admin := s.signup("Captain")

	expectStatus(t, s.do(http.MethodGet, "/api/v1/trips/not-a-uuid", admin.Token, nil), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodDelete, "/api/v1/itinerary/42", admin.Token, nil), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodGet, "/api/v1/trips/"+missingID, admin.Token, nil), http.StatusNotFound)
}

func TestCurrentTrip(t *testing.T) {
	s := newTestServer(t)
	admin := s.signup("Captain")

	expectStatus(t, s.do(http.MethodGet, "/api/v1/trips/current", admin.Token, nil), http.StatusNotFound)

	trip := s.createTrip(admin.Token)
	w := s.do(http.MethodGet, "/api/v1/trips/current", admin.Token, nil)
	expectStatus(t, w, http.StatusOK)

	var resp models.CurrentTripResponse
	decode(t, w, &resp)
	if resp.Trip.ID != trip.ID {
		t.Errorf("current trip = %s, want %s", resp.Trip.ID, trip.ID)
	}
}

func TestSigninRequiresTOTPFlag(t *testing.T) {
	s := newTestServer(t)
	s.signup("Alice")

	w := s.do(http.MethodPost, "/api/v1/auth/signin", "", gin.H{"name": "Alice", "password": "wrong!"})
	expectStatus(t, w, http.StatusUnauthorized)

	var body map[string]interface{}
	decode(t, w, &body)
	if body["error"] == "" {
		t.Errorf("error body missing: %v", body)
	}
	if _, flagged := body["requires_2fa"]; flagged {
		t.Errorf("requires_2fa set for a plain password failure")
	}
}
