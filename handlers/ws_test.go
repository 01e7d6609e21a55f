package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LovationAdmin/holiday-api/repository/memory"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestHandleWSRejectsBeforeUpgrade(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	ws := NewWSHandler(services.NewTripService(store.Trips))
	router := gin.New()
	router.GET("/ws/trips/:id", ws.HandleWS)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"malformed id", "/ws/trips/not-a-uuid", http.StatusBadRequest},
		{"unknown trip", "/ws/trips/" + uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestBroadcastUpdateWithoutSubscribers(t *testing.T) {
	var nilHandler *WSHandler
	nilHandler.BroadcastUpdate(uuid.NewString(), UpdateActivities, "Alice")

	ws := NewWSHandler(nil)
	ws.BroadcastUpdate("", UpdateTrip, "Alice")
	ws.BroadcastUpdate(uuid.NewString(), UpdateItinerary, "Alice")
}
