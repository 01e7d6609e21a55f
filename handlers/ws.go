package handlers

import (
	"encoding/json"
	"time"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// Refetch signal types pushed to trip subscribers.
const (
	UpdateTrip       = "trip"
	UpdateItinerary  = "itinerary"
	UpdateActivities = "activities"
	UpdateTravel     = "travel"
)

type WSHandler struct {
	M     *melody.Melody
	Trips *services.TripService
}

func NewWSHandler(trips *services.TripService) *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024

	// Keep-alive for hosted proxies that drop idle connections.
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		tripID, _ := s.Get("trip_id")
		userID, _ := s.Get("user_id")
		utils.LogWebSocket("connect", toString(tripID), toString(userID))
	})

	m.HandleDisconnect(func(s *melody.Session) {
		tripID, _ := s.Get("trip_id")
		userID, _ := s.Get("user_id")
		utils.LogWebSocket("disconnect", toString(tripID), toString(userID))
	})

	m.HandleError(func(s *melody.Session, err error) {
		utils.SafeWarn("websocket error: %v", err)
	})

	return &WSHandler{M: m, Trips: trips}
}

// HandleWS upgrades an authenticated request and subscribes it to one trip.
func (h *WSHandler) HandleWS(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}
	if _, err := h.Trips.Get(c.Request.Context(), tripID); err != nil {
		respondError(c, err)
		return
	}

	keys := map[string]interface{}{
		"trip_id": tripID,
		"user_id": middleware.GetUserID(c),
	}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		utils.SafeWarn("failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate tells every client watching the trip to refetch one kind of
// data. The payload never carries the data itself.
func (h *WSHandler) BroadcastUpdate(tripID string, updateType string, userWhoUpdated string) {
	if h == nil || tripID == "" {
		return
	}

	msg, err := json.Marshal(gin.H{"type": updateType, "trip_id": tripID, "user": userWhoUpdated})
	if err != nil {
		return
	}

	err = h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		id, exists := q.Get("trip_id")
		return exists && id == tripID
	})
	if err != nil {
		utils.SafeWarn("error broadcasting to trip %s: %v", utils.MaskID(tripID), err)
		return
	}
	utils.SafeDebug("broadcast %s update to trip %s", updateType, utils.MaskID(tripID))
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}
