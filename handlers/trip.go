package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	Trips *services.TripService
	WS    *WSHandler
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.Trips.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// Current returns the trip the dashboard opens on, with its countdown.
func (h *TripHandler) Current(c *gin.Context) {
	resp, err := h.Trips.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripHandler) Get(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	trip, err := h.Trips.Get(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) Create(c *gin.Context) {
	var req models.TripRequest
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.GetUser(c)
	trip, err := h.Trips.Create(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogTripAction("create", trip.ID, user.ID)
	c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) Update(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.TripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := h.Trips.Update(c.Request.Context(), tripID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	user := middleware.GetUser(c)
	utils.LogTripAction("update", tripID, user.ID)
	h.WS.BroadcastUpdate(tripID, UpdateTrip, user.Name)
	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) Delete(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	if err := h.Trips.Delete(c.Request.Context(), tripID); err != nil {
		respondError(c, err)
		return
	}

	user := middleware.GetUser(c)
	utils.LogTripAction("delete", tripID, user.ID)
	h.WS.BroadcastUpdate(tripID, UpdateTrip, user.Name)
	ok(c)
}
