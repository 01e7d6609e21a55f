package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

type TravelHandler struct {
	Travel *services.TravelService
	WS     *WSHandler
}

func (h *TravelHandler) broadcast(c *gin.Context, tripID string) {
	if user := middleware.GetUser(c); user != nil {
		h.WS.BroadcastUpdate(tripID, UpdateTravel, user.Name)
	}
}

// ============================================================================
// HOTELS
// ============================================================================

func (h *TravelHandler) ListHotels(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	hotels, err := h.Travel.ListHotels(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *TravelHandler) CreateHotel(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.HotelRequest
	if !bindJSON(c, &req) {
		return
	}

	hotel, err := h.Travel.CreateHotel(c.Request.Context(), tripID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(c, tripID)
	c.JSON(http.StatusCreated, hotel)
}

func (h *TravelHandler) UpdateHotel(c *gin.Context) {
	hotelID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.HotelRequest
	if !bindJSON(c, &req) {
		return
	}

	hotel, err := h.Travel.UpdateHotel(c.Request.Context(), hotelID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(c, hotel.TripID)
	c.JSON(http.StatusOK, hotel)
}

func (h *TravelHandler) DeleteHotel(c *gin.Context) {
	hotelID, valid := pathID(c, "id")
	if !valid {
		return
	}

	tripID, err := h.Travel.DeleteHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(c, tripID)
	ok(c)
}

// ============================================================================
// FLIGHTS
// ============================================================================

func (h *TravelHandler) ListFlights(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	flights, err := h.Travel.ListFlights(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *TravelHandler) CreateFlight(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.FlightRequest
	if !bindJSON(c, &req) {
		return
	}

	flight, err := h.Travel.CreateFlight(c.Request.Context(), tripID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(c, tripID)
	c.JSON(http.StatusCreated, flight)
}

func (h *TravelHandler) UpdateFlight(c *gin.Context) {
	flightID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.FlightRequest
	if !bindJSON(c, &req) {
		return
	}

	flight, err := h.Travel.UpdateFlight(c.Request.Context(), flightID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(c, flight.TripID)
	c.JSON(http.StatusOK, flight)
}

func (h *TravelHandler) DeleteFlight(c *gin.Context) {
	flightID, valid := pathID(c, "id")
	if !valid {
		return
	}

	tripID, err := h.Travel.DeleteFlight(c.Request.Context(), flightID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.broadcast(c, tripID)
	ok(c)
}
