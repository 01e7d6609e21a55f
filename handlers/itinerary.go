package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryHandler struct {
	Itinerary *services.ItineraryService
	WS        *WSHandler
}

func (h *ItineraryHandler) List(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	items, err := h.Itinerary.List(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItineraryHandler) Create(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.ItineraryItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.Itinerary.Add(c.Request.Context(), tripID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	user := middleware.GetUser(c)
	utils.LogTripAction("itinerary_add", tripID, user.ID)
	h.WS.BroadcastUpdate(tripID, UpdateItinerary, user.Name)
	c.JSON(http.StatusCreated, item)
}

// Delete succeeds for ids that no longer exist.
func (h *ItineraryHandler) Delete(c *gin.Context) {
	itemID, valid := pathID(c, "id")
	if !valid {
		return
	}

	tripID, err := h.Itinerary.Delete(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	if tripID != "" {
		user := middleware.GetUser(c)
		utils.LogTripAction("itinerary_delete", tripID, user.ID)
		h.WS.BroadcastUpdate(tripID, UpdateItinerary, user.Name)
	}
	ok(c)
}
