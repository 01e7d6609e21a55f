package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the suggestion board. Any member may vote and
// comment; creating and deleting suggestions is gated to admins by the router.
type ActivityHandler struct {
	Activities *services.ActivityService
	WS         *WSHandler
}

func (h *ActivityHandler) List(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	activities, err := h.Activities.List(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.ActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.GetUser(c)
	activity, err := h.Activities.Create(c.Request.Context(), tripID, user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogTripAction("activity_add", tripID, user.ID)
	h.WS.BroadcastUpdate(tripID, UpdateActivities, user.Name)
	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) Vote(c *gin.Context) {
	activityID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.VoteRequest
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.GetUser(c)
	tripID, err := h.Activities.CastVote(c.Request.Context(), activityID, user.ID, req.Vote)
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(tripID, UpdateActivities, user.Name)
	ok(c)
}

func (h *ActivityHandler) Comment(c *gin.Context) {
	activityID, valid := pathID(c, "id")
	if !valid {
		return
	}

	var req models.CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.GetUser(c)
	activity, comment, err := h.Activities.AddComment(c.Request.Context(), activityID, user, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	h.WS.BroadcastUpdate(activity.TripID, UpdateActivities, user.Name)
	c.JSON(http.StatusCreated, comment)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	activityID, valid := pathID(c, "id")
	if !valid {
		return
	}

	tripID, err := h.Activities.Delete(c.Request.Context(), activityID)
	if err != nil {
		respondError(c, err)
		return
	}

	if tripID != "" {
		user := middleware.GetUser(c)
		utils.LogTripAction("activity_delete", tripID, user.ID)
		h.WS.BroadcastUpdate(tripID, UpdateActivities, user.Name)
	}
	ok(c)
}
