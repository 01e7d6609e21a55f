package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	Budget *services.BudgetService
}

// Get computes the caller's budget on every request. ?expanded=true adds the
// per-voter table.
func (h *BudgetHandler) Get(c *gin.Context) {
	tripID, valid := pathID(c, "id")
	if !valid {
		return
	}

	expanded := c.Query("expanded") == "true"
	breakdown, err := h.Budget.ForUser(c.Request.Context(), tripID, middleware.GetUser(c), expanded)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
