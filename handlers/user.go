package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Auth *services.AuthService
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetUser(c))
}

// ============================================================================
// 2FA
// ============================================================================

func (h *UserHandler) SetupTOTP(c *gin.Context) {
	resp, err := h.Auth.SetupTOTP(c.Request.Context(), middleware.GetUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) VerifyTOTP(c *gin.Context) {
	var req models.VerifyTOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.Auth.VerifyTOTP(c.Request.Context(), middleware.GetUser(c), req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled successfully"})
}

func (h *UserHandler) DisableTOTP(c *gin.Context) {
	var req models.DisableTOTPRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.Auth.DisableTOTP(c.Request.Context(), middleware.GetUser(c), req.Password, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled successfully"})
}
