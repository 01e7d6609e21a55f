package handlers

import (
	"net/http"

	"github.com/LovationAdmin/holiday-api/middleware"
	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.Auth.Signin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout is stateless: tokens are bearer-only and the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	ok(c)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}
