package handlers

import (
	"errors"
	"net/http"

	"github.com/LovationAdmin/holiday-api/services"
	"github.com/LovationAdmin/holiday-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps the service error kinds onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var storageErr *services.StorageError

	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTOTPRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "requires_2fa": true})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &storageErr):
		utils.SafeError("%s failed: %v", storageErr.Op, storageErr.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		utils.SafeError("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID reads a UUID path parameter, answering 400 itself when malformed.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return "", false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
