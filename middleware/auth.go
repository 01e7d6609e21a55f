package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	userKey   = "user"
)

// IdentityResolver turns a bearer token into the stored user.
type IdentityResolver interface {
	ParseToken(token string) (string, error)
	CurrentIdentity(ctx context.Context, userID string) (*models.User, error)
}

// AuthMiddleware requires a valid token and loads the caller's current record,
// so role changes apply from the next request on. Websocket clients pass the
// token as the "token" query parameter.
func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithError(c, services.ErrUnauthorized, "Authentication required")
			return
		}

		userID, err := resolver.ParseToken(token)
		if err != nil {
			abortWithError(c, err, "Invalid or expired token")
			return
		}

		user, err := resolver.CurrentIdentity(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, err, "Authentication required")
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.Authorize(GetUser(c), true); err != nil {
			abortWithError(c, err, "Admin access required")
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func GetUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query("token")
}

func abortWithError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	}

	message := err.Error()
	if message == "" {
		message = fallback
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
