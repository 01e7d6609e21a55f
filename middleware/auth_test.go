package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LovationAdmin/holiday-api/models"
	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

type fakeResolver struct {
	users map[string]*models.User
}

func (f *fakeResolver) ParseToken(token string) (string, error) {
	if _, ok := f.users[token]; !ok {
		return "", services.ErrUnauthorized
	}
	return token, nil
}

func (f *fakeResolver) CurrentIdentity(_ context.Context, userID string) (*models.User, error) {
	return f.users[userID], nil
}

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	resolver := &fakeResolver{users: map[string]*models.User{
		"member-token": {ID: "u1", Name: "Bob", Role: models.RoleMember},
		"admin-token":  {ID: "u2", Name: "Captain", Role: models.RoleAdmin},
	}}

	r := gin.New()
	protected := r.Group("/")
	protected.Use(AuthMiddleware(resolver))
	protected.GET("/read", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "name": GetUser(c).Name})
	})
	protected.POST("/write", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newGatedRouter()

	tests := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"missing token", http.MethodGet, "/read", "", http.StatusUnauthorized},
		{"unknown token", http.MethodGet, "/read", "Bearer nope", http.StatusUnauthorized},
		{"wrong scheme", http.MethodGet, "/read", "Basic member-token", http.StatusUnauthorized},
		{"member reads", http.MethodGet, "/read", "Bearer member-token", http.StatusOK},
		{"query token", http.MethodGet, "/read?token=member-token", "", http.StatusOK},
		{"member writes", http.MethodPost, "/write", "Bearer member-token", http.StatusForbidden},
		{"admin writes", http.MethodPost, "/write", "Bearer admin-token", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/write", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
