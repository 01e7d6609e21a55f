package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LovationAdmin/holiday-api/services"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &services.ValidationError{Field: "vote", Message: "Vote must be yes or no"}, http.StatusBadRequest},
		{"unauthorized", services.ErrUnauthorized, http.StatusUnauthorized},
		{"totp required", services.ErrTOTPRequired, http.StatusUnauthorized},
		{"forbidden", fmt.Errorf("gate: %w", services.ErrForbidden), http.StatusForbidden},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"storage", &services.StorageError{Op: "cast vote", Err: errors.New("connection reset")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %s", w.Body.String())
			}
			if msg, _ := body["error"].(string); msg == "" {
				t.Errorf("missing error message in %s", w.Body.String())
			}
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		value string
		valid bool
	}{
		{"3f1c1d3e-0000-4000-8000-000000000000", true},
		{"42", false},
		{"", false},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: tt.value}}

		id, valid := pathID(c, "id")
		if valid != tt.valid {
			t.Errorf("pathID(%q) valid = %v, want %v", tt.value, valid, tt.valid)
		}
		if valid && id != tt.value {
			t.Errorf("pathID(%q) = %q", tt.value, id)
		}
		if !valid && w.Code != http.StatusBadRequest {
			t.Errorf("pathID(%q) status = %d, want 400", tt.value, w.Code)
		}
	}
}
