package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salon-backend/internal/httperr"
)

func TestWriteBookingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		code   string
		status int
	}{
		{"missing_required_fields", http.StatusBadRequest},
		{"ambiguous_identity", http.StatusBadRequest},
		{"invalid_status", http.StatusBadRequest},
		{"invalid_rating", http.StatusBadRequest},
		{"feedback_before_completion", http.StatusBadRequest},
		{"service_not_found", http.StatusNotFound},
		{"staff_not_found", http.StatusNotFound},
		{"appointment_not_found", http.StatusNotFound},
		{"booking_conflict", http.StatusConflict},
		{"forbidden_for_other_user", http.StatusForbidden},
		{"forbidden_update", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeBookingError(c, httperr.ErrBusiness(tt.code))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}

	t.Run("non-business errors become 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		writeBookingError(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestSplitTags(t *testing.T) {
	assert.Empty(t, splitTags(""))
	assert.Empty(t, splitTags("  "))
	assert.Equal(t, []string{"bridal"}, splitTags("bridal"))
	assert.Equal(t, []string{"bridal", "premium"}, splitTags(" bridal , premium ,, "))
}
