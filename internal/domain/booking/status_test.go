package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	booking "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/httperr"
)

func TestIsValidStatus(t *testing.T) {
	valid := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
		booking.StatusCompleted,
	}
	for _, s := range valid {
		assert.True(t, booking.IsValidStatus(s), "status %q", s)
	}

	assert.False(t, booking.IsValidStatus("postponed"))
	assert.False(t, booking.IsValidStatus(""))
	assert.False(t, booking.IsValidStatus("PENDING"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, booking.StatusPending, booking.InitialStatus())
}

func TestCanRate(t *testing.T) {
	assert.NoError(t, booking.CanRate(booking.StatusCompleted))

	for _, s := range []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCancelled,
	} {
		err := booking.CanRate(s)
		assert.True(t, httperr.IsBusiness(err, "feedback_before_completion"), "status %q", s)
	}
}
