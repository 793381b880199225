package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonhub/salon-backend/internal/models"
	booking "github.com/salonhub/salon-backend/internal/usecase/booking"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults for zero values", 0, 0, 1, 10},
		{"negative page clamped", -3, 25, 1, 25},
		{"negative limit clamped", 2, -1, 2, 10},
		{"valid values pass through", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := booking.NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestListAppointments_All_OffsetFromClampedPage(t *testing.T) {
	repo := &mockRepository{}
	repo.On("ListAll", mock.Anything, 20, 10).
		Return([]models.Appointment{}, int64(0), nil).Once()

	uc := booking.NewListAppointments(repo)

	_, _, err := uc.All(context.Background(), 3, 10)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListAppointments_All_ZeroInputsQueryFirstPage(t *testing.T) {
	repo := &mockRepository{}
	repo.On("ListAll", mock.Anything, 0, 10).
		Return([]models.Appointment{}, int64(0), nil).Once()

	uc := booking.NewListAppointments(repo)

	_, _, err := uc.All(context.Background(), 0, 0)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
