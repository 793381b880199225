package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/models"
	booking "github.com/salonhub/salon-backend/internal/usecase/booking"
)

func TestCancelAppointment_Execute(t *testing.T) {
	actor := booking.Actor{ID: 7, Role: models.RoleCustomer, Authenticated: true}

	t.Run("success: reason recorded", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetAppointmentByID", mock.Anything, uint(5)).
			Return(&models.Appointment{ID: 5, Status: "pending"}, nil).Once()
		repo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
			return ap.Status == "cancelled" && ap.CancellationReason == "running late"
		})).Return(nil).Once()

		uc := booking.NewCancelAppointment(repo, nil)
		ap, err := uc.Execute(context.Background(), actor, 5, "running late")

		assert.NoError(t, err)
		assert.Equal(t, "cancelled", ap.Status)
		repo.AssertExpectations(t)
	})

	t.Run("success: empty reason gets the default", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetAppointmentByID", mock.Anything, uint(5)).
			Return(&models.Appointment{ID: 5, Status: "confirmed"}, nil).Once()
		repo.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(ap *models.Appointment) bool {
			return ap.CancellationReason == "No reason provided"
		})).Return(nil).Once()

		uc := booking.NewCancelAppointment(repo, nil)
		_, err := uc.Execute(context.Background(), actor, 5, "")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("success: any session may cancel any appointment", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetAppointmentByID", mock.Anything, uint(5)).
			Return(&models.Appointment{ID: 5, UserID: ptrUint(42), Status: "pending"}, nil).Once()
		repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil).Once()

		uc := booking.NewCancelAppointment(repo, nil)
		_, err := uc.Execute(context.Background(), actor, 5, "")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("error: unknown appointment", func(t *testing.T) {
		repo := &mockRepository{}
		repo.On("GetAppointmentByID", mock.Anything, uint(5)).
			Return(nil, assert.AnError).Once()

		uc := booking.NewCancelAppointment(repo, nil)
		ap, err := uc.Execute(context.Background(), actor, 5, "")

		assert.Nil(t, ap)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
		repo.AssertExpectations(t)
	})
}
