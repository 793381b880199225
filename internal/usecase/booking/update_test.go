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

func TestUpdateAppointment_Execute(t *testing.T) {
	owner := booking.Actor{ID: 7, Role: models.RoleCustomer, Authenticated: true}
	admin := booking.Actor{ID: 1, Role: models.RoleAdmin, Authenticated: true}
	stranger := booking.Actor{ID: 9, Role: models.RoleCustomer, Authenticated: true}

	owned := func(status string) *models.Appointment {
		return &models.Appointment{
			ID:          5,
			UserID:      ptrUint(7),
			Status:      status,
			Notes:       "original notes",
			Price:       40,
			DurationMin: 30,
		}
	}

	tests := []struct {
		name     string
		actor    booking.Actor
		input    booking.UpdateAppointmentInput
		mockCall func(repo *mockRepository)
		check    func(t *testing.T, ap *models.Appointment)
		wantErr  string
	}{
		{
			name:  "success: owner updates status and notes",
			actor: owner,
			input: booking.UpdateAppointmentInput{Status: "confirmed", Notes: "new notes"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("pending"), nil).Once()
				repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, ap *models.Appointment) {
				assert.Equal(t, "confirmed", ap.Status)
				assert.Equal(t, "new notes", ap.Notes)
			},
		},
		{
			name:  "success: admin updates someone else's appointment",
			actor: admin,
			input: booking.UpdateAppointmentInput{Status: "completed"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("confirmed"), nil).Once()
				repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, ap *models.Appointment) {
				assert.Equal(t, "completed", ap.Status)
			},
		},
		{
			name:  "zero price is dropped, not applied",
			actor: owner,
			input: booking.UpdateAppointmentInput{Price: 0, Notes: "still charged"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("pending"), nil).Once()
				repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, ap *models.Appointment) {
				assert.Equal(t, float64(40), ap.Price)
			},
		},
		{
			name:  "success: staff reassignment is validated",
			actor: owner,
			input: booking.UpdateAppointmentInput{StaffID: ptrUint(12)},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("pending"), nil).Once()
				repo.On("GetUserByID", mock.Anything, uint(12)).Return(&models.User{ID: 12}, nil).Once()
				repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, ap *models.Appointment) {
				assert.Equal(t, uint(12), *ap.StaffID)
			},
		},
		{
			name:  "success: rating on a completed appointment",
			actor: owner,
			input: booking.UpdateAppointmentInput{Rating: 5, Review: "great cut"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("completed"), nil).Once()
				repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, ap *models.Appointment) {
				assert.Equal(t, 5, ap.Rating)
				assert.Equal(t, "great cut", ap.Review)
			},
		},
		{
			name:  "error: unknown appointment",
			actor: owner,
			input: booking.UpdateAppointmentInput{Status: "confirmed"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(nil, assert.AnError).Once()
			},
			wantErr: "appointment_not_found",
		},
		{
			name:  "error: stranger cannot update",
			actor: stranger,
			input: booking.UpdateAppointmentInput{Status: "confirmed"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("pending"), nil).Once()
			},
			wantErr: "forbidden_update",
		},
		{
			name:  "error: unknown status",
			actor: owner,
			input: booking.UpdateAppointmentInput{Status: "postponed"},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("pending"), nil).Once()
			},
			wantErr: "invalid_status",
		},
		{
			name:  "error: unknown staff",
			actor: owner,
			input: booking.UpdateAppointmentInput{StaffID: ptrUint(99)},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("pending"), nil).Once()
				repo.On("GetUserByID", mock.Anything, uint(99)).Return(nil, assert.AnError).Once()
			},
			wantErr: "staff_not_found",
		},
		{
			name:  "error: rating before completion",
			actor: owner,
			input: booking.UpdateAppointmentInput{Rating: 4},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("confirmed"), nil).Once()
			},
			wantErr: "feedback_before_completion",
		},
		{
			name:  "error: rating out of range",
			actor: owner,
			input: booking.UpdateAppointmentInput{Rating: 6},
			mockCall: func(repo *mockRepository) {
				repo.On("GetAppointmentByID", mock.Anything, uint(5)).Return(owned("completed"), nil).Once()
			},
			wantErr: "invalid_rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			tt.mockCall(repo)

			uc := booking.NewUpdateAppointment(repo, nil)
			ap, err := uc.Execute(context.Background(), tt.actor, 5, tt.input)

			if tt.wantErr != "" {
				assert.Nil(t, ap)
				assert.True(t, httperr.IsBusiness(err, tt.wantErr), "expected %s, got %v", tt.wantErr, err)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, ap)
				}
			}

			repo.AssertExpectations(t)
		})
	}
}
