package booking

import (
	"context"

	"github.com/salonhub/salon-backend/internal/models"
)

// Slot identifies the (service, date, time) bucket queue numbers are
// assigned within.
type Slot struct {
	ServiceID uint
	Date      string
	Time      string
}

type Repository interface {
	// -------- Catalog / identity lookups --------
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Conflict / queue --------
	HasBookingConflict(
		ctx context.Context,
		userID *uint,
		staffID *uint,
		date string,
		timeOfDay string,
	) (bool, error)

	CountQueueForSlot(
		ctx context.Context,
		slot Slot,
	) (int64, error)

	// -------- Appointment CRUD --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentExpanded(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	ListForStaff(
		ctx context.Context,
		staffID uint,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Appointment, int64, error)
}

// SlotSequencer hands out queue numbers for a slot. The Redis-backed
// implementation is atomic; the naive count+1 path does not use one.
type SlotSequencer interface {
	Next(ctx context.Context, slot Slot) (int, error)
}
