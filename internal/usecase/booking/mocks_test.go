package booking_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/models"
)

type mockRepository struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepository)(nil)

func (m *mockRepository) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if svc := args.Get(0); svc != nil {
		return svc.(*models.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) HasBookingConflict(ctx context.Context, userID, staffID *uint, date, timeOfDay string) (bool, error) {
	args := m.Called(ctx, userID, staffID, date, timeOfDay)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) CountQueueForSlot(ctx context.Context, slot domain.Slot) (int64, error) {
	args := m.Called(ctx, slot)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if ap := args.Get(0); ap != nil {
		return ap.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetAppointmentExpanded(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if ap := args.Get(0); ap != nil {
		return ap.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) ListForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListForStaff(ctx context.Context, staffID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, staffID)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListAll(ctx context.Context, offset, limit int) ([]models.Appointment, int64, error) {
	args := m.Called(ctx, offset, limit)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

type mockSequencer struct {
	mock.Mock
}

var _ domain.SlotSequencer = (*mockSequencer)(nil)

func (m *mockSequencer) Next(ctx context.Context, slot domain.Slot) (int, error) {
	args := m.Called(ctx, slot)
	return args.Int(0), args.Error(1)
}

func ptrUint(v uint) *uint {
	return &v
}
