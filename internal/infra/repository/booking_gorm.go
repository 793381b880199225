package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog / identity lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Conflict / queue
// --------------------------------------------------

// HasBookingConflict checks for an existing appointment by the same user or
// the same staff member at the identical date and time. Cancelled
// appointments are deliberately not excluded here, while CountQueueForSlot
// does exclude them; the asymmetry is long-observed behavior.
func (r *BookingGormRepository) HasBookingConflict(
	ctx context.Context,
	userID *uint,
	staffID *uint,
	date string,
	timeOfDay string,
) (bool, error) {

	if userID == nil && staffID == nil {
		return false, nil
	}

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	switch {
	case userID != nil && staffID != nil:
		q = q.Where(
			"(user_id = ? OR staff_id = ?) AND appointment_date = ? AND appointment_time = ?",
			*userID, *staffID, date, timeOfDay,
		)
	case userID != nil:
		q = q.Where(
			"user_id = ? AND appointment_date = ? AND appointment_time = ?",
			*userID, date, timeOfDay,
		)
	default:
		q = q.Where(
			"staff_id = ? AND appointment_date = ? AND appointment_time = ?",
			*staffID, date, timeOfDay,
		)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) CountQueueForSlot(
	ctx context.Context,
	slot domain.Slot,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"service_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?",
			slot.ServiceID, slot.Date, slot.Time, string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Appointment CRUD
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentExpanded(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Staff").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Staff").
		Where("user_id = ?", userID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListForStaff(
	ctx context.Context,
	staffID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Where("staff_id = ?", staffID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Appointment, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Staff").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
