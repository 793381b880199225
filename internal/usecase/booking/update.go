package booking

import (
	"context"

	"github.com/salonhub/salon-backend/internal/audit"
	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/models"
)

type UpdateAppointmentInput struct {
	Status   string
	Notes    string
	StaffID  *uint
	Price    float64
	Duration int
	Rating   int
	Review   string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. Fields are applied only when they carry
// a non-zero value, so a legitimate price of 0 is dropped; this mirrors the
// system's long-standing behavior and callers depend on it.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Only the owning user or an admin may update.
	if !actor.IsAdmin() {
		if ap.UserID == nil || *ap.UserID != actor.ID {
			return nil, httperr.ErrBusiness("forbidden_update")
		}
	}

	if in.Status != "" {
		if !domain.IsValidStatus(domain.Status(in.Status)) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.Status = in.Status
	}
	if in.Notes != "" {
		ap.Notes = in.Notes
	}
	if in.StaffID != nil {
		if _, err := uc.repo.GetUserByID(ctx, *in.StaffID); err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		ap.StaffID = in.StaffID
	}
	if in.Price != 0 {
		ap.Price = in.Price
	}
	if in.Duration != 0 {
		ap.DurationMin = in.Duration
	}

	// Feedback only after completion.
	if in.Rating != 0 || in.Review != "" {
		if err := domain.CanRate(domain.Status(ap.Status)); err != nil {
			return nil, err
		}
		if in.Rating != 0 {
			if in.Rating < 1 || in.Rating > 5 {
				return nil, httperr.ErrBusiness("invalid_rating")
			}
			ap.Rating = in.Rating
		}
		if in.Review != "" {
			ap.Review = in.Review
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID(actor),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
