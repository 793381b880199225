package booking

import (
	"context"

	"github.com/salonhub/salon-backend/internal/audit"
	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Actor is the authenticated caller, as resolved by the auth middleware.
type Actor struct {
	ID            uint
	Role          string
	Authenticated bool
}

func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == models.RoleAdmin
}

type CreateAppointmentInput struct {
	UserID     *uint
	GuestName  string
	GuestPhone string

	ServiceID uint
	Date      string
	Time      string

	StaffID *uint

	Notes    string
	Price    float64
	Duration int
	Rating   int
	Review   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	sequencer domain.SlotSequencer
	audit     *audit.Dispatcher
}

// NewCreateAppointment wires the booking creation flow. sequencer may be nil,
// in which case queue numbers come from the non-atomic count+1 path.
func NewCreateAppointment(
	repo domain.Repository,
	sequencer domain.SlotSequencer,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		sequencer: sequencer,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor Actor,
	in CreateAppointmentInput,
) (*models.Appointment, int, error) {

	// --------------------------------------------------
	// Required fields: one of user id / guest name, plus
	// service, date and time.
	// --------------------------------------------------
	if (in.UserID == nil && in.GuestName == "") ||
		in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return nil, 0, httperr.ErrBusiness("missing_required_fields")
	}
	if in.UserID != nil && in.GuestName != "" {
		return nil, 0, httperr.ErrBusiness("ambiguous_identity")
	}

	// --------------------------------------------------
	// Referenced service must exist.
	// --------------------------------------------------
	if _, err := uc.repo.GetServiceByID(ctx, in.ServiceID); err != nil {
		return nil, 0, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// Referenced staff must exist, when given.
	// --------------------------------------------------
	if in.StaffID != nil {
		if _, err := uc.repo.GetUserByID(ctx, *in.StaffID); err != nil {
			return nil, 0, httperr.ErrBusiness("staff_not_found")
		}
	}

	// --------------------------------------------------
	// Double-booking: same user or same staff at the same
	// date and time. Cancelled appointments are NOT
	// excluded here, matching the queue count's asymmetry.
	// --------------------------------------------------
	conflict, err := uc.repo.HasBookingConflict(ctx, in.UserID, in.StaffID, in.Date, in.Time)
	if err != nil {
		return nil, 0, err
	}
	if conflict {
		return nil, 0, httperr.ErrBusiness("booking_conflict")
	}

	// --------------------------------------------------
	// Non-admins may only book for themselves. Checked
	// before the queue number is drawn so a rejected
	// request never consumes a sequencer value.
	// --------------------------------------------------
	if in.UserID != nil && actor.Authenticated && !actor.IsAdmin() && actor.ID != *in.UserID {
		return nil, 0, httperr.ErrBusiness("forbidden_for_other_user")
	}

	// --------------------------------------------------
	// Queue number for the (service, date, time) slot.
	// --------------------------------------------------
	slot := domain.Slot{ServiceID: in.ServiceID, Date: in.Date, Time: in.Time}

	queueNumber, err := uc.nextQueueNumber(ctx, slot)
	if err != nil {
		return nil, 0, err
	}

	ap := &models.Appointment{
		UserID:          in.UserID,
		GuestName:       in.GuestName,
		GuestPhone:      in.GuestPhone,
		ServiceID:       in.ServiceID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		StaffID:         in.StaffID,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
		Price:           in.Price,
		DurationMin:     in.Duration,
		Rating:          in.Rating,
		Review:          in.Review,
		QueueNumber:     queueNumber,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID(actor),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, queueNumber, nil
}

// nextQueueNumber counts non-cancelled appointments in the slot and adds
// one. The read and the later insert are not atomic, so two concurrent
// bookings can draw the same number; the sequencer variant does not.
func (uc *CreateAppointment) nextQueueNumber(ctx context.Context, slot domain.Slot) (int, error) {
	if uc.sequencer != nil {
		return uc.sequencer.Next(ctx, slot)
	}

	count, err := uc.repo.CountQueueForSlot(ctx, slot)
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

func actorID(actor Actor) *uint {
	if !actor.Authenticated {
		return nil
	}
	id := actor.ID
	return &id
}
