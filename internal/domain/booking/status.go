package booking

import "github.com/salonhub/salon-backend/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// InitialStatus is the status every new appointment starts in.
func InitialStatus() Status {
	return StatusPending
}

// CanRate gates feedback: rating and review are only accepted once the
// appointment has been completed.
func CanRate(current Status) error {
	if current != StatusCompleted {
		return httperr.ErrBusiness("feedback_before_completion")
	}
	return nil
}
