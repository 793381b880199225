package booking

import (
	"context"

	domain "github.com/salonhub/salon-backend/internal/domain/booking"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListForUser(ctx, userID)
}

func (uc *ListAppointments) ForStaff(
	ctx context.Context,
	staffID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListForStaff(ctx, staffID)
}

// NormalizePage is the single clamp for list pagination; callers that
// echo page/limit back must use the same values the query ran with.
func NormalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit
}

func (uc *ListAppointments) All(
	ctx context.Context,
	page int,
	limit int,
) ([]models.Appointment, int64, error) {
	page, limit = NormalizePage(page, limit)
	return uc.repo.ListAll(ctx, (page-1)*limit, limit)
}

func (uc *ListAppointments) ByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	ap, err := uc.repo.GetAppointmentExpanded(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}
