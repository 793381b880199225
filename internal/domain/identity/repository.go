package identity

import (
	"context"
	"time"

	"github.com/salonhub/salon-backend/internal/models"
)

type Repository interface {
	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Password reset state --------
	SetResetOTP(
		ctx context.Context,
		userID uint,
		hash string,
		expires time.Time,
	) error

	ClearResetOTP(
		ctx context.Context,
		userID uint,
	) error

	// SetPasswordAndClearResetOTP atomically installs the new hash and
	// drops the transient reset state.
	SetPasswordAndClearResetOTP(
		ctx context.Context,
		userID uint,
		passwordHash string,
	) error
}
