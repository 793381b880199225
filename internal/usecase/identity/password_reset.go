package identity

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/salonhub/salon-backend/internal/domain/identity"
	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/logger"
	"github.com/salonhub/salon-backend/internal/mail"
	"github.com/salonhub/salon-backend/internal/otp"
	"github.com/salonhub/salon-backend/internal/validators"
)

// ======================================================
// USE CASE
// ======================================================

type PasswordReset struct {
	repo   domain.Repository
	mailer mail.Sender
}

func NewPasswordReset(
	repo domain.Repository,
	mailer mail.Sender,
) *PasswordReset {
	return &PasswordReset{
		repo:   repo,
		mailer: mailer,
	}
}

// ======================================================
// REQUEST (forget password)
// ======================================================

// Request generates a reset code, persists its digest and mails the plain
// code. A failed send rolls the stored state back so no orphaned code
// lingers.
func (uc *PasswordReset) Request(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", httperr.ErrBusiness("user_not_found")
	}

	code, hash, expires, err := otp.Generate()
	if err != nil {
		return "", err
	}

	if err := uc.repo.SetResetOTP(ctx, user.ID, hash, expires); err != nil {
		return "", err
	}

	if err := uc.mailer.Send(mail.ResetOTPMessage(user.Email, code)); err != nil {
		logger.Error("reset mail failed", zap.Error(err), zap.Uint("user_id", user.ID))
		uc.clear(ctx, user.ID)
		return "", httperr.ErrBusiness("mail_failed")
	}

	return user.Email, nil
}

// ======================================================
// RESET
// ======================================================

// Reset verifies the submitted code and installs the new password. Every
// failure branch clears the stored reset state, so a code is single-use
// no matter how the attempt ends.
func (uc *PasswordReset) Reset(ctx context.Context, email, code, newPassword string) (string, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", httperr.ErrBusiness("user_not_found")
	}

	if user.ResetOTPHash == "" || user.ResetOTPExpires == nil {
		uc.clear(ctx, user.ID)
		return "", httperr.ErrBusiness("otp_not_generated")
	}

	if !otp.Matches(code, user.ResetOTPHash) {
		uc.clear(ctx, user.ID)
		return "", httperr.ErrBusiness("invalid_otp")
	}

	if otp.Expired(user.ResetOTPExpires) {
		uc.clear(ctx, user.ID)
		return "", httperr.ErrBusiness("otp_expired")
	}

	if !validators.IsValidPassword(newPassword) {
		uc.clear(ctx, user.ID)
		return "", httperr.ErrBusiness("weak_password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.clear(ctx, user.ID)
		return "", err
	}

	if err := uc.repo.SetPasswordAndClearResetOTP(ctx, user.ID, string(hashed)); err != nil {
		uc.clear(ctx, user.ID)
		return "", err
	}

	return user.Email, nil
}

// clear is best effort; reset state that survives a failed cleanup still
// expires on its own.
func (uc *PasswordReset) clear(ctx context.Context, userID uint) {
	if err := uc.repo.ClearResetOTP(ctx, userID); err != nil {
		logger.Error("reset state cleanup failed", zap.Error(err), zap.Uint("user_id", userID))
	}
}
