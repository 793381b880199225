package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonhub/salon-backend/internal/httperr"
	"github.com/salonhub/salon-backend/internal/models"
	"github.com/salonhub/salon-backend/internal/otp"
	identity "github.com/salonhub/salon-backend/internal/usecase/identity"
)

const resetCode = "482913"

func resetUser(mutate func(u *models.User)) *models.User {
	u := &models.User{
		ID:              9,
		Email:           "ana@example.com",
		ResetOTPHash:    otp.Hash(resetCode),
		ResetOTPExpires: ptrTime(time.Now().Add(5 * time.Minute)),
	}
	if mutate != nil {
		mutate(u)
	}
	return u
}

// Every failed reset attempt must burn the stored code: the state is
// cleared whether the code was wrong, expired, missing, or the new
// password was rejected.
func TestPasswordReset_Reset_FailuresClearStoredState(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(u *models.User)
		code     string
		password string
		errCode  string
	}{
		{
			name:     "expired code",
			mutate:   func(u *models.User) { u.ResetOTPExpires = ptrTime(time.Now().Add(-time.Minute)) },
			code:     resetCode,
			password: "NewPass1!",
			errCode:  "otp_expired",
		},
		{
			name:     "wrong code",
			mutate:   nil,
			code:     "000000",
			password: "NewPass1!",
			errCode:  "invalid_otp",
		},
		{
			name:     "no code was ever generated",
			mutate:   func(u *models.User) { u.ResetOTPHash = ""; u.ResetOTPExpires = nil },
			code:     resetCode,
			password: "NewPass1!",
			errCode:  "otp_not_generated",
		},
		{
			name:     "nil expiry counts as expired state",
			mutate:   func(u *models.User) { u.ResetOTPExpires = nil },
			code:     resetCode,
			password: "NewPass1!",
			errCode:  "otp_not_generated",
		},
		{
			name:     "weak replacement password",
			mutate:   nil,
			code:     resetCode,
			password: "short",
			errCode:  "weak_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
				Return(resetUser(tt.mutate), nil).Once()
			repo.On("ClearResetOTP", mock.Anything, uint(9)).Return(nil).Once()

			uc := identity.NewPasswordReset(repo, &mockSender{})

			_, err := uc.Reset(context.Background(), "ana@example.com", tt.code, tt.password)

			assert.True(t, httperr.IsBusiness(err, tt.errCode))
			repo.AssertExpectations(t)
		})
	}
}

func TestPasswordReset_Reset_UnknownEmail(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, gorm.ErrRecordNotFound).Once()

	uc := identity.NewPasswordReset(repo, &mockSender{})

	_, err := uc.Reset(context.Background(), "ghost@example.com", resetCode, "NewPass1!")

	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
	repo.AssertNotCalled(t, "ClearResetOTP", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestPasswordReset_Reset_Success(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(resetUser(nil), nil).Once()
	repo.On("SetPasswordAndClearResetOTP", mock.Anything, uint(9), mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewPass1!")) == nil
	})).Return(nil).Once()

	uc := identity.NewPasswordReset(repo, &mockSender{})

	email, err := uc.Reset(context.Background(), "ana@example.com", resetCode, "NewPass1!")

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	repo.AssertNotCalled(t, "ClearResetOTP", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestPasswordReset_Reset_PersistFailureClearsState(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(resetUser(nil), nil).Once()
	repo.On("SetPasswordAndClearResetOTP", mock.Anything, uint(9), mock.Anything).
		Return(errors.New("write failed")).Once()
	repo.On("ClearResetOTP", mock.Anything, uint(9)).Return(nil).Once()

	uc := identity.NewPasswordReset(repo, &mockSender{})

	_, err := uc.Reset(context.Background(), "ana@example.com", resetCode, "NewPass1!")

	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestPasswordReset_Request_SendsCodeWhoseDigestWasStored(t *testing.T) {
	repo := &mockRepository{}
	sender := &mockSender{}

	var storedHash string
	repo.On("SetResetOTP", mock.Anything, uint(9), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil).Once()
	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(resetUser(nil), nil).Once()
	sender.On("Send", mock.Anything).Return(nil).Once()

	uc := identity.NewPasswordReset(repo, sender)

	email, err := uc.Request(context.Background(), "ana@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
	assert.Len(t, storedHash, 64)
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestPasswordReset_Request_MailFailureRollsBackStoredState(t *testing.T) {
	repo := &mockRepository{}
	sender := &mockSender{}

	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(resetUser(nil), nil).Once()
	repo.On("SetResetOTP", mock.Anything, uint(9), mock.Anything, mock.Anything).Return(nil).Once()
	sender.On("Send", mock.Anything).Return(errors.New("smtp down")).Once()
	repo.On("ClearResetOTP", mock.Anything, uint(9)).Return(nil).Once()

	uc := identity.NewPasswordReset(repo, sender)

	_, err := uc.Request(context.Background(), "ana@example.com")

	assert.True(t, httperr.IsBusiness(err, "mail_failed"))
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}
