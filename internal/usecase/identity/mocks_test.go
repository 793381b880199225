package identity_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/salonhub/salon-backend/internal/domain/identity"
	"github.com/salonhub/salon-backend/internal/mail"
	"github.com/salonhub/salon-backend/internal/models"
)

type mockRepository struct {
	mock.Mock
}

var _ domain.Repository = (*mockRepository)(nil)

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
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

func (m *mockRepository) SetResetOTP(ctx context.Context, userID uint, hash string, expires time.Time) error {
	args := m.Called(ctx, userID, hash, expires)
	return args.Error(0)
}

func (m *mockRepository) ClearResetOTP(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockRepository) SetPasswordAndClearResetOTP(ctx context.Context, userID uint, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

type mockSender struct {
	mock.Mock
}

var _ mail.Sender = (*mockSender)(nil)

func (m *mockSender) Send(msg mail.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func ptrTime(t time.Time) *time.Time { return &t }
