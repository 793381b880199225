package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/salonhub/salon-backend/internal/domain/identity"
	"github.com/salonhub/salon-backend/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

func (r *IdentityGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) SetResetOTP(
	ctx context.Context,
	userID uint,
	hash string,
	expires time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_otp_hash":    hash,
			"reset_otp_expires": expires,
		}).Error
}

func (r *IdentityGormRepository) ClearResetOTP(
	ctx context.Context,
	userID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"reset_otp_hash":    "",
			"reset_otp_expires": nil,
		}).Error
}

func (r *IdentityGormRepository) SetPasswordAndClearResetOTP(
	ctx context.Context,
	userID uint,
	passwordHash string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash":     passwordHash,
			"reset_otp_hash":    "",
			"reset_otp_expires": nil,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*IdentityGormRepository)(nil)
