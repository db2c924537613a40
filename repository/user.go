package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/achalbajpai/proactively-backend/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// VerifyOTP marks the user verified and clears the challenge in a single
	// conditional update. It reports ErrNotFound whether the email is unknown,
	// the code is wrong, or the challenge has expired.
	VerifyOTP(ctx context.Context, email, code string, now time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) VerifyOTP(ctx context.Context, email, code string, now time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND otp = ? AND otp_expires_at > ?", email, code, now).
		Updates(map[string]interface{}{
			"is_verified":    true,
			"otp":            nil,
			"otp_expires_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
