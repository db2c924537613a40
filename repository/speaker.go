package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/achalbajpai/proactively-backend/models"
)

type SpeakerRepository interface {
	Create(ctx context.Context, profile *models.SpeakerProfile) error
	// Update overwrites the mutable profile fields for the given owner and
	// returns the refreshed record.
	Update(ctx context.Context, userID uint, fields map[string]interface{}) (*models.SpeakerProfile, error)
	FindByID(ctx context.Context, id uint) (*models.SpeakerProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*models.SpeakerProfile, error)
	// ListVerified returns profiles whose owning account has completed OTP
	// verification; unverified speakers are never listed.
	ListVerified(ctx context.Context) ([]models.SpeakerProfile, error)
}

type speakerRepository struct {
	db *gorm.DB
}

func NewSpeakerRepository(db *gorm.DB) SpeakerRepository {
	return &speakerRepository{db: db}
}

func (r *speakerRepository) Create(ctx context.Context, profile *models.SpeakerProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *speakerRepository) Update(ctx context.Context, userID uint, fields map[string]interface{}) (*models.SpeakerProfile, error) {
	result := r.db.WithContext(ctx).Model(&models.SpeakerProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByUserID(ctx, userID)
}

func (r *speakerRepository) FindByID(ctx context.Context, id uint) (*models.SpeakerProfile, error) {
	var profile models.SpeakerProfile
	err := r.db.WithContext(ctx).Preload("User").First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *speakerRepository) FindByUserID(ctx context.Context, userID uint) (*models.SpeakerProfile, error) {
	var profile models.SpeakerProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *speakerRepository) ListVerified(ctx context.Context) ([]models.SpeakerProfile, error) {
	var profiles []models.SpeakerProfile
	err := r.db.WithContext(ctx).Preload("User").
		Joins("JOIN users ON users.id = speaker_profiles.user_id AND users.is_verified = ?", true).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
