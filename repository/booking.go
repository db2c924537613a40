package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/achalbajpai/proactively-backend/models"
)

type BookingRepository interface {
	// Create inserts the booking guarded by the (speaker, date, slot) unique
	// index. ErrDuplicate means another booking already holds the slot.
	Create(ctx context.Context, booking *models.Booking) error
	SlotsTaken(ctx context.Context, speakerProfileID uint, date string) ([]string, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListForSpeaker(ctx context.Context, speakerUserID uint) ([]models.Booking, error)
	// ListStartingBetween returns confirmed bookings whose session start falls
	// inside the window. Used by the reminder scheduler.
	ListStartingBetween(ctx context.Context, date, fromSlot, toSlot string) ([]models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *bookingRepository) SlotsTaken(ctx context.Context, speakerProfileID uint, date string) ([]string, error) {
	var slots []string
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("speaker_profile_id = ? AND booking_date = ?", speakerProfileID, date).
		Pluck("time_slot", &slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *bookingRepository) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("SpeakerProfile").Preload("SpeakerProfile.User").
		Where("user_id = ?", userID).
		Order("booking_date DESC, time_slot DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListForSpeaker(ctx context.Context, speakerUserID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN speaker_profiles ON speaker_profiles.id = bookings.speaker_profile_id").
		Where("speaker_profiles.user_id = ?", speakerUserID).
		Order("booking_date DESC, time_slot DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListStartingBetween(ctx context.Context, date, fromSlot, toSlot string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("User").Preload("SpeakerProfile").Preload("SpeakerProfile.User").
		Where("status = ? AND booking_date = ? AND time_slot BETWEEN ? AND ?",
			models.StatusConfirmed, date, fromSlot, toSlot).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
