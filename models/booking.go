package models

import (
	"time"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking claims one slot of a speaker's day. The composite unique index on
// (speaker_profile_id, booking_date, time_slot) is what makes a reservation
// exclusive: the insert either wins the slot or fails with a duplicate key.
type Booking struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserID           uint           `json:"user_id"`
	User             User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SpeakerProfileID uint           `json:"speaker_profile_id" gorm:"uniqueIndex:idx_speaker_date_slot"`
	SpeakerProfile   SpeakerProfile `json:"speaker_profile,omitempty" gorm:"foreignKey:SpeakerProfileID"`
	BookingDate      string         `json:"booking_date" gorm:"uniqueIndex:idx_speaker_date_slot"`
	TimeSlot         string         `json:"time_slot" gorm:"uniqueIndex:idx_speaker_date_slot"`
	Status           BookingStatus  `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
