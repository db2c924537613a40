package models

import (
	"time"
)

type SpeakerProfile struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"uniqueIndex"`
	User            User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Expertise       string    `json:"expertise"`
	PricePerSession float64   `json:"price_per_session"`
	Bio             string    `json:"bio"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
