package models

import (
	"time"
)

// UserType distinguishes the two account roles.
type UserType string

const (
	TypeUser    UserType = "user"
	TypeSpeaker UserType = "speaker"
)

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email" gorm:"unique"`
	Password     string     `json:"password,omitempty"`
	UserType     UserType   `json:"user_type"`
	IsVerified   bool       `json:"is_verified"`
	OTP          *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Sanitize strips credential material before the record leaves the API.
func (u *User) Sanitize() {
	u.Password = ""
	u.OTP = nil
	u.OTPExpiresAt = nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
