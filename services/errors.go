package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; anything not listed here is treated as an internal failure
// and never exposed to the client.
var (
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidOrExpiredOTP covers unknown email, wrong code and expired
	// challenge alike. The causes are deliberately not distinguished so a
	// caller cannot probe which part of the challenge failed.
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
	ErrUserNotFound       = errors.New("user not found")

	ErrProfileExists   = errors.New("speaker profile already exists")
	ErrProfileNotFound = errors.New("speaker profile not found")
	ErrSpeakerNotFound = errors.New("speaker not found")

	ErrInvalidSlot       = errors.New("invalid time slot")
	ErrInvalidDate       = errors.New("invalid booking date")
	ErrSlotAlreadyBooked = errors.New("time slot already booked")
)
