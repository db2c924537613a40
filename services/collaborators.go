package services

import (
	"context"
	"time"
)

// Mailer delivers a single HTML email. Implementations live outside the
// service layer (SMTP in production, fakes in tests).
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// CalendarService creates a calendar event for a booked session with both
// parties as attendees. It is strictly best-effort from the caller's view.
type CalendarService interface {
	CreateEvent(ctx context.Context, userEmail, speakerEmail, summary, description string, start, end time.Time) error
}

// SlotCache is an advisory cache for availability reads. Misses and failures
// are equivalent: the caller falls through to the store.
type SlotCache interface {
	GetSlots(ctx context.Context, speakerProfileID uint, date string) ([]string, bool)
	SetSlots(ctx context.Context, speakerProfileID uint, date string, slots []string)
	Invalidate(ctx context.Context, speakerProfileID uint, date string)
}
