package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
	"github.com/achalbajpai/proactively-backend/utils"
)

// ReservationResult is the outcome of a successful reservation. The booking
// is durable; Warnings records notification side effects that failed after
// the fact (degraded success, never an error).
type ReservationResult struct {
	Booking  *models.Booking `json:"booking"`
	Warnings []string        `json:"warnings,omitempty"`
}

// BookingService derives slot availability and executes the reservation
// transaction.
type BookingService struct {
	bookings repository.BookingRepository
	speakers repository.SpeakerRepository
	users    repository.UserRepository
	mailer   Mailer
	calendar CalendarService
	cache    SlotCache
}

func NewBookingService(
	bookings repository.BookingRepository,
	speakers repository.SpeakerRepository,
	users repository.UserRepository,
	mailer Mailer,
	calendar CalendarService,
	cache SlotCache,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		speakers: speakers,
		users:    users,
		mailer:   mailer,
		calendar: calendar,
		cache:    cache,
	}
}

// AvailableSlots returns the fixed grid minus the slots already booked for
// the speaker on that date, in grid order. The read is advisory only: a slot
// listed here can still be lost to a concurrent reservation, and Reserve is
// the sole authority on who wins.
func (s *BookingService) AvailableSlots(ctx context.Context, speakerProfileID uint, date string) ([]string, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	if s.cache != nil {
		if slots, ok := s.cache.GetSlots(ctx, speakerProfileID, date); ok {
			return slots, nil
		}
	}

	taken, err := s.bookings.SlotsTaken(ctx, speakerProfileID, date)
	if err != nil {
		return nil, err
	}

	takenSet := make(map[string]bool, len(taken))
	for _, slot := range taken {
		// tolerate HH:MM:SS values from older rows stored as time
		if len(slot) > 5 {
			slot = slot[:5]
		}
		takenSet[slot] = true
	}

	available := make([]string, 0, len(SlotGrid))
	for _, slot := range SlotGrid {
		if !takenSet[slot] {
			available = append(available, slot)
		}
	}

	if s.cache != nil {
		s.cache.SetSlots(ctx, speakerProfileID, date, available)
	}
	return available, nil
}

// Reserve atomically claims (speaker, date, slot) for the user. The insert
// guarded by the unique index is the only synchronization mechanism: no prior
// availability read is trusted, and a concurrent loser gets
// ErrSlotAlreadyBooked. Calendar and email notifications run after the
// booking is durable and can only degrade the result, not fail it.
func (s *BookingService) Reserve(ctx context.Context, userID, speakerProfileID uint, date, slot string) (*ReservationResult, error) {
	if !IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}
	if _, err := ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	speaker, err := s.speakers.FindByID(ctx, speakerProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpeakerNotFound
		}
		return nil, err
	}

	booking := &models.Booking{
		UserID:           userID,
		SpeakerProfileID: speakerProfileID,
		BookingDate:      date,
		TimeSlot:         slot,
		Status:           models.StatusConfirmed,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, speakerProfileID, date)
	}

	result := &ReservationResult{Booking: booking}
	s.notify(ctx, result, booking, speaker)
	return result, nil
}

// notify runs the post-commit side effects. Failures are logged and recorded
// as warnings on the result; the booking itself is already durable.
func (s *BookingService) notify(ctx context.Context, result *ReservationResult, booking *models.Booking, speaker *models.SpeakerProfile) {
	user, err := s.users.FindByID(ctx, booking.UserID)
	if err != nil {
		utils.Warn("failed to resolve user for booking notifications",
			zap.Uint("booking_id", booking.ID), zap.Error(err))
		result.Warnings = append(result.Warnings, "notifications could not be sent")
		return
	}

	start, end, err := SessionTimes(booking.BookingDate, booking.TimeSlot)
	if err != nil {
		utils.Warn("failed to compute session times", zap.Uint("booking_id", booking.ID), zap.Error(err))
		result.Warnings = append(result.Warnings, "notifications could not be sent")
		return
	}

	speakerUser := speaker.User

	if s.calendar != nil {
		err := s.calendar.CreateEvent(ctx,
			user.Email,
			speakerUser.Email,
			fmt.Sprintf("Speaker Session: %s", speakerUser.FullName()),
			fmt.Sprintf("Session with %s (%s)", speakerUser.FullName(), speaker.Expertise),
			start, end,
		)
		if err != nil {
			utils.Warn("failed to create calendar event",
				zap.Uint("booking_id", booking.ID), zap.Error(err))
			result.Warnings = append(result.Warnings, "calendar event could not be created")
		}
	}

	userBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your session with <strong>%s</strong> is confirmed.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Expertise:</strong> %s</li>
		</ul>
	`, user.FullName(), speakerUser.FullName(), booking.BookingDate, booking.TimeSlot, speaker.Expertise)

	if err := s.mailer.Send(user.Email, "Booking Confirmation", userBody); err != nil {
		utils.Warn("failed to send booking confirmation",
			zap.Uint("booking_id", booking.ID), zap.Error(err))
		result.Warnings = append(result.Warnings, "confirmation email could not be sent")
	}

	speakerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new session booked with <strong>%s</strong>.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
	`, speakerUser.FullName(), user.FullName(), booking.BookingDate, booking.TimeSlot)

	if err := s.mailer.Send(speakerUser.Email, "New Session Booking", speakerBody); err != nil {
		utils.Warn("failed to send speaker notification",
			zap.Uint("booking_id", booking.ID), zap.Error(err))
		result.Warnings = append(result.Warnings, "speaker notification could not be sent")
	}
}

func (s *BookingService) UserBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	bookings, err := s.bookings.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].SpeakerProfile.User.Sanitize()
	}
	return bookings, nil
}

func (s *BookingService) SpeakerBookings(ctx context.Context, speakerUserID uint) ([]models.Booking, error) {
	bookings, err := s.bookings.ListForSpeaker(ctx, speakerUserID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].User.Sanitize()
	}
	return bookings, nil
}
