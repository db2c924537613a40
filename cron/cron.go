// Package cron runs the session reminder scheduler.
package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
	"github.com/achalbajpai/proactively-backend/services"
	"github.com/achalbajpai/proactively-backend/utils"
)

// Reminders sends the one-hour-ahead reminder email for upcoming sessions.
type Reminders struct {
	bookings repository.BookingRepository
	mailer   services.Mailer
	now      func() time.Time
}

func NewReminders(bookings repository.BookingRepository, mailer services.Mailer) *Reminders {
	return &Reminders{bookings: bookings, mailer: mailer, now: time.Now}
}

// Start schedules the reminder check to run every minute.
func (r *Reminders) Start() {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", r.sendSessionReminders)
	if err != nil {
		utils.Error("failed to add cron job", zap.Error(err))
		return
	}
	c.Start()
	utils.Info("cron scheduler started for session reminders")
}

// sendSessionReminders picks up sessions starting in roughly one hour.
func (r *Reminders) sendSessionReminders() {
	now := r.now().UTC()
	windowStart := now.Add(55 * time.Minute)
	windowEnd := now.Add(65 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bookings, err := r.bookings.ListStartingBetween(ctx,
		windowStart.Format("2006-01-02"),
		windowStart.Format("15:04"),
		windowEnd.Format("15:04"),
	)
	if err != nil {
		utils.Error("failed to fetch bookings for reminders", zap.Error(err))
		return
	}

	for _, booking := range bookings {
		if err := r.sendReminderEmail(&booking); err != nil {
			utils.Warn("failed to send session reminder",
				zap.Uint("booking_id", booking.ID), zap.Error(err))
			continue
		}
		utils.Info("sent session reminder",
			zap.Uint("booking_id", booking.ID), zap.String("to", booking.User.Email))
	}
}

func (r *Reminders) sendReminderEmail(booking *models.Booking) error {
	speaker := booking.SpeakerProfile.User
	subject := fmt.Sprintf("Reminder: Upcoming Session with %s", speaker.FullName())
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your session starting in one hour.</p>
		<ul>
			<li><strong>Speaker:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
	`, booking.User.FullName(), speaker.FullName(), booking.BookingDate, booking.TimeSlot)

	return r.mailer.Send(booking.User.Email, subject, body)
}
