// Package calendar creates Google Calendar events for booked sessions.
package calendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Service wraps the Google Calendar events API. Event creation is
// best-effort: callers treat any failure as a warning, never as a booking
// failure.
type Service struct {
	config       *oauth2.Config
	refreshToken string
}

func NewService(clientID, clientSecret, refreshToken string) *Service {
	return &Service{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcalendar.CalendarEventsScope},
		},
		refreshToken: refreshToken,
	}
}

// Enabled reports whether OAuth credentials were configured.
func (s *Service) Enabled() bool {
	return s.config.ClientID != "" && s.config.ClientSecret != "" && s.refreshToken != ""
}

// CreateEvent inserts a one-hour session event with both parties invited,
// UTC times, and the default reminders: email a day ahead, popup 30 minutes
// ahead.
func (s *Service) CreateEvent(ctx context.Context, userEmail, speakerEmail, summary, description string, start, end time.Time) error {
	tokenSource := s.config.TokenSource(ctx, &oauth2.Token{RefreshToken: s.refreshToken})

	svc, err := gcalendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return err
	}

	event := &gcalendar.Event{
		Summary:     summary,
		Description: description,
		Start: &gcalendar.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcalendar.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Attendees: []*gcalendar.EventAttendee{
			{Email: userEmail},
			{Email: speakerEmail},
		},
		Reminders: &gcalendar.EventReminders{
			UseDefault: false,
			Overrides: []*gcalendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	_, err = svc.Events.Insert("primary", event).SendUpdates("all").Context(ctx).Do()
	return err
}
