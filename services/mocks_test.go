package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/achalbajpai/proactively-backend/models"
)

// =============================================================================
// Mock repositories
// =============================================================================

type mockUserRepo struct {
	createFunc      func(ctx context.Context, user *models.User) error
	findByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc    func(ctx context.Context, id uint) (*models.User, error)
	verifyOTPFunc   func(ctx context.Context, email, code string, now time.Time) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepo) VerifyOTP(ctx context.Context, email, code string, now time.Time) error {
	if m.verifyOTPFunc != nil {
		return m.verifyOTPFunc(ctx, email, code, now)
	}
	return errors.New("not implemented")
}

type mockSpeakerRepo struct {
	createFunc       func(ctx context.Context, profile *models.SpeakerProfile) error
	updateFunc       func(ctx context.Context, userID uint, fields map[string]interface{}) (*models.SpeakerProfile, error)
	findByIDFunc     func(ctx context.Context, id uint) (*models.SpeakerProfile, error)
	findByUserIDFunc func(ctx context.Context, userID uint) (*models.SpeakerProfile, error)
	listVerifiedFunc func(ctx context.Context) ([]models.SpeakerProfile, error)
}

func (m *mockSpeakerRepo) Create(ctx context.Context, profile *models.SpeakerProfile) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, profile)
	}
	return errors.New("not implemented")
}

func (m *mockSpeakerRepo) Update(ctx context.Context, userID uint, fields map[string]interface{}) (*models.SpeakerProfile, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, fields)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSpeakerRepo) FindByID(ctx context.Context, id uint) (*models.SpeakerProfile, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSpeakerRepo) FindByUserID(ctx context.Context, userID uint) (*models.SpeakerProfile, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSpeakerRepo) ListVerified(ctx context.Context) ([]models.SpeakerProfile, error) {
	if m.listVerifiedFunc != nil {
		return m.listVerifiedFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

type mockBookingRepo struct {
	createFunc              func(ctx context.Context, booking *models.Booking) error
	slotsTakenFunc          func(ctx context.Context, speakerProfileID uint, date string) ([]string, error)
	listForUserFunc         func(ctx context.Context, userID uint) ([]models.Booking, error)
	listForSpeakerFunc      func(ctx context.Context, speakerUserID uint) ([]models.Booking, error)
	listStartingBetweenFunc func(ctx context.Context, date, fromSlot, toSlot string) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	return errors.New("not implemented")
}

func (m *mockBookingRepo) SlotsTaken(ctx context.Context, speakerProfileID uint, date string) ([]string, error) {
	if m.slotsTakenFunc != nil {
		return m.slotsTakenFunc(ctx, speakerProfileID, date)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookingRepo) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	if m.listForUserFunc != nil {
		return m.listForUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookingRepo) ListForSpeaker(ctx context.Context, speakerUserID uint) ([]models.Booking, error) {
	if m.listForSpeakerFunc != nil {
		return m.listForSpeakerFunc(ctx, speakerUserID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookingRepo) ListStartingBetween(ctx context.Context, date, fromSlot, toSlot string) ([]models.Booking, error) {
	if m.listStartingBetweenFunc != nil {
		return m.listStartingBetweenFunc(ctx, date, fromSlot, toSlot)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock collaborators
// =============================================================================

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *mockMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type calendarEvent struct {
	userEmail    string
	speakerEmail string
	summary      string
	start        time.Time
	end          time.Time
}

type mockCalendar struct {
	mu     sync.Mutex
	events []calendarEvent
	err    error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, userEmail, speakerEmail, summary, description string, start, end time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, calendarEvent{
		userEmail:    userEmail,
		speakerEmail: speakerEmail,
		summary:      summary,
		start:        start,
		end:          end,
	})
	return nil
}
