package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
)

// OTPManager issues and verifies the one-time codes that gate first login.
type OTPManager struct {
	users  repository.UserRepository
	mailer Mailer
	expiry time.Duration
	now    func() time.Time
}

func NewOTPManager(users repository.UserRepository, mailer Mailer, expiry time.Duration) *OTPManager {
	return &OTPManager{
		users:  users,
		mailer: mailer,
		expiry: expiry,
		now:    time.Now,
	}
}

// GenerateOTP returns a 6-digit code drawn uniformly from 000000-999999,
// leading zeros preserved.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// NewChallenge produces a fresh code and its expiry instant. The caller
// attaches both to the user record before it is persisted.
func (m *OTPManager) NewChallenge() (code string, expiresAt time.Time) {
	return GenerateOTP(), m.now().Add(m.expiry)
}

// Deliver emails the pending code to the user.
func (m *OTPManager) Deliver(user *models.User) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your OTP is: <strong>%s</strong></p>
		<p>It will expire in %d minutes.</p>
	`, user.FullName(), *user.OTP, int(m.expiry.Minutes()))

	return m.mailer.Send(user.Email, "Verify Your Account", body)
}

// Verify consumes the challenge: one conditional update marks the user
// verified and clears the code, so a code can never verify twice. Unknown
// email, wrong code and expired challenge all collapse into
// ErrInvalidOrExpiredOTP.
func (m *OTPManager) Verify(ctx context.Context, email, code string) error {
	err := m.users.VerifyOTP(ctx, email, code, m.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidOrExpiredOTP
		}
		return err
	}
	return nil
}
