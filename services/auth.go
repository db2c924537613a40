package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
)

type SignupRequest struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	UserType  models.UserType `json:"user_type"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService handles signup, OTP verification and login.
type AuthService struct {
	users repository.UserRepository
	otp   *OTPManager
	jwt   JWTService
}

func NewAuthService(users repository.UserRepository, otp *OTPManager, jwt JWTService) *AuthService {
	return &AuthService{users: users, otp: otp, jwt: jwt}
}

// Signup creates an unverified user with a pending OTP challenge and emails
// the code. A failed delivery fails the signup, but the created row stays in
// place; the user simply cannot log in until a later verification succeeds.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.UserType != models.TypeUser && req.UserType != models.TypeSpeaker {
		req.UserType = models.TypeUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, expiresAt := s.otp.NewChallenge()

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     string(hashedPassword),
		UserType:     req.UserType,
		IsVerified:   false,
		OTP:          &code,
		OTPExpiresAt: &expiresAt,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if err := s.otp.Deliver(user); err != nil {
		return nil, fmt.Errorf("failed to send OTP email: %w", err)
	}

	user.Sanitize()
	return user, nil
}

// VerifyOTP confirms email control and unlocks login.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	return s.otp.Verify(ctx, email, code)
}

// Login checks credentials and mints a session token. An unverified account
// is reported distinctly from a credential mismatch; an unknown email and a
// wrong password are not distinguished.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.Sanitize()
	return &LoginResponse{Token: token, User: user}, nil
}
