package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
)

func newTestAuthService(users *mockUserRepo, mailer *mockMailer) *AuthService {
	otp := NewOTPManager(users, mailer, 10*time.Minute)
	jwt := NewJWTService(testSecret, time.Hour)
	return NewAuthService(users, otp, jwt)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestSignup_CreatesUnverifiedUserAndSendsOTP(t *testing.T) {
	var created *models.User
	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *models.User) error {
			created = &models.User{}
			*created = *user
			user.ID = 1
			return nil
		},
	}
	mailer := &mockMailer{}
	svc := newTestAuthService(users, mailer)

	user, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		UserType:  models.TypeUser,
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if created == nil {
		t.Fatal("Signup() should create exactly one user")
	}
	if created.IsVerified {
		t.Error("new user must be unverified")
	}
	if created.OTP == nil || created.OTPExpiresAt == nil {
		t.Fatal("new user must carry a pending OTP challenge")
	}
	if len(*created.OTP) != 6 {
		t.Errorf("OTP = %q, want 6 digits", *created.OTP)
	}
	if created.Password == "secret123" {
		t.Error("password must be stored hashed")
	}
	if mailer.sentCount() != 1 {
		t.Errorf("sent %d OTP emails, want 1", mailer.sentCount())
	}
	if user.Password != "" || user.OTP != nil {
		t.Error("returned user must be sanitized")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *models.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := newTestAuthService(users, &mockMailer{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Jane", LastName: "Doe",
		Email: "taken@example.com", Password: "pw", UserType: models.TypeUser,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestSignup_MailDeliveryFailureLeavesUserCreated(t *testing.T) {
	createCalls := 0
	users := &mockUserRepo{
		createFunc: func(ctx context.Context, user *models.User) error {
			createCalls++
			return nil
		},
	}
	mailer := &mockMailer{err: errors.New("smtp unreachable")}
	svc := newTestAuthService(users, mailer)

	_, err := svc.Signup(context.Background(), SignupRequest{
		FirstName: "Jane", LastName: "Doe",
		Email: "jane@example.com", Password: "pw", UserType: models.TypeUser,
	})
	if err == nil {
		t.Fatal("Signup() should fail when OTP delivery fails")
	}
	if createCalls != 1 {
		t.Errorf("user row should have been created once, got %d", createCalls)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := newTestAuthService(users, &mockMailer{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnverifiedUser(t *testing.T) {
	hash := hashPassword(t, "correct")
	users := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Password: hash, IsVerified: false}, nil
		},
	}
	svc := newTestAuthService(users, &mockMailer{})

	// NotVerified wins regardless of password correctness.
	for _, password := range []string{"correct", "wrong"} {
		_, err := svc.Login(context.Background(), "jane@example.com", password)
		if !errors.Is(err, ErrNotVerified) {
			t.Errorf("Login(password=%q) error = %v, want ErrNotVerified", password, err)
		}
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash := hashPassword(t, "correct")
	users := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, Password: hash, IsVerified: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockMailer{})

	_, err := svc.Login(context.Background(), "jane@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash := hashPassword(t, "correct")
	users := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID: 7, FirstName: "Jane", LastName: "Doe",
				Email: email, Password: hash,
				UserType: models.TypeSpeaker, IsVerified: true,
			}, nil
		},
	}
	svc := newTestAuthService(users, &mockMailer{})

	resp, err := svc.Login(context.Background(), "jane@example.com", "correct")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() should return a token")
	}
	if resp.User.Password != "" {
		t.Error("returned user must not carry the password hash")
	}

	claims, err := NewJWTService(testSecret, time.Hour).ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("token validation error = %v", err)
	}
	if claims.UserID != 7 || claims.UserType != models.TypeSpeaker {
		t.Errorf("claims = {%d %s}, want {7 speaker}", claims.UserID, claims.UserType)
	}
}
