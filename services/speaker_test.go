package services

import (
	"context"
	"errors"
	"testing"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
)

func TestCreateProfile_Success(t *testing.T) {
	speakers := &mockSpeakerRepo{
		createFunc: func(ctx context.Context, profile *models.SpeakerProfile) error {
			profile.ID = 1
			return nil
		},
	}
	svc := NewSpeakerService(speakers)

	profile, err := svc.CreateProfile(context.Background(), 2, ProfileRequest{
		Expertise:       "Distributed systems",
		PricePerSession: 150,
		Bio:             "20 years of consensus arguments",
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if profile.UserID != 2 || profile.Expertise != "Distributed systems" {
		t.Errorf("unexpected profile %+v", profile)
	}
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	speakers := &mockSpeakerRepo{
		createFunc: func(ctx context.Context, profile *models.SpeakerProfile) error {
			return repository.ErrDuplicate
		},
	}
	svc := NewSpeakerService(speakers)

	_, err := svc.CreateProfile(context.Background(), 2, ProfileRequest{})
	if !errors.Is(err, ErrProfileExists) {
		t.Errorf("CreateProfile() error = %v, want ErrProfileExists", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	speakers := &mockSpeakerRepo{
		updateFunc: func(ctx context.Context, userID uint, fields map[string]interface{}) (*models.SpeakerProfile, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewSpeakerService(speakers)

	_, err := svc.UpdateProfile(context.Background(), 2, ProfileRequest{})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrProfileNotFound", err)
	}
}

func TestUpdateProfile_OverwritesMutableFields(t *testing.T) {
	var gotFields map[string]interface{}
	speakers := &mockSpeakerRepo{
		updateFunc: func(ctx context.Context, userID uint, fields map[string]interface{}) (*models.SpeakerProfile, error) {
			gotFields = fields
			return &models.SpeakerProfile{ID: 1, UserID: userID}, nil
		},
	}
	svc := NewSpeakerService(speakers)

	_, err := svc.UpdateProfile(context.Background(), 2, ProfileRequest{
		Expertise: "Kafka archaeology", PricePerSession: 90, Bio: "Updated",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if gotFields["expertise"] != "Kafka archaeology" || gotFields["price_per_session"] != 90.0 {
		t.Errorf("update fields = %v", gotFields)
	}
	if _, ok := gotFields["photo_url"]; ok {
		t.Error("profile update must not touch the photo")
	}
}

func TestGetSpeaker_UnverifiedOwnerHidden(t *testing.T) {
	speakers := &mockSpeakerRepo{
		findByIDFunc: func(ctx context.Context, id uint) (*models.SpeakerProfile, error) {
			return &models.SpeakerProfile{
				ID: 1, UserID: 2,
				User: models.User{ID: 2, IsVerified: false},
			}, nil
		},
	}
	svc := NewSpeakerService(speakers)

	_, err := svc.GetSpeaker(context.Background(), 1)
	if !errors.Is(err, ErrSpeakerNotFound) {
		t.Errorf("GetSpeaker() error = %v, want ErrSpeakerNotFound", err)
	}
}

func TestListSpeakers_SanitizesOwners(t *testing.T) {
	speakers := &mockSpeakerRepo{
		listVerifiedFunc: func(ctx context.Context) ([]models.SpeakerProfile, error) {
			code := "123456"
			return []models.SpeakerProfile{
				{ID: 1, User: models.User{ID: 2, Password: "hash", OTP: &code, IsVerified: true}},
			}, nil
		},
	}
	svc := NewSpeakerService(speakers)

	profiles, err := svc.ListSpeakers(context.Background())
	if err != nil {
		t.Fatalf("ListSpeakers() error = %v", err)
	}
	if profiles[0].User.Password != "" || profiles[0].User.OTP != nil {
		t.Error("listed speakers must not expose credentials")
	}
}
