package services

import (
	"context"
	"errors"

	"github.com/achalbajpai/proactively-backend/models"
	"github.com/achalbajpai/proactively-backend/repository"
)

type ProfileRequest struct {
	Expertise       string  `json:"expertise"`
	PricePerSession float64 `json:"price_per_session"`
	Bio             string  `json:"bio"`
}

// SpeakerService manages speaker profiles. Each speaker account owns at most
// one profile.
type SpeakerService struct {
	speakers repository.SpeakerRepository
}

func NewSpeakerService(speakers repository.SpeakerRepository) *SpeakerService {
	return &SpeakerService{speakers: speakers}
}

func (s *SpeakerService) CreateProfile(ctx context.Context, userID uint, req ProfileRequest) (*models.SpeakerProfile, error) {
	profile := &models.SpeakerProfile{
		UserID:          userID,
		Expertise:       req.Expertise,
		PricePerSession: req.PricePerSession,
		Bio:             req.Bio,
	}

	if err := s.speakers.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile overwrites the mutable profile fields. Repeating the same
// update is a no-op.
func (s *SpeakerService) UpdateProfile(ctx context.Context, userID uint, req ProfileRequest) (*models.SpeakerProfile, error) {
	profile, err := s.speakers.Update(ctx, userID, map[string]interface{}{
		"expertise":         req.Expertise,
		"price_per_session": req.PricePerSession,
		"bio":               req.Bio,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SetPhoto stores the uploaded profile photo URL.
func (s *SpeakerService) SetPhoto(ctx context.Context, userID uint, photoURL string) (*models.SpeakerProfile, error) {
	profile, err := s.speakers.Update(ctx, userID, map[string]interface{}{
		"photo_url": photoURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *SpeakerService) ListSpeakers(ctx context.Context) ([]models.SpeakerProfile, error) {
	profiles, err := s.speakers.ListVerified(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		profiles[i].User.Sanitize()
	}
	return profiles, nil
}

func (s *SpeakerService) GetSpeaker(ctx context.Context, id uint) (*models.SpeakerProfile, error) {
	profile, err := s.speakers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpeakerNotFound
		}
		return nil, err
	}
	if !profile.User.IsVerified {
		return nil, ErrSpeakerNotFound
	}
	profile.User.Sanitize()
	return profile, nil
}
