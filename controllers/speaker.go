package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/achalbajpai/proactively-backend/services"
	"github.com/achalbajpai/proactively-backend/utils"
)

type SpeakerController struct {
	Speakers *services.SpeakerService
}

func NewSpeakerController(speakers *services.SpeakerService) *SpeakerController {
	return &SpeakerController{Speakers: speakers}
}

// CreateProfile sets up the speaker's profile. One profile per account.
func (sc *SpeakerController) CreateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req services.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	profile, err := sc.Speakers.CreateProfile(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Speaker profile already exists",
			})
		}
		utils.Error("failed to create speaker profile", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create speaker profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Speaker profile created successfully",
		"profile": profile,
	})
}

// UpdateProfile overwrites expertise, price and bio.
func (sc *SpeakerController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req services.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	profile, err := sc.Speakers.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Speaker profile not found",
			})
		}
		utils.Error("failed to update speaker profile", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update speaker profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Speaker profile updated successfully",
		"profile": profile,
	})
}

// UploadPhoto stores a profile photo and saves its URL on the profile.
func (sc *SpeakerController) UploadPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Photo file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read photo file",
		})
	}
	defer file.Close()

	url, err := utils.UploadProfilePhoto(c.Context(), file, fmt.Sprintf("speaker-%d", userID))
	if err != nil {
		utils.Error("photo upload failed", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
		})
	}

	profile, err := sc.Speakers.SetPhoto(c.Context(), userID, url)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Speaker profile not found",
			})
		}
		utils.Error("failed to save photo URL", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update speaker profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Photo uploaded successfully",
		"profile": profile,
	})
}

// ListSpeakers returns all speakers with verified accounts.
func (sc *SpeakerController) ListSpeakers(c *fiber.Ctx) error {
	profiles, err := sc.Speakers.ListSpeakers(c.Context())
	if err != nil {
		utils.Error("failed to list speakers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch speakers",
		})
	}
	return c.JSON(profiles)
}

// GetSpeaker returns one speaker profile by id.
func (sc *SpeakerController) GetSpeaker(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid speaker ID",
		})
	}

	profile, err := sc.Speakers.GetSpeaker(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSpeakerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Speaker not found",
			})
		}
		utils.Error("failed to fetch speaker", zap.Uint("speaker_id", uint(id)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch speaker details",
		})
	}

	return c.JSON(profile)
}
