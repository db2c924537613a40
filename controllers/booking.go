package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/achalbajpai/proactively-backend/services"
	"github.com/achalbajpai/proactively-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

// GetAvailableSlots returns the free subset of the daily grid for a speaker
// and date. Advisory only: booking still races through the unique index.
func (bc *BookingController) GetAvailableSlots(c *fiber.Ctx) error {
	speakerID, err := strconv.ParseUint(c.Query("speaker_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Speaker ID and date are required",
		})
	}
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Speaker ID and date are required",
		})
	}

	slots, err := bc.Bookings.AvailableSlots(c.Context(), uint(speakerID), date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date",
			})
		}
		utils.Error("failed to fetch available slots", zap.Uint("speaker_id", uint(speakerID)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch available slots",
		})
	}

	return c.JSON(fiber.Map{
		"available_slots": slots,
	})
}

// CreateBooking reserves a slot for the authenticated user.
func (bc *BookingController) CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SpeakerID uint   `json:"speaker_id"`
		Date      string `json:"date"`
		TimeSlot  string `json:"time_slot"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	result, err := bc.Bookings.Reserve(c.Context(), userID, req.SpeakerID, req.Date, req.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSlot):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid time slot",
			})
		case errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date",
			})
		case errors.Is(err, services.ErrSpeakerNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Speaker not found",
			})
		case errors.Is(err, services.ErrSlotAlreadyBooked):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Time slot already booked",
			})
		}
		utils.Error("failed to create booking",
			zap.Uint("user_id", userID), zap.Uint("speaker_id", req.SpeakerID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Booking created successfully",
		"booking":  result.Booking,
		"warnings": result.Warnings,
	})
}

// GetUserBookings lists the authenticated user's bookings.
func (bc *BookingController) GetUserBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	bookings, err := bc.Bookings.UserBookings(c.Context(), userID)
	if err != nil {
		utils.Error("failed to fetch user bookings", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}

// GetSpeakerBookings lists sessions booked against the authenticated
// speaker's profile.
func (bc *BookingController) GetSpeakerBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	bookings, err := bc.Bookings.SpeakerBookings(c.Context(), userID)
	if err != nil {
		utils.Error("failed to fetch speaker bookings", zap.Uint("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}
