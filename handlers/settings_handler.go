package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/services"
)

type TimeSlotRequest struct {
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	MaxBookings int    `json:"max_bookings" validate:"required,min=1"`
}

type ReplaceSettingsRequest struct {
	AvailableDays []string          `json:"available_days" validate:"required,min=1,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	TimeSlots     []TimeSlotRequest `json:"time_slots" validate:"required,min=1,dive"`
	MeetingType   string            `json:"meeting_type" validate:"required,oneof=google_meet phone_call"`
	IsActive      *bool             `json:"is_active" validate:"required"`
}

func GetPublicSettings(c *fiber.Ctx) error {
	settings, err := database.NewSettingsStore(database.DB).Get()
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking is not configured"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(settings)
}

// ReplaceSettings overwrites the whole configuration with the submitted state.
func ReplaceSettings(c *fiber.Ctx) error {
	var req ReplaceSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slots := make([]models.TimeSlot, 0, len(req.TimeSlots))
	for _, s := range req.TimeSlots {
		// Fixed-width 24h "HH:MM" strings compare correctly as text.
		if s.StartTime >= s.EndTime {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot start time must be before end time"})
		}
		slots = append(slots, models.TimeSlot{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			MaxBookings: s.MaxBookings,
		})
	}

	settings := &models.BookingSettings{
		AvailableDays: req.AvailableDays,
		TimeSlots:     slots,
		MeetingType:   req.MeetingType,
		IsActive:      *req.IsActive,
	}

	if err := database.NewSettingsStore(database.DB).Replace(settings); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Available days and time slots must not be empty"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save booking settings"})
	}

	return c.JSON(settings)
}
