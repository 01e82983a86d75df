package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/kamaubrian/portfolio-backend/configs"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/services"
)

const (
	defaultHorizonDays = 30
	maxHorizonDays     = 90
)

// bookingLocation is the single timezone all dates and weekdays are computed in.
func bookingLocation() *time.Location {
	loc, err := time.LoadLocation(config.Config("BOOKING_TIMEZONE"))
	if err != nil {
		return time.UTC
	}
	return loc
}

func availabilityService() *services.AvailabilityService {
	return services.NewAvailabilityService(
		database.NewSettingsStore(database.DB),
		database.NewBookingStore(database.DB),
	)
}

func GetAvailableSlots(c *fiber.Ctx) error {
	loc := bookingLocation()

	startDate := time.Now().In(loc)
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.ParseInLocation(services.DateLayout, raw, loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date must be formatted as YYYY-MM-DD"})
		}
		startDate = parsed
	}

	horizon := defaultHorizonDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days must be a positive integer"})
		}
		horizon = parsed
	}
	if horizon > maxHorizonDays {
		horizon = maxHorizonDays
	}

	slots, err := availabilityService().Project(startDate, horizon)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
	}

	return c.JSON(slots)
}
