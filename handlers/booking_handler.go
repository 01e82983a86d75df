package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/kamaubrian/portfolio-backend/configs"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/notifications"
	"github.com/kamaubrian/portfolio-backend/services"
)

type CreateBookingRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Message           string `json:"message,omitempty"`
	PreferredDate     string `json:"preferred_date"`
	PreferredTimeSlot string `json:"preferred_time_slot"`
}

func reservationService() *services.ReservationService {
	return services.NewReservationService(
		database.NewSettingsStore(database.DB),
		database.NewBookingStore(database.DB),
		bookingLocation(),
	)
}

// CreateBooking is the public reservation endpoint. Field checks live in the
// reservation service so the rejection order (system active, slot valid,
// required fields, capacity) stays stable regardless of the request shape.
func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	booking, err := reservationService().Reserve(services.ReservationRequest{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Message:           req.Message,
		PreferredDate:     req.PreferredDate,
		PreferredTimeSlot: req.PreferredTimeSlot,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSystemUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Booking is currently unavailable"})
		case errors.Is(err, services.ErrInvalidSlot):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "The selected slot is no longer offered, please refresh availability"})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrSlotFull):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "The selected slot is fully booked"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	if adminEmail := config.Config("ADMIN_NOTIFY_EMAIL"); adminEmail != "" {
		go notifications.SendEmail("Admin", adminEmail, "New Booking Request",
			fmt.Sprintf("<h1>New Booking</h1><p>%s requested %s on %s.</p>", booking.Name, booking.PreferredTimeSlot, booking.PreferredDate))
	}
	go notifications.SendEmail(booking.Name, booking.Email, "We Received Your Booking Request",
		fmt.Sprintf("<h1>Request Received</h1><p>Your booking for %s on %s is pending confirmation.</p>", booking.PreferredTimeSlot, booking.PreferredDate))

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func AdminListBookings(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Booking{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("preferred_date = ?", date)
	}

	var bookings []models.Booking
	if err := query.Order("preferred_date desc, created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(bookings)
}

type UpdateBookingRequest struct {
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
	MeetingLink *string `json:"meeting_link,omitempty" validate:"omitempty,url"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
}

func AdminUpdateBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if req.MeetingLink != nil {
		booking.MeetingLink = req.MeetingLink
	}
	if req.AdminNotes != nil {
		booking.AdminNotes = req.AdminNotes
	}

	confirming := false
	if req.Status != nil && models.BookingStatus(*req.Status) != booking.Status {
		next := models.BookingStatus(*req.Status)
		if !booking.Status.CanTransitionTo(next) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot change booking status from %s to %s", booking.Status, next),
			})
		}
		if next == models.BookingConfirmed {
			settings, err := database.NewSettingsStore(database.DB).Get()
			if err == nil && settings.MeetingType == models.MeetingTypeGoogleMeet &&
				(booking.MeetingLink == nil || *booking.MeetingLink == "") {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A meeting link is required to confirm a Google Meet booking"})
			}
			confirming = true
		}
		booking.Status = next
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	if confirming {
		link := ""
		if booking.MeetingLink != nil {
			link = fmt.Sprintf("<p><b>Meeting Link:</b> <a href='%s'>Join</a></p>", *booking.MeetingLink)
		}
		go notifications.SendEmail(booking.Name, booking.Email, "Your Booking is Confirmed!",
			fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your booking for %s on %s has been confirmed.</p>%s",
				booking.PreferredTimeSlot, booking.PreferredDate, link))
	}

	return c.JSON(booking)
}

// AdminDeleteBooking hard-deletes a booking; its capacity is freed for any
// subsequent reservation or availability read.
func AdminDeleteBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	result := database.DB.Delete(&models.Booking{}, "id = ?", bookingID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type BookingStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"`
}

func GetBookingStats(c *fiber.Ctx) error {
	var stats BookingStatsResponse

	if err := database.DB.Model(&models.Booking{}).Count(&stats.Total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if err := database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingPending).Count(&stats.Pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if err := database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingConfirmed).Count(&stats.Confirmed).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if err := database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCancelled).Count(&stats.Cancelled).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	today := time.Now().In(bookingLocation()).Format(services.DateLayout)
	if err := database.DB.Model(&models.Booking{}).
		Where("status IN ? AND preferred_date >= ?",
			[]models.BookingStatus{models.BookingPending, models.BookingConfirmed}, today).
		Count(&stats.Upcoming).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(stats)
}
