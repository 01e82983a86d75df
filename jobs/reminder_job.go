package jobs

import (
	"fmt"
	"log"
	"time"

	config "github.com/kamaubrian/portfolio-backend/configs"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/notifications"
	"github.com/kamaubrian/portfolio-backend/services"
)

// SendBookingReminders emails customers whose confirmed booking is tomorrow.
// Scheduled once per day so each booking gets a single reminder.
func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	loc, err := time.LoadLocation(config.Config("BOOKING_TIMEZONE"))
	if err != nil {
		loc = time.UTC
	}
	tomorrow := time.Now().In(loc).AddDate(0, 0, 1).Format(services.DateLayout)

	var bookings []models.Booking
	err = database.DB.
		Where("status = ? AND preferred_date = ?", models.BookingConfirmed, tomorrow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		log.Printf("Sending reminder for booking ID: %s", booking.ID)

		link := ""
		if booking.MeetingLink != nil && *booking.MeetingLink != "" {
			link = fmt.Sprintf("<p><b>Meeting Link:</b> <a href='%s'>Join</a></p>", *booking.MeetingLink)
		}
		emailBody := fmt.Sprintf(
			"<h1>Booking Reminder</h1><p>Hi %s,</p><p>This is a friendly reminder of your booking tomorrow (%s) at %s.</p>%s",
			booking.Name, booking.PreferredDate, booking.PreferredTimeSlot, link,
		)

		go notifications.SendEmail(booking.Name, booking.Email, "Reminder: Your Booking is Tomorrow", emailBody)
	}
}
