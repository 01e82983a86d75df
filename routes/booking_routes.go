package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/handlers"
	"github.com/kamaubrian/portfolio-backend/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/bookings", handlers.CreateBooking)

	admin := api.Group("/admin/bookings", middleware.Protected(), middleware.AdminRequired())
	admin.Get("", handlers.AdminListBookings)
	admin.Get("/stats", handlers.GetBookingStats)
	admin.Patch("/:bookingId", handlers.AdminUpdateBooking)
	admin.Delete("/:bookingId", handlers.AdminDeleteBooking)
}
