package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/booking/settings", handlers.GetPublicSettings)
	api.Get("/booking/availability", handlers.GetAvailableSlots)

	api.Get("/skills", handlers.ListSkills)
	api.Get("/services", handlers.ListServices)
	api.Post("/service-requests", handlers.CreateServiceRequest)

	// Short links live outside the API prefix so they stay shareable.
	app.Get("/l/:code", handlers.ResolveLink)
}
