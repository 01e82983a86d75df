package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/auth/login", handlers.LoginUser)
}
