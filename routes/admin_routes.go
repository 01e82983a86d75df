package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/handlers"
	"github.com/kamaubrian/portfolio-backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Put("/booking/settings", handlers.ReplaceSettings)

	skills := admin.Group("/skills")
	skills.Post("", handlers.CreateSkill)
	skills.Put("/:skillId", handlers.UpdateSkill)
	skills.Delete("/:skillId", handlers.DeleteSkill)

	services := admin.Group("/services")
	services.Get("", handlers.AdminListServices)
	services.Post("", handlers.CreateService)
	services.Put("/:serviceId", handlers.UpdateService)
	services.Delete("/:serviceId", handlers.DeleteService)

	storage := admin.Group("/storage-items")
	storage.Get("", handlers.ListStorageItems)
	storage.Post("", handlers.CreateStorageItem)
	storage.Put("/:itemId", handlers.UpdateStorageItem)
	storage.Delete("/:itemId", handlers.DeleteStorageItem)

	links := admin.Group("/links")
	links.Get("", handlers.AdminListLinks)
	links.Post("", handlers.CreateLink)
	links.Put("/:linkId", handlers.UpdateLink)
	links.Delete("/:linkId", handlers.DeleteLink)

	requests := admin.Group("/service-requests")
	requests.Get("", handlers.AdminListServiceRequests)
	requests.Put("/:requestId", handlers.AdminUpdateServiceRequest)
}
