package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
)

type ServiceRequestBody struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	PriceHint   *string `json:"price_hint,omitempty" validate:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ListServices returns only active offerings for the public site.
func ListServices(c *fiber.Ctx) error {
	var servicesList []models.Service
	if err := database.DB.Where("is_active = ?", true).Order("created_at asc").Find(&servicesList).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(servicesList)
}

func AdminListServices(c *fiber.Ctx) error {
	var servicesList []models.Service
	if err := database.DB.Order("created_at asc").Find(&servicesList).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(servicesList)
}

func CreateService(c *fiber.Ctx) error {
	var req ServiceRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		PriceHint:   req.PriceHint,
		IsActive:    true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	var req ServiceRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var service models.Service
	if err := database.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	service.Title = req.Title
	service.Description = req.Description
	service.PriceHint = req.PriceHint
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	serviceID := c.Params("serviceId")

	result := database.DB.Delete(&models.Service{}, "id = ?", serviceID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
