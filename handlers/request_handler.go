package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/kamaubrian/portfolio-backend/configs"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/notifications"
)

type CreateServiceRequestBody struct {
	ServiceID *string `json:"service_id,omitempty" validate:"omitempty,uuid"`
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email"`
	Message   string  `json:"message" validate:"required"`
}

func CreateServiceRequest(c *fiber.Ctx) error {
	var req CreateServiceRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	request := models.ServiceRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  "new",
	}

	if req.ServiceID != nil {
		serviceID, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service id"})
		}
		var service models.Service
		if err := database.DB.First(&service, "id = ?", serviceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		request.ServiceID = &serviceID
	}

	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit request"})
	}

	if adminEmail := config.Config("ADMIN_NOTIFY_EMAIL"); adminEmail != "" {
		go notifications.SendEmail("Admin", adminEmail, "New Service Request",
			fmt.Sprintf("<h1>New Service Request</h1><p>%s (%s) wrote:</p><p>%s</p>", request.Name, request.Email, request.Message))
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

func AdminListServiceRequests(c *fiber.Ctx) error {
	query := database.DB.Model(&models.ServiceRequest{}).Preload("Service")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.ServiceRequest
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(requests)
}

type UpdateServiceRequestBody struct {
	Status string `json:"status" validate:"required,oneof=new in_progress closed"`
}

func AdminUpdateServiceRequest(c *fiber.Ctx) error {
	requestID := c.Params("requestId")

	var req UpdateServiceRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var request models.ServiceRequest
	if err := database.DB.First(&request, "id = ?", requestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service request not found"})
	}

	request.Status = req.Status
	if err := database.DB.Save(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service request"})
	}

	return c.JSON(request)
}
