package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
)

type StorageItemRequest struct {
	Label    string `json:"label" validate:"required,max=255"`
	Location string `json:"location" validate:"max=255"`
	Quantity int    `json:"quantity" validate:"min=0"`
	Notes    string `json:"notes"`
}

func ListStorageItems(c *fiber.Ctx) error {
	var items []models.StorageItem
	if err := database.DB.Order("label asc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(items)
}

func CreateStorageItem(c *fiber.Ctx) error {
	var req StorageItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.StorageItem{
		Label:    req.Label,
		Location: req.Location,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create storage item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateStorageItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	var req StorageItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var item models.StorageItem
	if err := database.DB.First(&item, "id = ?", itemID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Storage item not found"})
	}

	item.Label = req.Label
	item.Location = req.Location
	item.Quantity = req.Quantity
	item.Notes = req.Notes
	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update storage item"})
	}

	return c.JSON(item)
}

func DeleteStorageItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	result := database.DB.Delete(&models.StorageItem{}, "id = ?", itemID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete storage item"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Storage item not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
