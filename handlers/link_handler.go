package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
	"github.com/kamaubrian/portfolio-backend/utils"
	"gorm.io/gorm"
)

type CreateLinkRequest struct {
	TargetURL string `json:"target_url" validate:"required,url,max=500"`
	Label     string `json:"label" validate:"max=255"`
}

type UpdateLinkRequest struct {
	TargetURL *string `json:"target_url,omitempty" validate:"omitempty,url,max=500"`
	Label     *string `json:"label,omitempty" validate:"omitempty,max=255"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func AdminListLinks(c *fiber.Ctx) error {
	var links []models.GeneratedLink
	if err := database.DB.Order("created_at desc").Find(&links).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(links)
}

func CreateLink(c *fiber.Ctx) error {
	var req CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var link models.GeneratedLink
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateUniqueShortCode(tx)
		if err != nil {
			return err
		}
		link = models.GeneratedLink{
			Code:      code,
			TargetURL: req.TargetURL,
			Label:     req.Label,
			IsActive:  true,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create link"})
	}

	return c.Status(fiber.StatusCreated).JSON(link)
}

func UpdateLink(c *fiber.Ctx) error {
	linkID := c.Params("linkId")

	var req UpdateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var link models.GeneratedLink
	if err := database.DB.First(&link, "id = ?", linkID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
	}

	if req.TargetURL != nil {
		link.TargetURL = *req.TargetURL
	}
	if req.Label != nil {
		link.Label = *req.Label
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update link"})
	}

	return c.JSON(link)
}

func DeleteLink(c *fiber.Ctx) error {
	linkID := c.Params("linkId")

	result := database.DB.Delete(&models.GeneratedLink{}, "id = ?", linkID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete link"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ResolveLink redirects a short code to its target and counts the click.
func ResolveLink(c *fiber.Ctx) error {
	code := c.Params("code")

	var link models.GeneratedLink
	err := database.DB.Where("code = ? AND is_active = ?", code, true).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	database.DB.Model(&link).UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))

	return c.Redirect(link.TargetURL, fiber.StatusFound)
}
