package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kamaubrian/portfolio-backend/database"
	"github.com/kamaubrian/portfolio-backend/models"
)

type SkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"max=100"`
	Proficiency int    `json:"proficiency" validate:"min=0,max=100"`
	SortOrder   int    `json:"sort_order"`
}

func ListSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := database.DB.Order("sort_order asc, name asc").Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(skills)
}

func CreateSkill(c *fiber.Ctx) error {
	var req SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	skill := models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		SortOrder:   req.SortOrder,
	}
	if err := database.DB.Create(&skill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create skill"})
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

func UpdateSkill(c *fiber.Ctx) error {
	skillID := c.Params("skillId")

	var req SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", skillID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill not found"})
	}

	skill.Name = req.Name
	skill.Category = req.Category
	skill.Proficiency = req.Proficiency
	skill.SortOrder = req.SortOrder
	if err := database.DB.Save(&skill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update skill"})
	}

	return c.JSON(skill)
}

func DeleteSkill(c *fiber.Ctx) error {
	skillID := c.Params("skillId")

	result := database.DB.Delete(&models.Skill{}, "id = ?", skillID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete skill"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Skill not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
