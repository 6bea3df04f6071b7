package controllers

import (
	"errors"
	"fmt"

	"storefront-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

type LandingController struct {
	DB *gorm.DB
}

func NewLandingController(DB *gorm.DB) *LandingController {
	return &LandingController{DB: DB}
}

var sectionInput struct {
	Type      string `json:"type" validate:"required"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Order     int    `json:"order"`
	IsEnabled *bool  `json:"is_enabled"`
}

func (c *LandingController) CreateSection(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&sectionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(sectionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	isEnabled := true
	if sectionInput.IsEnabled != nil {
		isEnabled = *sectionInput.IsEnabled
	}

	section := models.LandingSection{
		Type:         sectionInput.Type,
		Title:        sectionInput.Title,
		Content:      sectionInput.Content,
		SectionOrder: sectionInput.Order,
		IsEnabled:    isEnabled,
		CreatedBy:    int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&section).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Section created successfully", "data": section})
}

func (c *LandingController) GetAllSections(ctx *fiber.Ctx) error {
	var sections []models.LandingSection
	if err := c.DB.Order("section_order asc").Find(&sections).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sections})
}

// GetLandingPage serves the storefront: enabled sections only, in order.
func (c *LandingController) GetLandingPage(ctx *fiber.Ctx) error {
	var sections []models.LandingSection
	if err := c.DB.Where("is_enabled = ?", true).Order("section_order asc").Find(&sections).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": sections})
}

func (c *LandingController) UpdateSection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var section models.LandingSection
	if err := c.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Section not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctx.BodyParser(&sectionInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	section.Type = sectionInput.Type
	section.Title = sectionInput.Title
	section.Content = sectionInput.Content
	section.SectionOrder = sectionInput.Order
	if sectionInput.IsEnabled != nil {
		section.IsEnabled = *sectionInput.IsEnabled
	}
	section.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&section).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Section updated successfully", "data": section})
}

// ReorderSections takes the full list of section ids in display order.
func (c *LandingController) ReorderSections(ctx *fiber.Ctx) error {
	var input struct {
		SectionIDs []uint `json:"section_ids"`
	}
	if err := ctx.BodyParser(&input); err != nil || len(input.SectionIDs) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "section_ids required"})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range input.SectionIDs {
			if err := tx.Model(&models.LandingSection{}).Where("id = ?", id).Update("section_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sections reordered"})
}

func (c *LandingController) DeleteSection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var section models.LandingSection
	if err := c.DB.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Section not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&section).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Section deleted successfully"})
}

// GeneratePreviewToken hands the editor a short random token to open the
// draft landing page in the storefront.
func (c *LandingController) GeneratePreviewToken(ctx *fiber.Ctx) error {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	token := make([]byte, 12)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"preview_url": fmt.Sprintf("/landing/preview?token=%s", string(token)), "token": string(token)},
	})
}
