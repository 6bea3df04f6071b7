package controllers

import (
	"errors"

	"storefront-app/models"
	"storefront-app/services"
	"storefront-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PageController struct {
	DB *gorm.DB
}

func NewPageController(DB *gorm.DB) *PageController {
	return &PageController{DB: DB}
}

var pageInput struct {
	Title       string `json:"title" validate:"required,min=2"`
	Content     string `json:"content"`
	Order       int    `json:"order"`
	ParentID    *uint  `json:"parent_id"`
	IsPublished bool   `json:"is_published"`
}

func (c *PageController) CreatePage(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&pageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(pageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if pageInput.ParentID != nil {
		var parent models.Page
		if err := c.DB.First(&parent, *pageInput.ParentID).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parent page not found"})
		}
	}

	slug := utils.UniqueSlug(pageInput.Title, func(s string) bool {
		var count int64
		c.DB.Model(&models.Page{}).Where("slug = ?", s).Count(&count)
		return count > 0
	})

	page := models.Page{
		Title:       pageInput.Title,
		Slug:        slug,
		Content:     pageInput.Content,
		PageOrder:   pageInput.Order,
		ParentID:    pageInput.ParentID,
		IsPublished: pageInput.IsPublished,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&page).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Page created successfully", "data": page})
}

func (c *PageController) GetAllPages(ctx *fiber.Ctx) error {
	var pages []models.Page
	if err := c.DB.Order("page_order asc").Find(&pages).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": pages})
}

// GetPageTree returns the nested page hierarchy for the admin sidebar.
func (c *PageController) GetPageTree(ctx *fiber.Ctx) error {
	var pages []models.Page
	if err := c.DB.Find(&pages).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": services.BuildPageTree(pages)})
}

func (c *PageController) GetPageBySlug(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	var page models.Page
	if err := c.DB.Where("slug = ? AND is_published = ?", slug, true).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": page})
}

func (c *PageController) UpdatePage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var page models.Page
	if err := c.DB.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctx.BodyParser(&pageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(pageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Reparenting must not close a loop in the hierarchy.
	if pageInput.ParentID != nil {
		var all []models.Page
		if err := c.DB.Find(&all).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if services.WouldCreateCycle(all, page.ID, pageInput.ParentID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parent assignment would create a cycle"})
		}
	}

	if pageInput.Title != page.Title {
		page.Slug = utils.UniqueSlug(pageInput.Title, func(s string) bool {
			var count int64
			c.DB.Model(&models.Page{}).Where("slug = ? AND id <> ?", s, page.ID).Count(&count)
			return count > 0
		})
	}

	page.Title = pageInput.Title
	page.Content = pageInput.Content
	page.PageOrder = pageInput.Order
	page.ParentID = pageInput.ParentID
	page.IsPublished = pageInput.IsPublished
	page.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&page).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Page updated successfully", "data": page})
}

func (c *PageController) DeletePage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var page models.Page
	if err := c.DB.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Page not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Children move up to the deleted page's parent so they stay reachable.
	if err := c.DB.Model(&models.Page{}).Where("parent_id = ?", page.ID).Update("parent_id", page.ParentID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&page).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Page deleted successfully"})
}
