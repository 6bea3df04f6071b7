package controllers

import (
	"errors"
	"time"

	"storefront-app/models"
	"storefront-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(DB *gorm.DB) *BlogController {
	return &BlogController{DB: DB}
}

var blogInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content" validate:"required"`
	CoverURL    string `json:"cover_url"`
	IsPublished bool   `json:"is_published"`
}

func (c *BlogController) CreatePost(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&blogInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(blogInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slug := utils.UniqueSlug(blogInput.Title, func(s string) bool {
		var count int64
		c.DB.Model(&models.BlogPost{}).Where("slug = ?", s).Count(&count)
		return count > 0
	})

	post := models.BlogPost{
		Title:       blogInput.Title,
		Slug:        slug,
		Excerpt:     blogInput.Excerpt,
		Content:     blogInput.Content,
		CoverURL:    blogInput.CoverURL,
		IsPublished: blogInput.IsPublished,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := c.DB.Create(&post).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Post created successfully", "data": post})
}

func (c *BlogController) GetAllPosts(ctx *fiber.Ctx) error {
	var posts []models.BlogPost
	if err := c.DB.Order("created_at desc").Find(&posts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": posts})
}

// GetPublishedPosts serves the storefront blog listing.
func (c *BlogController) GetPublishedPosts(ctx *fiber.Ctx) error {
	var posts []models.BlogPost
	if err := c.DB.Where("is_published = ?", true).Order("published_at desc").Find(&posts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": posts})
}

func (c *BlogController) GetPostBySlug(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	var post models.BlogPost
	if err := c.DB.Where("slug = ? AND is_published = ?", slug, true).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": post})
}

func (c *BlogController) UpdatePost(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var post models.BlogPost
	if err := c.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctx.BodyParser(&blogInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(blogInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if blogInput.Title != post.Title {
		post.Slug = utils.UniqueSlug(blogInput.Title, func(s string) bool {
			var count int64
			c.DB.Model(&models.BlogPost{}).Where("slug = ? AND id <> ?", s, post.ID).Count(&count)
			return count > 0
		})
	}

	// First publish stamps the timestamp; republish keeps the original.
	if blogInput.IsPublished && !post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	post.Title = blogInput.Title
	post.Excerpt = blogInput.Excerpt
	post.Content = blogInput.Content
	post.CoverURL = blogInput.CoverURL
	post.IsPublished = blogInput.IsPublished
	post.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&post).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Post updated successfully", "data": post})
}

func (c *BlogController) DeletePost(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var post models.BlogPost
	if err := c.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&post).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Post deleted successfully"})
}
