package controllers

import (
	"errors"

	"storefront-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(DB *gorm.DB) *NotificationController {
	return &NotificationController{DB: DB}
}

// GetNotifications lists the caller's notifications plus broadcasts
// (user_id = 0, e.g. new-order events).
func (c *NotificationController) GetNotifications(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var notifications []models.Notification
	query := c.DB.Where("user_id = ? OR user_id = 0", userID).Order("created_at desc")

	if ctx.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Limit(100).Find(&notifications).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": notifications})
}

func (c *NotificationController) MarkRead(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var notification models.Notification
	if err := c.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	notification.IsRead = true
	if err := c.DB.Save(&notification).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Notification marked as read"})
}

func (c *NotificationController) MarkAllRead(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	if err := c.DB.Model(&models.Notification{}).
		Where("(user_id = ? OR user_id = 0) AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "All notifications marked as read"})
}
