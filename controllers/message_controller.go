package controllers

import (
	"errors"
	"fmt"
	"time"

	"storefront-app/config"
	"storefront-app/database"
	"storefront-app/models"
	"storefront-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(DB *gorm.DB) *MessageController {
	return &MessageController{DB: DB}
}

var messageInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2"`
	Body    string `json:"body" validate:"required,min=5"`
}

// CreateMessage is the public contact-form endpoint; the tenant comes
// from the query like the storefront order endpoint.
func (c *MessageController) CreateMessage(ctx *fiber.Ctx) error {
	tenant := ctx.Query("tenant", config.DBTenant)
	if !database.IsValidDBName(tenant) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tenant"})
	}

	db, err := database.GetTenantDB(tenant)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to connect to database"})
	}

	if err := ctx.BodyParser(&messageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(messageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	message := models.ContactMessage{
		Name:    messageInput.Name,
		Email:   messageInput.Email,
		Subject: messageInput.Subject,
		Body:    messageInput.Body,
	}

	if err := db.Create(&message).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	services.Notify(db, &models.Notification{
		Title: "New contact message",
		Body:  fmt.Sprintf("%s: %s", message.Name, message.Subject),
		Link:  fmt.Sprintf("/messages/%d", message.ID),
	})

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Message sent successfully"})
}

func (c *MessageController) GetAllMessages(ctx *fiber.Ctx) error {
	var messages []models.ContactMessage
	query := c.DB.Order("created_at desc")

	if ctx.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Find(&messages).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": messages})
}

func (c *MessageController) GetMessageByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var message models.ContactMessage
	if err := c.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Opening a message marks it read.
	if !message.IsRead {
		message.IsRead = true
		c.DB.Save(&message)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": message})
}

// ReplyMessage sends the reply by email and stores it on the message.
func (c *MessageController) ReplyMessage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Reply string `json:"reply" validate:"required,min=2"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var message models.ContactMessage
	if err := c.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	body := fmt.Sprintf("<p>%s</p><hr><p>Your message:</p><blockquote>%s</blockquote>", input.Reply, message.Body)
	if err := services.SendMail([]string{message.Email}, "Re: "+message.Subject, body); err != nil {
		log.Warn().Err(err).Int("message_id", id).Msg("Reply mail failed")
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to send reply email"})
	}

	now := time.Now()
	message.Reply = input.Reply
	message.RepliedAt = &now
	message.RepliedBy = int(ctx.Locals("userID").(float64))
	message.IsRead = true

	if err := c.DB.Save(&message).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Reply sent successfully", "data": message})
}

func (c *MessageController) DeleteMessage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var message models.ContactMessage
	if err := c.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Message not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&message).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Message deleted successfully"})
}
