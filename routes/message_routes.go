package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App) {
	messageController := &controllers.MessageController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	// Contact form; the controller resolves the tenant itself.
	guest := app.Group(config.GUEST_ROUTES + "/messages")
	guest.Post("/", messageController.CreateMessage)

	api := app.Group(config.MAIN_ROUTES+"/messages", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(messageController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/", authMiddleware.CheckPermission("messages:read"), messageController.GetAllMessages)
	api.Get("/:id", authMiddleware.CheckPermission("messages:read"), messageController.GetMessageByID)
	api.Post("/:id/reply", authMiddleware.CheckPermission("messages:write"), messageController.ReplyMessage)
	api.Delete("/:id", authMiddleware.CheckPermission("messages:write"), messageController.DeleteMessage)
}
