package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationController := &controllers.NotificationController{}

	api := app.Group(config.MAIN_ROUTES+"/notifications", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(notificationController))

	api.Get("/", notificationController.GetNotifications)
	api.Put("/read-all", notificationController.MarkAllRead)
	api.Put("/:id/read", notificationController.MarkRead)
}
