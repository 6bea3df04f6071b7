package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingRoutes(app *fiber.App) {
	settingController := &controllers.SettingController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	api := app.Group(config.MAIN_ROUTES+"/settings", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(settingController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/", settingController.GetSettings)
	api.Put("/", authMiddleware.CheckPermission("settings:write"), settingController.UpdateSettings)
}
