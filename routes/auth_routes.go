package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authController := &controllers.AuthController{}

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	authed := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	authed.Get("/isLoggedIn", authController.IsLoggedIn)
	authed.Get("/logout", authController.Logout)
}
