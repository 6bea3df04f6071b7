package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboardController := &controllers.DashboardController{}

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(dashboardController))

	api.Get("/summary", dashboardController.GetSummary)
}
