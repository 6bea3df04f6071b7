package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupLandingRoutes(app *fiber.App) {
	landingController := &controllers.LandingController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	guest := app.Group(config.GUEST_ROUTES+"/landing", middleware.GuestTenantMiddleware)
	guest.Use(middleware.InjectDBMiddleware(landingController))
	guest.Get("/", landingController.GetLandingPage)

	api := app.Group(config.MAIN_ROUTES+"/landing", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(landingController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/sections", landingController.GetAllSections)
	api.Post("/sections", authMiddleware.CheckPermission("landing:write"), landingController.CreateSection)
	api.Put("/sections/reorder", authMiddleware.CheckPermission("landing:write"), landingController.ReorderSections)
	api.Put("/sections/:id", authMiddleware.CheckPermission("landing:write"), landingController.UpdateSection)
	api.Delete("/sections/:id", authMiddleware.CheckPermission("landing:write"), landingController.DeleteSection)
	api.Post("/preview-token", landingController.GeneratePreviewToken)
}
