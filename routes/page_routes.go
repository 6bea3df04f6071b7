package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPageRoutes(app *fiber.App) {
	pageController := &controllers.PageController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	guest := app.Group(config.GUEST_ROUTES+"/pages", middleware.GuestTenantMiddleware)
	guest.Use(middleware.InjectDBMiddleware(pageController))
	guest.Get("/:slug", pageController.GetPageBySlug)

	api := app.Group(config.MAIN_ROUTES+"/pages", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(pageController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/tree", pageController.GetPageTree)
	api.Get("/", pageController.GetAllPages)
	api.Post("/", authMiddleware.CheckPermission("pages:write"), pageController.CreatePage)
	api.Put("/:id", authMiddleware.CheckPermission("pages:write"), pageController.UpdatePage)
	api.Delete("/:id", authMiddleware.CheckPermission("pages:write"), pageController.DeletePage)
}
