package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMenuRoutes(app *fiber.App) {
	menuController := &controllers.MenuController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	api := app.Group(config.MAIN_ROUTES+"/menus", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(menuController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/user", menuController.GetMenuUser)
	api.Get("/", menuController.GetAllMenus)
	api.Get("/:id", menuController.GetMenuByID)
	api.Post("/", authMiddleware.CheckPermission("menus:write"), menuController.CreateMenu)
	api.Put("/:id", authMiddleware.CheckPermission("menus:write"), menuController.UpdateMenu)
	api.Delete("/:id", authMiddleware.CheckPermission("menus:write"), menuController.DeleteMenu)
}
