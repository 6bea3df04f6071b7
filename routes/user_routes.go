package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userController := &controllers.UserController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(userController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))
	api.Use(authMiddleware.CheckPermission("users:write"))

	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)
	api.Post("/", userController.CreateUser)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)

	rbac := app.Group(config.MAIN_ROUTES, middleware.AuthMiddleware)
	rbac.Use(middleware.InjectDBMiddleware(userController))
	rbac.Get("/roles", userController.GetAllRoles)
	rbac.Get("/permissions", userController.GetAllPermissions)
}
