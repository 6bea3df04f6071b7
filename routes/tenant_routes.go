package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupTenantRoutes works against the master database rather than the
// per-tenant one, so it takes the connection directly.
func SetupTenantRoutes(app *fiber.App, masterDB *gorm.DB) {
	tenantController := controllers.NewTenantController(masterDB)
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	api := app.Group(config.MAIN_ROUTES+"/tenants", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(authMiddleware))
	api.Use(authMiddleware.CheckPermission("*:*"))

	api.Get("/", tenantController.GetAllTenants)
	api.Post("/", tenantController.CreateTenant)
	api.Put("/:id", tenantController.UpdateTenant)
}
