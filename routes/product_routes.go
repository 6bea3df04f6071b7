package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	productController := &controllers.ProductController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(productController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/export", productController.ExportExcel)
	api.Post("/import", authMiddleware.CheckPermission("products:write"), productController.ImportExcel)
	api.Get("/", productController.GetAllProducts)
	api.Get("/:id", productController.GetProductByID)
	api.Post("/", authMiddleware.CheckPermission("products:write"), productController.CreateProduct)
	api.Put("/:id", authMiddleware.CheckPermission("products:write"), productController.UpdateProduct)
	api.Delete("/:id", authMiddleware.CheckPermission("products:write"), productController.DeleteProduct)
}
