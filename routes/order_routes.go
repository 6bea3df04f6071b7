package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderController := &controllers.OrderController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	// Checkout is open to storefront visitors; the controller resolves
	// the tenant itself.
	guest := app.Group(config.GUEST_ROUTES + "/orders")
	guest.Post("/", orderController.CreateOrder)

	api := app.Group(config.MAIN_ROUTES+"/orders", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(orderController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/export", orderController.ExportExcel)
	api.Get("/", orderController.GetAllOrders)
	api.Get("/:id", orderController.GetOrderByID)
	api.Put("/:id/status", authMiddleware.CheckPermission("orders:write"), orderController.UpdateOrderStatus)
}
