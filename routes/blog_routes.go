package routes

import (
	"storefront-app/config"
	"storefront-app/controllers"
	"storefront-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBlogRoutes(app *fiber.App) {
	blogController := &controllers.BlogController{}
	authMiddleware := &middleware.AuthMiddlewareStruct{}

	guest := app.Group(config.GUEST_ROUTES+"/blog", middleware.GuestTenantMiddleware)
	guest.Use(middleware.InjectDBMiddleware(blogController))
	guest.Get("/", blogController.GetPublishedPosts)
	guest.Get("/:slug", blogController.GetPostBySlug)

	api := app.Group(config.MAIN_ROUTES+"/blog", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(blogController))
	api.Use(middleware.InjectDBMiddleware(authMiddleware))

	api.Get("/", blogController.GetAllPosts)
	api.Post("/", authMiddleware.CheckPermission("blog:write"), blogController.CreatePost)
	api.Put("/:id", authMiddleware.CheckPermission("blog:write"), blogController.UpdatePost)
	api.Delete("/:id", authMiddleware.CheckPermission("blog:write"), blogController.DeletePost)
}
