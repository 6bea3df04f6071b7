package controllers

import (
	"storefront-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	repo := repositories.NewReportRepository(c.DB)

	statusCounts, err := repo.GetOrderStatusCounts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	days := ctx.QueryInt("days", 30)
	revenue, err := repo.GetDailyRevenue(days)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lowStock, err := repo.GetLowStockProducts(ctx.QueryInt("threshold", 5))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	unreadMessages, err := repo.CountUnreadMessages()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	publishedPosts, err := repo.CountPublishedPosts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order_status":    statusCounts,
			"daily_revenue":   revenue,
			"low_stock":       lowStock,
			"unread_messages": unreadMessages,
			"published_posts": publishedPosts,
		},
	})
}
