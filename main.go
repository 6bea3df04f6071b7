package main

import (
	"storefront-app/config"
	"storefront-app/controllers/idgen"
	"storefront-app/database"
	"storefront-app/logger"
	"storefront-app/migration"
	"storefront-app/routes"
	"storefront-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadConfig()
	logger.Init(config.APP_ENV, config.LOG_LEVEL)

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBMaster)
	database.EnsureDatabaseExists(config.DBTenant)

	masterDB, err := database.OpenMasterDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to master database")
	}

	if err := migration.Migrate(masterDB); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate master database")
	}
	database.SeedTenant(masterDB)

	tenantDB, err := database.GetTenantDB(config.DBTenant)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to tenant database")
	}

	if err := migration.MigrateTenant(tenantDB); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate tenant database")
	}
	database.RunSeeders(tenantDB)

	idgen.Init()
	services.InitSettingsCache(config.SettingsCacheTTL)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app)
	routes.SetupDashboardRoutes(app)
	routes.SetupMenuRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupBlogRoutes(app)
	routes.SetupPageRoutes(app)
	routes.SetupLandingRoutes(app)
	routes.SetupSettingRoutes(app)
	routes.SetupNotificationRoutes(app)
	routes.SetupMessageRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupTenantRoutes(app, masterDB)

	log.Info().Str("port", config.APP_PORT).Msg("Server listening")
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
