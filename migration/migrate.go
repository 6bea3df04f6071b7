package migration

import (
	"storefront-app/models"

	"gorm.io/gorm"
)

// Migrate runs the master database migrations (tenant registry only).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tenant{},
	)
}

// MigrateTenant runs the per-store schema.
func MigrateTenant(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Menu{},
		&models.Product{},
		&models.OrderHeader{},
		&models.OrderItem{},
		&models.BlogPost{},
		&models.Page{},
		&models.LandingSection{},
		&models.Setting{},
		&models.Notification{},
		&models.ContactMessage{},
	)
}
