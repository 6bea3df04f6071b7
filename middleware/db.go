package middleware

import (
	"reflect"

	"storefront-app/config"
	"storefront-app/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GuestTenantMiddleware resolves the tenant for unauthenticated storefront
// routes from the query string, falling back to the default tenant.
func GuestTenantMiddleware(c *fiber.Ctx) error {
	tenant := c.Query("tenant", config.DBTenant)
	if !database.IsValidDBName(tenant) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tenant"})
	}
	c.Locals("tenant", tenant)
	return c.Next()
}

// InjectDBMiddleware resolves the tenant database from the token claims
// and injects the connection into the controller's DB field.
func InjectDBMiddleware(controller interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbName, ok := c.Locals("tenant").(string)
		if !ok || dbName == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "database name not found in context")
		}

		db, err := database.GetTenantDB(dbName)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "error connecting to database")
		}

		val := reflect.ValueOf(controller)
		if val.Kind() != reflect.Ptr || val.IsNil() {
			return fiber.NewError(fiber.StatusInternalServerError, "controller must be a non-nil pointer")
		}

		elem := val.Elem()
		dbField := elem.FieldByName("DB")
		if !dbField.IsValid() || !dbField.CanSet() {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field not found or cannot be set in controller")
		}

		if dbField.Type() != reflect.TypeOf((*gorm.DB)(nil)) {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field has wrong type")
		}

		dbField.Set(reflect.ValueOf(db))

		return c.Next()
	}
}
