package controllers

import (
	"errors"

	"storefront-app/database"
	"storefront-app/migration"
	"storefront-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TenantController works against the master database only.
type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(DB *gorm.DB) *TenantController {
	return &TenantController{DB: DB}
}

var tenantInput struct {
	Name   string `json:"name" validate:"required,min=2"`
	DbName string `json:"db_name" validate:"required,min=2"`
	Domain string `json:"domain"`
}

func (c *TenantController) GetAllTenants(ctx *fiber.Ctx) error {
	var tenants []models.Tenant
	if err := c.DB.Order("name asc").Find(&tenants).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": tenants})
}

// CreateTenant provisions the tenant database, migrates it, seeds it and
// registers it in the master registry.
func (c *TenantController) CreateTenant(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&tenantInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(tenantInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !database.IsValidDBName(tenantInput.DbName) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Database name may only contain letters, digits and underscores"})
	}

	var exists models.Tenant
	if err := c.DB.Where("db_name = ?", tenantInput.DbName).First(&exists).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Tenant already exists"})
	}

	database.EnsureDatabaseExists(tenantInput.DbName)

	tenantDB, err := database.GetTenantDB(tenantInput.DbName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to connect to new tenant database"})
	}

	if err := migration.MigrateTenant(tenantDB); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to migrate tenant database"})
	}
	database.RunSeeders(tenantDB)

	tenant := models.Tenant{
		Name:     tenantInput.Name,
		DbName:   tenantInput.DbName,
		Domain:   tenantInput.Domain,
		IsActive: true,
	}

	if err := c.DB.Create(&tenant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Str("tenant", tenant.DbName).Msg("Tenant provisioned")
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Tenant created successfully", "data": tenant})
}

func (c *TenantController) UpdateTenant(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var tenant models.Tenant
	if err := c.DB.First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tenant not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name     string `json:"name"`
		Domain   string `json:"domain"`
		IsActive *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The database name is immutable once provisioned.
	if input.Name != "" {
		tenant.Name = input.Name
	}
	tenant.Domain = input.Domain
	if input.IsActive != nil {
		tenant.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&tenant).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tenant updated successfully", "data": tenant})
}
