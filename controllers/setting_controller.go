package controllers

import (
	"errors"

	"storefront-app/models"
	"storefront-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(DB *gorm.DB) *SettingController {
	return &SettingController{DB: DB}
}

// loadTenantSettings reads the settings row through the shared TTL cache.
// Returns (nil, nil) when the tenant has no settings row yet.
func loadTenantSettings(ctx *fiber.Ctx, db *gorm.DB) (*models.Setting, error) {
	tenant, _ := ctx.Locals("tenant").(string)
	return services.Settings.Get(tenant, func() (*models.Setting, error) {
		var s models.Setting
		if err := db.First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return &s, nil
	})
}

func (c *SettingController) GetSettings(ctx *fiber.Ctx) error {
	settings, err := loadTenantSettings(ctx, c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if settings == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Settings not found"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": settings})
}

var settingInput struct {
	StoreName    string `json:"store_name"`
	StoreEmail   string `json:"store_email"`
	StorePhone   string `json:"store_phone"`
	StoreAddress string `json:"store_address"`
	Currency     string `json:"currency"`
	LogoURL      string `json:"logo_url"`

	TrackInventory  bool `json:"track_inventory"`
	ShippingEnabled bool `json:"shipping_enabled"`
	CodEnabled      bool `json:"cod_enabled"`
	PortalEnabled   bool `json:"portal_enabled"`
}

func (c *SettingController) UpdateSettings(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&settingInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var settings models.Setting
	if err := c.DB.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		// First save creates the row.
	}

	settings.StoreName = settingInput.StoreName
	settings.StoreEmail = settingInput.StoreEmail
	settings.StorePhone = settingInput.StorePhone
	settings.StoreAddress = settingInput.StoreAddress
	settings.Currency = settingInput.Currency
	settings.LogoURL = settingInput.LogoURL
	settings.TrackInventory = settingInput.TrackInventory
	settings.ShippingEnabled = settingInput.ShippingEnabled
	settings.CodEnabled = settingInput.CodEnabled
	settings.PortalEnabled = settingInput.PortalEnabled
	settings.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&settings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// The next read must see the new toggles.
	if tenant, ok := ctx.Locals("tenant").(string); ok {
		services.Settings.Invalidate(tenant)
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Settings updated successfully", "data": settings})
}
