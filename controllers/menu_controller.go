package controllers

import (
	"errors"

	"storefront-app/models"
	"storefront-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB}
}

func (mc *MenuController) GetAllMenus(ctx *fiber.Ctx) error {
	var menus []models.Menu
	err := mc.DB.Preload("Children").Preload("Roles").Preload("Permissions").Find(&menus).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": menus, "success": true})
}

// GetMenuUser returns the navigation tree the requesting user is allowed
// to see: role, permission and feature-flag filtered, nested and ordered.
func (mc *MenuController) GetMenuUser(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid user"})
	}

	var user models.User
	if err := mc.DB.Preload("Roles.Permissions").Preload("Permissions").First(&user, uint(userID)).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "user not found"})
	}

	var menus []models.Menu
	if err := mc.DB.Preload("Roles").Preload("Permissions").Find(&menus).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	settings, err := loadTenantSettings(ctx, mc.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	roles, perms := services.UserAccess(&user)
	tree := services.ResolveMenu(
		services.MenuEntriesFromModels(menus),
		roles,
		perms,
		services.FeatureSettingsFromModel(settings),
	)

	return ctx.JSON(fiber.Map{"success": true, "data": tree})
}

func (mc *MenuController) GetMenuByID(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	err = mc.DB.Preload("Children").Preload("Roles").Preload("Permissions").First(&menu, menuID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": menu})
}

type menuInput struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	ParentID    *uint  `json:"parent_id"`
	FeatureFlag string `json:"feature_flag"`
	Roles       []uint `json:"roles"`
	Permissions []uint `json:"permissions"`
}

func (mc *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var input menuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var roles []models.Role
	if len(input.Roles) > 0 {
		if err := mc.DB.Where("id IN ?", input.Roles).Find(&roles).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	var permissions []models.Permission
	if len(input.Permissions) > 0 {
		if err := mc.DB.Where("id IN ?", input.Permissions).Find(&permissions).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	menu := models.Menu{
		Name:        input.Name,
		Path:        input.Path,
		Icon:        input.Icon,
		MenuOrder:   input.Order,
		ParentID:    input.ParentID,
		FeatureFlag: input.FeatureFlag,
		Roles:       roles,
		Permissions: permissions,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Menu created successfully", "data": menu, "success": true})
}

func (mc *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	if err := mc.DB.Preload("Roles").Preload("Permissions").First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input menuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	// A menu cannot be its own parent.
	if input.ParentID != nil && *input.ParentID == menu.ID {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Menu cannot be its own parent"})
	}

	menu.Name = input.Name
	menu.Path = input.Path
	menu.Icon = input.Icon
	menu.MenuOrder = input.Order
	menu.ParentID = input.ParentID
	menu.FeatureFlag = input.FeatureFlag
	menu.UpdatedBy = int(ctx.Locals("userID").(float64))

	var roles []models.Role
	if len(input.Roles) > 0 {
		if err := mc.DB.Where("id IN ?", input.Roles).Find(&roles).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	var permissions []models.Permission
	if len(input.Permissions) > 0 {
		if err := mc.DB.Where("id IN ?", input.Permissions).Find(&permissions).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := mc.DB.Model(&menu).Association("Roles").Replace(roles); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := mc.DB.Model(&menu).Association("Permissions").Replace(permissions); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Menu updated successfully", "data": menu, "success": true})
}

func (mc *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Menu deleted successfully", "success": true})
}
