package database

import (
	"errors"

	"storefront-app/config"
	"storefront-app/models"
	"storefront-app/services"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedPermissions(db)
	SeedRoles(db)
	SeedAdminUser(db)
	SeedSettings(db)
	SeedMenus(db)
}

// SeedTenant registers the default store in the master database.
func SeedTenant(db *gorm.DB) {
	tenant := models.Tenant{
		Name:   "Demo Store",
		DbName: config.DBTenant,
	}

	var existing models.Tenant
	err := db.Where("db_name = ?", tenant.DbName).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&tenant).Error; err != nil {
				log.Fatal().Err(err).Msg("Failed to create tenant")
			}
		} else {
			log.Fatal().Err(err).Msg("Unexpected DB error")
		}
	}
}

func SeedPermissions(db *gorm.DB) {
	permissions := []models.Permission{
		{Name: services.WildcardPermission, Description: "All permissions"},
		{Name: "products:read", Description: "View products"},
		{Name: "products:write", Description: "Manage products"},
		{Name: "orders:read", Description: "View orders"},
		{Name: "orders:write", Description: "Manage orders"},
		{Name: "blog:read", Description: "View blog posts"},
		{Name: "blog:write", Description: "Manage blog posts"},
		{Name: "pages:write", Description: "Manage pages"},
		{Name: "landing:write", Description: "Manage landing sections"},
		{Name: "settings:write", Description: "Manage store settings"},
		{Name: "messages:read", Description: "Read contact messages"},
		{Name: "messages:write", Description: "Reply to contact messages"},
		{Name: "users:write", Description: "Manage users"},
		{Name: "menus:write", Description: "Manage menus"},
	}

	for _, p := range permissions {
		var existing models.Permission
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&p)
			}
		}
	}
}

func SeedRoles(db *gorm.DB) {
	roles := map[string][]string{
		"Admin":   {services.WildcardPermission},
		"Manager": {"products:read", "products:write", "orders:read", "orders:write", "messages:read", "messages:write"},
		"Editor":  {"blog:read", "blog:write", "pages:write", "landing:write"},
	}

	for name, permNames := range roles {
		var existing models.Role
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}

		var perms []models.Permission
		db.Where("name IN ?", permNames).Find(&perms)

		role := models.Role{Name: name, Permissions: perms}
		db.Create(&role)
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin password")
	}

	var adminRole models.Role
	db.Where("name = ?", "Admin").First(&adminRole)

	user := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@storefront.local",
		Roles:    []models.Role{adminRole},
	}
	if err := db.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
	}
}

func SeedSettings(db *gorm.DB) {
	var existing models.Setting
	if err := db.First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&models.Setting{
				StoreName:       "Demo Store",
				Currency:        "USD",
				TrackInventory:  true,
				ShippingEnabled: true,
			})
		}
	}
}

func SeedMenus(db *gorm.DB) {
	roots := []models.Menu{
		{Name: "Dashboard", Path: "/dashboard", Icon: "LayoutDashboard", MenuOrder: 1},
		{Name: "Catalog", Path: "#", Icon: "Box", MenuOrder: 2, FeatureFlag: services.FlagEcommerce},
		{Name: "Orders", Path: "/orders", Icon: "ShoppingCart", MenuOrder: 3, FeatureFlag: services.FlagEcommerce},
		{Name: "Blog", Path: "/blog", Icon: "Newspaper", MenuOrder: 4, FeatureFlag: services.FlagBlog},
		{Name: "Pages", Path: "/pages", Icon: "FileText", MenuOrder: 5},
		{Name: "Landing", Path: "/landing", Icon: "Layout", MenuOrder: 6},
		{Name: "Messages", Path: "/messages", Icon: "Mail", MenuOrder: 7},
		{Name: "Portal", Path: "/portal", Icon: "Users", MenuOrder: 8, FeatureFlag: services.FlagPortalEnabled},
		{Name: "Settings", Path: "/settings", Icon: "Settings", MenuOrder: 9},
	}

	for _, m := range roots {
		createMenuIfMissing(db, m)
	}

	// Submenus need their parent ids, so they go in after the roots exist.
	children := []models.Menu{
		{Name: "Products", Path: "/catalog/products", Icon: "Box", MenuOrder: 1, ParentID: getMenuIDByName(db, "Catalog")},
		{Name: "Inventory", Path: "/catalog/inventory", Icon: "Boxes", MenuOrder: 2, ParentID: getMenuIDByName(db, "Catalog"), FeatureFlag: services.FlagInventoryEnabled},
		{Name: "Shipping", Path: "/orders/shipping", Icon: "Truck", MenuOrder: 1, ParentID: getMenuIDByName(db, "Orders"), FeatureFlag: services.FlagShippingEnabled},
	}

	for _, m := range children {
		createMenuIfMissing(db, m)
	}

	attachMenuRole(db, "Settings", "Admin")
	attachMenuPermission(db, "Messages", "messages:read")
}

func createMenuIfMissing(db *gorm.DB, m models.Menu) {
	var existing models.Menu
	if err := db.Where("name = ?", m.Name).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&m)
		}
	}
}

func getMenuIDByName(db *gorm.DB, name string) *uint {
	var menu models.Menu
	if err := db.Where("name = ?", name).First(&menu).Error; err != nil {
		return nil
	}
	return &menu.ID
}

func attachMenuRole(db *gorm.DB, menuName, roleName string) {
	var menu models.Menu
	if err := db.Preload("Roles").Where("name = ?", menuName).First(&menu).Error; err != nil {
		return
	}
	if len(menu.Roles) > 0 {
		return
	}

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return
	}
	db.Model(&menu).Association("Roles").Append(&role)
}

func attachMenuPermission(db *gorm.DB, menuName, permName string) {
	var menu models.Menu
	if err := db.Preload("Permissions").Where("name = ?", menuName).First(&menu).Error; err != nil {
		return
	}
	if len(menu.Permissions) > 0 {
		return
	}

	var perm models.Permission
	if err := db.Where("name = ?", permName).First(&perm).Error; err != nil {
		return
	}
	db.Model(&menu).Association("Permissions").Append(&perm)
}
