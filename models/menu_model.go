package models

import "gorm.io/gorm"

// Menu is one navigable entry in the dashboard navigation. Visibility is
// resolved per user from the attached roles, permissions and the optional
// feature flag (see services.ResolveMenu).
type Menu struct {
	gorm.Model
	Name        string       `json:"name"`
	Path        string       `json:"path"`
	Icon        string       `json:"icon"`
	MenuOrder   int          `json:"menu_order" gorm:"column:menu_order"`
	ParentID    *uint        `json:"parent_id"`
	FeatureFlag string       `json:"feature_flag"`
	Parent      *Menu        `gorm:"foreignKey:ParentID"`
	Children    []Menu       `gorm:"foreignKey:ParentID"`
	Roles       []Role       `gorm:"many2many:menu_roles;"`
	Permissions []Permission `gorm:"many2many:menu_permissions;"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
