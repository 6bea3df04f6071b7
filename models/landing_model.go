package models

import "gorm.io/gorm"

const (
	SectionTypeHero     = "hero"
	SectionTypeFeatures = "features"
	SectionTypeProducts = "products"
	SectionTypeCTA      = "cta"
	SectionTypeCustom   = "custom"
)

// LandingSection is one block of the storefront landing page.
type LandingSection struct {
	gorm.Model
	Type         string `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content" gorm:"type:text"` // JSON payload rendered by the frontend
	SectionOrder int    `json:"section_order" gorm:"column:section_order"`
	IsEnabled    bool   `json:"is_enabled" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
