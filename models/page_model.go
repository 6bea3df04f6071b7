package models

import "gorm.io/gorm"

// Page is a custom CMS page. Pages nest via ParentID; the parent chain is
// validated against cycles at write time (services.WouldCreateCycle).
type Page struct {
	gorm.Model
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"unique"`
	Content     string `json:"content" gorm:"type:text"`
	PageOrder   int    `json:"page_order" gorm:"column:page_order"`
	ParentID    *uint  `json:"parent_id"`
	Parent      *Page  `gorm:"foreignKey:ParentID"`
	Children    []Page `gorm:"foreignKey:ParentID"`
	IsPublished bool   `json:"is_published"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
