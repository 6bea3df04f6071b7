package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	SKU         string  `json:"sku" gorm:"unique"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug" gorm:"unique"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Quantity    int     `json:"quantity"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
