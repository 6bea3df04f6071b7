package models

import "gorm.io/gorm"

// Tenant lives in the master database and maps a store to its own database.
type Tenant struct {
	gorm.Model
	Name      string `json:"name"`
	DbName    string `json:"db_name" gorm:"unique"`
	Domain    string `json:"domain"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
