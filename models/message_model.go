package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a message submitted through the storefront contact form.
type ContactMessage struct {
	gorm.Model
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body" gorm:"type:text"`
	IsRead    bool       `json:"is_read"`
	RepliedAt *time.Time `json:"replied_at"`
	Reply     string     `json:"reply" gorm:"type:text"`
	RepliedBy int        `json:"replied_by"`
}
