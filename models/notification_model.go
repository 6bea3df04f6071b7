package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Link    string `json:"link"`
	IsRead  bool   `json:"is_read"`
	Emailed bool   `json:"emailed"`
}
