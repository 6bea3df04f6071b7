package models

import (
	"time"

	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	Title       string     `json:"title"`
	Slug        string     `json:"slug" gorm:"unique"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" gorm:"type:text"`
	CoverURL    string     `json:"cover_url"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
