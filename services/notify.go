package services

import (
	"storefront-app/config"
	"storefront-app/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notify stores a notification and, when SMTP is configured, mails it to
// the admin users. UserID 0 on the notification means broadcast.
func Notify(db *gorm.DB, n *models.Notification) {
	if err := db.Create(n).Error; err != nil {
		log.Warn().Err(err).Str("title", n.Title).Msg("Failed to store notification")
		return
	}

	if config.SMTPHost == "" {
		return
	}

	var admins []models.User
	if err := db.Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name = ?", "Admin").
		Find(&admins).Error; err != nil {
		log.Warn().Err(err).Msg("Failed to load admin users for notification mail")
		return
	}

	var to []string
	for _, admin := range admins {
		if admin.Email != "" {
			to = append(to, admin.Email)
		}
	}
	if len(to) == 0 {
		return
	}

	go func() {
		if err := SendMail(to, n.Title, "<p>"+n.Body+"</p>"); err != nil {
			log.Warn().Err(err).Str("title", n.Title).Msg("Notification mail failed")
			return
		}
		db.Model(n).Update("emailed", true)
	}()
}
