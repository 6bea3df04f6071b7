package services

import (
	"storefront-app/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// SendMail sends an HTML email through the configured SMTP server. When no
// SMTP host is configured the mail is skipped, not failed: local setups
// run without a mail server.
func SendMail(to []string, subject, body string) error {
	if config.SMTPHost == "" {
		log.Debug().Strs("to", to).Str("subject", subject).Msg("SMTP not configured, skipping mail")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Strs("to", to).Msg("Failed to send email")
		return err
	}

	log.Info().Strs("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}
