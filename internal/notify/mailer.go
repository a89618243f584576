package notify

import (
	"fmt"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"thelo/internal/models"
)

// Mailer шлёт копию уведомления на почту пользователя
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// MailerFromEnv returns nil when SMTP_HOST is unset; the channel then stays
// database-only.
func MailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")),
		from:   from,
	}
}

func (m *Mailer) SendToUser(db *gorm.DB, userID uint, message string) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", "Thelo: new activity on your account")
	msg.SetBody("text/plain", fmt.Sprintf("Hello %s,\n\n%s\n", user.FirstName, message))
	return m.dialer.DialAndSend(msg)
}
