// Package notify is the advisory notification side-channel: writes are
// best-effort and never fail the calling operation.
package notify

import (
	"log"

	"gorm.io/gorm"

	"thelo/internal/models"
)

// DefaultLimit — сколько уведомлений отдаёт список
const DefaultLimit = 10

type Service struct {
	db     *gorm.DB
	mailer *Mailer // nil, когда SMTP не настроен
}

func New(db *gorm.DB, mailer *Mailer) *Service {
	return &Service{db: db, mailer: mailer}
}

// Notify appends a notification for the user. Failures are logged and
// swallowed; callers never see them.
func (s *Service) Notify(userID uint, message, link string) {
	n := models.Notification{UserID: userID, Message: message, Link: link}
	if err := s.db.Create(&n).Error; err != nil {
		log.Printf("notify: create for user %d failed: %v", userID, err)
		return
	}
	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendToUser(s.db, userID, message); err != nil {
				log.Printf("notify: email for user %d failed: %v", userID, err)
			}
		}()
	}
}

// Recent returns the newest notifications, at most limit.
func (s *Service) Recent(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	items := []models.Notification{}
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// MarkAllRead flips unread notifications to read. Repeat calls are no-ops.
func (s *Service) MarkAllRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
