package repositories

import (
	"errors"
	"strings"
	"time"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)

// Unread first, newest first, id breaks created_at ties.
const notificationOrder = "is_read ASC, created_at DESC, notification_id DESC"

// visibleAt matches rows that have no expiry or expire after now.
const visibleAt = "expires_at IS NULL OR expires_at > ?"

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByID(db *gorm.DB, id uint) (*models.Notification, error)
	ListVisible(db *gorm.DB, now time.Time, limit int) ([]models.Notification, error)
	CountUnread(db *gorm.DB, now time.Time) (int64, error)

	// MarkAsRead flips one unread row; an already read or missing row yields 0.
	MarkAsRead(db *gorm.DB, id uint, now, expiresAt time.Time) (int64, error)
	MarkAllAsRead(db *gorm.DB, now, expiresAt time.Time) (int64, error)

	DeleteExpired(db *gorm.DB, now time.Time) (int64, error)
	DeleteAll(db *gorm.DB) (int64, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := db.Where("notification_id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) ListVisible(db *gorm.DB, now time.Time, limit int) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	query := db.Where(visibleAt, now).Order(notificationOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepositoryImpl) CountUnread(db *gorm.DB, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Where(visibleAt, now).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id uint, now, expiresAt time.Time) (int64, error) {
	result := db.Model(&models.Notification{}).
		Where("notification_id = ? AND is_read = ?", id, false).
		Updates(readTransition(now, expiresAt))
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(db *gorm.DB, now, expiresAt time.Time) (int64, error) {
	result := db.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Updates(readTransition(now, expiresAt))
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) DeleteAll(db *gorm.DB) (int64, error) {
	result := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}

func readTransition(now, expiresAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		"is_read":    true,
		"expires_at": expiresAt,
		"updated_at": now,
	}
}

func (r *NotificationRepositoryImpl) validateNotification(n *models.Notification) error {
	if n == nil || strings.TrimSpace(n.Type) == "" || strings.TrimSpace(n.Message) == "" {
		return ErrInvalidNotificationData
	}
	return nil
}
