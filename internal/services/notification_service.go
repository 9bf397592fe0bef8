package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"banarts/internal/logger"
	"banarts/internal/metrics"
	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	notificationDomain = "notification"

	// EventNewNotification is the websocket event carrying a freshly created row.
	EventNewNotification = "new_notification"

	DefaultRetentionWindow = 2 * time.Hour
	DefaultPageSize        = 50
)

// Broadcaster pushes an event to every connected client.
type Broadcaster interface {
	Broadcast(event string, payload any) error
}

// NotifyInput describes one content change.
type NotifyInput struct {
	Type            string
	Message         string
	RelatedItemID   *uint
	RelatedItemType *string
}

// NotificationOptions tunes the service; zero fields fall back to the
// package defaults and time.Now.
type NotificationOptions struct {
	RetentionWindow time.Duration
	PageSize        int
	Clock           func() time.Time
}

// NotificationService owns the shared notification feed.
type NotificationService interface {
	// Notify records and broadcasts in the background; failures are only logged.
	Notify(db *gorm.DB, input NotifyInput)
	// CreateNotification stores the row, then broadcasts it.
	CreateNotification(db *gorm.DB, input NotifyInput) (*models.Notification, error)

	// ListNotifications purges expired rows first, then returns the newest
	// visible page.
	ListNotifications(db *gorm.DB) ([]models.Notification, error)
	GetUnreadCount(db *gorm.DB) (int64, error)
	// MarkAsRead starts the retention window; an unknown or read id is not an error.
	MarkAsRead(db *gorm.DB, id uint) error
	MarkAllAsRead(db *gorm.DB) (int64, error)
	// ClearNotifications deletes every row.
	ClearNotifications(db *gorm.DB) (int64, error)
	// PurgeExpired deletes read rows past their expiry.
	PurgeExpired(db *gorm.DB) (int64, error)

	// Wait blocks until every Notify started so far has finished.
	Wait()
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	broadcaster      Broadcaster
	retention        time.Duration
	pageSize         int
	clock            func() time.Time
	inflight         sync.WaitGroup
}

// NewNotificationService wires the store and broadcaster; broadcaster may be
// nil, in which case rows are only stored.
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	broadcaster Broadcaster,
	opts NotificationOptions,
) NotificationService {
	if opts.RetentionWindow <= 0 {
		opts.RetentionWindow = DefaultRetentionWindow
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
		retention:        opts.RetentionWindow,
		pageSize:         opts.PageSize,
		clock:            opts.Clock,
	}
}

func (s *notificationService) now() time.Time {
	return s.clock().UTC()
}

// ==============================
// CREATION
// ==============================

func (s *notificationService) Notify(db *gorm.DB, input NotifyInput) {
	// the request that triggered us may finish first; keep its values, drop its cancel
	ctx := context.WithoutCancel(statementContext(db))
	db = db.WithContext(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if _, err := s.CreateNotification(db, input); err != nil {
			logger.CtxWithError(ctx, "Failed to create notification", err,
				"type", input.Type,
				"message", input.Message,
			)
		}
	}()
}

func (s *notificationService) CreateNotification(db *gorm.DB, input NotifyInput) (*models.Notification, error) {
	ctx := statementContext(db)
	now := s.now()

	notification := &models.Notification{
		Type:            input.Type,
		Message:         input.Message,
		RelatedItemID:   input.RelatedItemID,
		RelatedItemType: input.RelatedItemType,
		IsRead:          false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		metrics.NotificationsFailed.Inc()
		if errors.Is(err, repositories.ErrInvalidNotificationData) {
			return nil, apperrors.ErrInvalidOperation(notificationDomain, "Notification type and message are required")
		}
		return nil, apperrors.DatabaseError(err, notificationDomain)
	}
	metrics.NotificationsCreated.WithLabelValues(notification.Type).Inc()

	// broadcast exactly what a listing would return
	stored, err := s.notificationRepo.FindByID(db, notification.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, notificationDomain)
	}

	s.broadcast(ctx, stored)
	return stored, nil
}

func (s *notificationService) broadcast(ctx context.Context, notification *models.Notification) {
	if s.broadcaster == nil {
		metrics.BroadcastFailures.Inc()
		logger.CtxWarn(ctx, "Notification not broadcast: no channel", "notification_id", notification.ID)
		return
	}

	if err := s.broadcaster.Broadcast(EventNewNotification, notification); err != nil {
		metrics.BroadcastFailures.Inc()
		logger.CtxWarn(ctx, "Notification not broadcast",
			"notification_id", notification.ID,
			"error", err.Error(),
		)
		return
	}
	metrics.NotificationsBroadcast.Inc()
}

func (s *notificationService) Wait() {
	s.inflight.Wait()
}

// ==============================
// READ STATE
// ==============================

func (s *notificationService) ListNotifications(db *gorm.DB) ([]models.Notification, error) {
	if _, err := s.PurgeExpired(db); err != nil {
		logger.CtxWithError(statementContext(db), "Failed to purge expired notifications", err)
	}

	notifications, err := s.notificationRepo.ListVisible(db, s.now(), s.pageSize)
	if err != nil {
		return nil, apperrors.DatabaseError(err, notificationDomain)
	}
	return notifications, nil
}

func (s *notificationService) GetUnreadCount(db *gorm.DB) (int64, error) {
	count, err := s.notificationRepo.CountUnread(db, s.now())
	if err != nil {
		return 0, apperrors.DatabaseError(err, notificationDomain)
	}
	return count, nil
}

func (s *notificationService) MarkAsRead(db *gorm.DB, id uint) error {
	now := s.now()
	affected, err := s.notificationRepo.MarkAsRead(db, id, now, now.Add(s.retention))
	if err != nil {
		return apperrors.DatabaseError(err, notificationDomain)
	}
	if affected == 0 {
		logger.CtxDebug(statementContext(db), "Mark as read changed nothing", "notification_id", id)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(db *gorm.DB) (int64, error) {
	now := s.now()
	affected, err := s.notificationRepo.MarkAllAsRead(db, now, now.Add(s.retention))
	if err != nil {
		return 0, apperrors.DatabaseError(err, notificationDomain)
	}
	return affected, nil
}

func (s *notificationService) ClearNotifications(db *gorm.DB) (int64, error) {
	deleted, err := s.notificationRepo.DeleteAll(db)
	if err != nil {
		return 0, apperrors.DatabaseError(err, notificationDomain)
	}
	logger.CtxInfo(statementContext(db), "Notifications cleared", "deleted", deleted)
	return deleted, nil
}

func (s *notificationService) PurgeExpired(db *gorm.DB) (int64, error) {
	deleted, err := s.notificationRepo.DeleteExpired(db, s.now())
	if err != nil {
		return 0, apperrors.DatabaseError(err, notificationDomain)
	}
	if deleted > 0 {
		metrics.NotificationsPurged.Add(float64(deleted))
	}
	return deleted, nil
}

// statementContext returns the context bound to db, or Background.
func statementContext(db *gorm.DB) context.Context {
	if db != nil && db.Statement != nil && db.Statement.Context != nil {
		return db.Statement.Context
	}
	return context.Background()
}
