package workers

import (
	"context"
	"sync"
	"time"

	"banarts/internal/logger"

	"gorm.io/gorm"
)

const sweeperName = "notification_sweeper"

// Purger deletes expired notifications.
type Purger interface {
	PurgeExpired(db *gorm.DB) (int64, error)
}

// NotificationSweeper purges expired notifications on a ticker, so rows
// disappear even when nobody lists the feed.
type NotificationSweeper struct {
	db       *gorm.DB
	purger   Purger
	interval time.Duration
	wg       sync.WaitGroup
}

func NewNotificationSweeper(db *gorm.DB, purger Purger, interval time.Duration) *NotificationSweeper {
	return &NotificationSweeper{
		db:       db,
		purger:   purger,
		interval: interval,
	}
}

// Start runs the sweep loop until ctx is cancelled. A non-positive interval
// leaves purging to the lazy path in the listing.
func (w *NotificationSweeper) Start(ctx context.Context) {
	if w.interval <= 0 {
		logger.Info("notification sweeper disabled")
		return
	}
	w.wg.Add(1)
	go w.run(ctx)
}

// Wait blocks until the loop has exited.
func (w *NotificationSweeper) Wait() {
	w.wg.Wait()
}

func (w *NotificationSweeper) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *NotificationSweeper) sweep(ctx context.Context) {
	purged, err := w.purger.PurgeExpired(w.db.WithContext(ctx))
	if err != nil {
		logger.WorkerLog(sweeperName, "purge_expired", err)
		return
	}
	if purged > 0 {
		logger.WorkerLog(sweeperName, "purge_expired", nil, "purged", purged)
	}
}
