package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"banarts/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	return db
}

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(db *gorm.DB) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func TestNotificationSweeper_RunsUntilCancelled(t *testing.T) {
	purger := &countingPurger{}
	sweeper := NewNotificationSweeper(openDB(t), purger, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	sweeper.Wait()

	calls := purger.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, purger.calls.Load())
}

func TestNotificationSweeper_KeepsGoingAfterErrors(t *testing.T) {
	purger := &countingPurger{err: errors.New("database is locked")}
	sweeper := NewNotificationSweeper(openDB(t), purger, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestNotificationSweeper_DisabledInterval(t *testing.T) {
	purger := &countingPurger{}
	sweeper := NewNotificationSweeper(openDB(t), purger, 0)

	sweeper.Start(context.Background())
	sweeper.Wait()

	assert.Zero(t, purger.calls.Load())
}
