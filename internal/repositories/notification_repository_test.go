package repositories_test

import (
	"testing"
	"time"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func seedNotification(t *testing.T, db *gorm.DB, msg string, createdAt time.Time) *models.Notification {
	t.Helper()
	n := &models.Notification{
		Type:      models.NotificationArtwork,
		Message:   msg,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repositories.NewNotificationRepository().Create(db, n))
	return n
}

func messages(ns []models.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}

func TestNotificationRepository_CreateRejectsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	err := repo.Create(db, &models.Notification{Type: "artist"})
	assert.ErrorIs(t, err, repositories.ErrInvalidNotificationData)
}

func TestNotificationRepository_ListOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	a := seedNotification(t, db, "A", base)
	seedNotification(t, db, "B", base.Add(time.Minute))
	seedNotification(t, db, "C", base.Add(2*time.Minute))

	now := base.Add(3 * time.Minute)
	_, err := repo.MarkAsRead(db, a.ID, now, now.Add(2*time.Hour))
	require.NoError(t, err)

	list, err := repo.ListVisible(db, now, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, messages(list))
	assert.True(t, list[2].IsRead)
}

func TestNotificationRepository_ListOrderTieBreaksOnID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	seedNotification(t, db, "first", base)
	seedNotification(t, db, "second", base)

	list, err := repo.ListVisible(db, base, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, messages(list))
}

func TestNotificationRepository_ListLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	for i := 0; i < 5; i++ {
		seedNotification(t, db, "n", base.Add(time.Duration(i)*time.Second))
	}

	list, err := repo.ListVisible(db, base.Add(time.Minute), 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestNotificationRepository_ExpiredRowsAreHidden(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	n := seedNotification(t, db, "old", base)
	_, err := repo.MarkAsRead(db, n.ID, base, base.Add(time.Hour))
	require.NoError(t, err)

	list, err := repo.ListVisible(db, base.Add(59*time.Minute), 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = repo.ListVisible(db, base.Add(61*time.Minute), 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationRepository_MarkAsReadOnlyOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	n := seedNotification(t, db, "x", base)

	affected, err := repo.MarkAsRead(db, n.ID, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.MarkAsRead(db, n.ID, base.Add(time.Minute), base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	stored, err := repo.FindByID(db, n.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ExpiresAt)
	assert.True(t, stored.ExpiresAt.Equal(base.Add(time.Hour)), "expiry must not be extended")

	affected, err = repo.MarkAsRead(db, 9999, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	a := seedNotification(t, db, "a", base)
	seedNotification(t, db, "b", base)
	seedNotification(t, db, "c", base)

	count, err := repo.CountUnread(db, base)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	_, err = repo.MarkAsRead(db, a.ID, base, base.Add(time.Hour))
	require.NoError(t, err)

	count, err = repo.CountUnread(db, base)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestNotificationRepository_MarkAllAsRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	a := seedNotification(t, db, "a", base)
	seedNotification(t, db, "b", base)
	_, err := repo.MarkAsRead(db, a.ID, base, base.Add(time.Hour))
	require.NoError(t, err)

	affected, err := repo.MarkAllAsRead(db, base.Add(time.Minute), base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	count, err := repo.CountUnread(db, base.Add(time.Minute))
	require.NoError(t, err)
	assert.Zero(t, count)

	affected, err = repo.MarkAllAsRead(db, base.Add(time.Minute), base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestNotificationRepository_DeleteExpiredAndAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	a := seedNotification(t, db, "a", base)
	seedNotification(t, db, "b", base)
	_, err := repo.MarkAsRead(db, a.ID, base, base.Add(time.Hour))
	require.NoError(t, err)

	deleted, err := repo.DeleteExpired(db, base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.DeleteExpired(db, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = repo.FindByID(db, a.ID)
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)

	deleted, err = repo.DeleteAll(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}
