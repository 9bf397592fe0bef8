package database_test

import (
	"testing"

	"banarts/database"
	"banarts/internal/models"
	"banarts/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrate_CreatesAllTables(t *testing.T) {
	db := testutil.NewTestDB(t)

	for _, m := range database.Models() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Notification{}, "expires_at"))
	assert.True(t, db.Migrator().HasColumn(&models.Event{}, "exhibitors"))
}

func TestAutoMigrate_IsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, database.AutoMigrate(db))
}

func TestSeedCategories_SkipsExisting(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, database.SeedCategories(db))
	require.NoError(t, database.SeedCategories(db))

	var count int64
	require.NoError(t, db.Model(&models.ArtworkCategory{}).Count(&count).Error)
	assert.EqualValues(t, 6, count)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	assert.Error(t, err)
}
