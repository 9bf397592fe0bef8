package database

import (
	"fmt"

	"banarts/internal/logger"
	"banarts/internal/models"

	"gorm.io/gorm"
)

// Models lists every table owned by the application, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.ArtistCategory{},
		&models.Artist{},
		&models.ArtworkCategory{},
		&models.Artwork{},
		&models.Gallery{},
		&models.GalleryFeaturedArtwork{},
		&models.Museum{},
		&models.MuseumArtifact{},
		&models.Event{},
		&models.Video{},
		&models.Collection{},
		&models.GalleryThumbnail{},
		&models.BrowseGallery{},
		&models.BrowseMuseum{},
		&models.CuratedHighlight{},
		&models.FeaturedArtwork{},
		&models.UserSavedArtwork{},
		&models.UserFollowedArtist{},
		&models.Notification{},
	}
}

type columnCheck struct {
	model interface{}
	table string
	field string
}

// Columns added after the first schema release. Databases created by older
// builds are patched in place.
var lateColumns = []columnCheck{
	{&models.User{}, "users", "OAuthToken"},
	{&models.User{}, "users", "OAuthRefreshToken"},
	{&models.User{}, "users", "OAuthTokenExpiry"},
	{&models.User{}, "users", "Bio"},
	{&models.User{}, "users", "Location"},
	{&models.User{}, "users", "SecurityQuestion"},
	{&models.User{}, "users", "SecurityAnswerHash"},
	{&models.Artwork{}, "artworks", "SocialMedia"},
	{&models.Artwork{}, "artworks", "Phone"},
	{&models.Artwork{}, "artworks", "Email"},
	{&models.Artwork{}, "artworks", "IsFeatured"},
	{&models.GalleryThumbnail{}, "gallery_thumbnails", "Title"},
	{&models.GalleryThumbnail{}, "gallery_thumbnails", "Description"},
	{&models.Event{}, "events", "Artworks"},
	{&models.Event{}, "events", "Exhibitors"},
	{&models.Event{}, "events", "Status"},
	{&models.Notification{}, "notifications", "ExpiresAt"},
}

// AutoMigrate creates or updates every table and patches late columns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	added, err := ensureColumns(db, lateColumns)
	if err != nil {
		return err
	}

	logger.Info("database schema ready", "columns_added", added)
	return nil
}

func ensureColumns(db *gorm.DB, checks []columnCheck) (int, error) {
	m := db.Migrator()
	added := 0
	for _, chk := range checks {
		if m.HasColumn(chk.model, chk.field) {
			continue
		}
		if err := m.AddColumn(chk.model, chk.field); err != nil {
			return added, fmt.Errorf("failed to add %s.%s: %w", chk.table, chk.field, err)
		}
		logger.Info("column added", "table", chk.table, "field", chk.field)
		added++
	}
	return added, nil
}
