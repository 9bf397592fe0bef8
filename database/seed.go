package database

import (
	"fmt"

	"banarts/internal/logger"
	"banarts/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultArtworkCategories = []models.ArtworkCategory{
	{Name: "Painting", Description: "Oil, acrylic and watercolor works"},
	{Name: "Sculpture", Description: "Three-dimensional works"},
	{Name: "Photography", Description: "Photographic prints"},
	{Name: "Digital Art", Description: "Works created with digital tools"},
	{Name: "Mixed Media", Description: "Works combining several media"},
	{Name: "Textile", Description: "Weaving and fabric art"},
}

// SeedCategories inserts the default artwork categories, skipping existing names.
func SeedCategories(db *gorm.DB) error {
	cats := make([]models.ArtworkCategory, len(defaultArtworkCategories))
	copy(cats, defaultArtworkCategories)

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&cats)
	if res.Error != nil {
		return fmt.Errorf("failed to seed artwork categories: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		logger.Info("artwork categories seeded", "count", res.RowsAffected)
	}
	return nil
}
