package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrThumbnailNotFound     = errors.New("thumbnail not found")
	ErrBrowseGalleryNotFound = errors.New("browse gallery not found")
	ErrBrowseMuseumNotFound  = errors.New("browse museum not found")
	ErrHighlightNotFound     = errors.New("curated highlight not found")
)

type ThumbnailRepository interface {
	ContentRepository[models.GalleryThumbnail]
	// CreateBatch inserts every thumbnail or none of them.
	CreateBatch(db *gorm.DB, thumbnails []models.GalleryThumbnail) error
}

type thumbnailRepository struct {
	*contentRepository[models.GalleryThumbnail]
}

func NewThumbnailRepository() ThumbnailRepository {
	return &thumbnailRepository{
		contentRepository: newContentRepository[models.GalleryThumbnail]("thumbnail_id", ErrThumbnailNotFound),
	}
}

func (r *thumbnailRepository) CreateBatch(db *gorm.DB, thumbnails []models.GalleryThumbnail) error {
	if len(thumbnails) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&thumbnails).Error
	})
}

type BrowseGalleryRepository interface {
	ContentRepository[models.BrowseGallery]
}

func NewBrowseGalleryRepository() BrowseGalleryRepository {
	return newContentRepository[models.BrowseGallery]("browse_gallery_id", ErrBrowseGalleryNotFound)
}

type BrowseMuseumRepository interface {
	ContentRepository[models.BrowseMuseum]
}

func NewBrowseMuseumRepository() BrowseMuseumRepository {
	return newContentRepository[models.BrowseMuseum]("browse_museum_id", ErrBrowseMuseumNotFound)
}

type CuratedHighlightRepository interface {
	ContentRepository[models.CuratedHighlight]
}

func NewCuratedHighlightRepository() CuratedHighlightRepository {
	return newContentRepository[models.CuratedHighlight]("highlight_id", ErrHighlightNotFound)
}

type FeaturedArtworkRepository interface {
	ContentRepository[models.FeaturedArtwork]
}

func NewFeaturedArtworkRepository() FeaturedArtworkRepository {
	return newContentRepository[models.FeaturedArtwork]("id", ErrFeaturedArtworkNotFound)
}
