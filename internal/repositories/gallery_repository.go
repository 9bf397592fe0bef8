package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound         = errors.New("gallery not found")
	ErrFeaturedArtworkNotFound = errors.New("featured artwork not found")
)

type GalleryRepository interface {
	ContentRepository[models.Gallery]
	SearchByName(db *gorm.DB, term string) ([]models.Gallery, error)
	SetFeatured(db *gorm.DB, id uint, featured bool) error
	ResetFeatured(db *gorm.DB) (int64, error)
}

type GalleryRepositoryImpl struct {
	*contentRepository[models.Gallery]
}

func NewGalleryRepository() GalleryRepository {
	return &GalleryRepositoryImpl{
		contentRepository: newContentRepository[models.Gallery]("gallery_id", ErrGalleryNotFound),
	}
}

func (r *GalleryRepositoryImpl) SearchByName(db *gorm.DB, term string) ([]models.Gallery, error) {
	return searchByColumn[models.Gallery](db, "name", term, r.defaultOrder)
}

func (r *GalleryRepositoryImpl) SetFeatured(db *gorm.DB, id uint, featured bool) error {
	return setFeatured[models.Gallery](db, r.pk, id, featured, r.notFound)
}

func (r *GalleryRepositoryImpl) ResetFeatured(db *gorm.DB) (int64, error) {
	result := db.Model(&models.Gallery{}).
		Where("is_featured = ?", true).
		Update("is_featured", false)
	return result.RowsAffected, result.Error
}

type GalleryFeaturedArtworkRepository interface {
	ContentRepository[models.GalleryFeaturedArtwork]
}

func NewGalleryFeaturedArtworkRepository() GalleryFeaturedArtworkRepository {
	repo := newContentRepository[models.GalleryFeaturedArtwork]("gallery_featured_id", ErrFeaturedArtworkNotFound)
	repo.defaultOrder = "display_order ASC, gallery_featured_id ASC"
	return repo
}

// setFeatured flips is_featured on one row and reports notFound when no row matched.
func setFeatured[T any](db *gorm.DB, pk string, id uint, featured bool, notFound error) error {
	result := db.Model(new(T)).Where(pk+" = ?", id).Update("is_featured", featured)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(new(T)).Where(pk+" = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound
		}
	}
	return nil
}
