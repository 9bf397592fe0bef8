package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrArtistNotFound         = errors.New("artist not found")
	ErrArtistCategoryNotFound = errors.New("artist category not found")
)

type ArtistRepository interface {
	ContentRepository[models.Artist]
	SearchByName(db *gorm.DB, term string) ([]models.Artist, error)
}

type ArtistRepositoryImpl struct {
	*contentRepository[models.Artist]
}

func NewArtistRepository() ArtistRepository {
	return &ArtistRepositoryImpl{
		contentRepository: newContentRepository[models.Artist]("artist_id", ErrArtistNotFound),
	}
}

func (r *ArtistRepositoryImpl) SearchByName(db *gorm.DB, term string) ([]models.Artist, error) {
	return searchByColumn[models.Artist](db, "name", term, r.defaultOrder)
}

// ArtistCategoryRepository is plain CRUD ordered by name.
type ArtistCategoryRepository interface {
	ContentRepository[models.ArtistCategory]
}

func NewArtistCategoryRepository() ArtistCategoryRepository {
	repo := newContentRepository[models.ArtistCategory]("artist_category_id", ErrArtistCategoryNotFound)
	repo.defaultOrder = "name ASC"
	return repo
}
