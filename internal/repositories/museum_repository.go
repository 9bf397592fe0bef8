package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMuseumNotFound   = errors.New("museum not found")
	ErrArtifactNotFound = errors.New("artifact not found")
)

type MuseumRepository interface {
	ContentRepository[models.Museum]
	SearchByName(db *gorm.DB, term string) ([]models.Museum, error)
}

type MuseumRepositoryImpl struct {
	*contentRepository[models.Museum]
}

func NewMuseumRepository() MuseumRepository {
	return &MuseumRepositoryImpl{
		contentRepository: newContentRepository[models.Museum]("museum_id", ErrMuseumNotFound),
	}
}

func (r *MuseumRepositoryImpl) SearchByName(db *gorm.DB, term string) ([]models.Museum, error) {
	return searchByColumn[models.Museum](db, "name", term, r.defaultOrder)
}

type ArtifactRepository interface {
	ContentRepository[models.MuseumArtifact]
}

func NewArtifactRepository() ArtifactRepository {
	return newContentRepository[models.MuseumArtifact]("artifact_id", ErrArtifactNotFound)
}
