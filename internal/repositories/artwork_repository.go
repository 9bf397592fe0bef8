package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var (
	ErrArtworkNotFound         = errors.New("artwork not found")
	ErrArtworkCategoryNotFound = errors.New("artwork category not found")
)

// ArtworkFilter mirrors the query string of GET /artworks.
type ArtworkFilter struct {
	ArtistID *uint
	Category string
	Featured *bool
	Limit    int
}

type ArtworkRepository interface {
	ContentRepository[models.Artwork]
	ListWithArtist(db *gorm.DB, filter ArtworkFilter) ([]models.Artwork, error)
	FindByIDWithArtist(db *gorm.DB, id uint) (*models.Artwork, error)
	SearchByTitle(db *gorm.DB, term string) ([]models.Artwork, error)
}

type ArtworkRepositoryImpl struct {
	*contentRepository[models.Artwork]
}

func NewArtworkRepository() ArtworkRepository {
	return &ArtworkRepositoryImpl{
		contentRepository: newContentRepository[models.Artwork]("artwork_id", ErrArtworkNotFound),
	}
}

const artworkWithArtist = "artworks.*, artists.name AS artist_name, artists.photo_url AS artist_photo"

func (r *ArtworkRepositoryImpl) joined(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Artwork{}).
		Select(artworkWithArtist).
		Joins("LEFT JOIN artists ON artists.artist_id = artworks.artist_id")
}

func (r *ArtworkRepositoryImpl) ListWithArtist(db *gorm.DB, filter ArtworkFilter) ([]models.Artwork, error) {
	query := r.joined(db)
	if filter.ArtistID != nil {
		query = query.Where("artworks.artist_id = ?", *filter.ArtistID)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(artworks.categories) LIKE ?", likePattern(filter.Category))
	}
	if filter.Featured != nil {
		query = query.Where("artworks.is_featured = ?", *filter.Featured)
	}
	query = query.Order("artworks.created_at DESC, artworks.artwork_id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	artworks := make([]models.Artwork, 0)
	if err := query.Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *ArtworkRepositoryImpl) FindByIDWithArtist(db *gorm.DB, id uint) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.joined(db).Where("artworks.artwork_id = ?", id).First(&artwork).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	return &artwork, nil
}

func (r *ArtworkRepositoryImpl) SearchByTitle(db *gorm.DB, term string) ([]models.Artwork, error) {
	artworks := make([]models.Artwork, 0)
	err := r.joined(db).
		Where("LOWER(artworks.title) LIKE ?", likePattern(term)).
		Order("artworks.created_at DESC, artworks.artwork_id DESC").
		Find(&artworks).Error
	return artworks, err
}

type ArtworkCategoryRepository interface {
	ContentRepository[models.ArtworkCategory]
}

func NewArtworkCategoryRepository() ArtworkCategoryRepository {
	repo := newContentRepository[models.ArtworkCategory]("category_id", ErrArtworkCategoryNotFound)
	repo.defaultOrder = "name ASC"
	return repo
}
