package services

import (
	"strings"

	"banarts/internal/logger"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

type SearchService interface {
	Search(db *gorm.DB, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	artworkRepo repositories.ArtworkRepository
	artistRepo  repositories.ArtistRepository
	museumRepo  repositories.MuseumRepository
	galleryRepo repositories.GalleryRepository
}

func NewSearchService(
	artworkRepo repositories.ArtworkRepository,
	artistRepo repositories.ArtistRepository,
	museumRepo repositories.MuseumRepository,
	galleryRepo repositories.GalleryRepository,
) SearchService {
	return &searchService{
		artworkRepo: artworkRepo,
		artistRepo:  artistRepo,
		museumRepo:  museumRepo,
		galleryRepo: galleryRepo,
	}
}

// Search matches titles and names case-insensitively. A section whose query
// fails comes back empty; the others are still returned.
func (s *searchService) Search(db *gorm.DB, query string) (*dto.SearchResponse, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, apperrors.ErrSearchQueryRequired
	}

	return &dto.SearchResponse{
		Artworks:  searchSection(db, "artworks", term, s.artworkRepo.SearchByTitle),
		Artists:   searchSection(db, "artists", term, s.artistRepo.SearchByName),
		Museums:   searchSection(db, "museums", term, s.museumRepo.SearchByName),
		Galleries: searchSection(db, "galleries", term, s.galleryRepo.SearchByName),
	}, nil
}

func searchSection[T any](db *gorm.DB, section, term string, find func(*gorm.DB, string) ([]T, error)) []T {
	items, err := find(db, term)
	if err != nil {
		logger.CtxWithError(statementContext(db), "Search section failed", err, "section", section)
		return []T{}
	}
	return items
}
