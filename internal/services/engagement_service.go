package services

import (
	"banarts/internal/logger"
	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

// EngagementService toggles follows and saves for the calling user.
type EngagementService interface {
	ToggleFollow(db *gorm.DB, userID, artistID uint) (*dto.FollowResponse, error)
	ListFollowedArtists(db *gorm.DB, userID uint) ([]models.Artist, error)
	ToggleSave(db *gorm.DB, userID, artworkID uint) (*dto.SaveResponse, error)
	ListSavedArtworks(db *gorm.DB, userID uint) ([]models.Artwork, error)
}

type engagementService struct {
	repo        repositories.EngagementRepository
	artistRepo  repositories.ArtistRepository
	artworkRepo repositories.ArtworkRepository
}

func NewEngagementService(
	repo repositories.EngagementRepository,
	artistRepo repositories.ArtistRepository,
	artworkRepo repositories.ArtworkRepository,
) EngagementService {
	return &engagementService{
		repo:        repo,
		artistRepo:  artistRepo,
		artworkRepo: artworkRepo,
	}
}

func (s *engagementService) ToggleFollow(db *gorm.DB, userID, artistID uint) (*dto.FollowResponse, error) {
	if _, err := s.artistRepo.FindByID(db, artistID); err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return nil, apperrors.NewNotFoundError("artist", "Artist not found")
		}
		return nil, apperrors.DatabaseError(err, "engagement")
	}

	followed, err := s.repo.ToggleFollow(db, userID, artistID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "engagement")
	}
	logger.CtxDebug(statementContext(db), "Follow toggled", "user_id", userID, "artist_id", artistID, "followed", followed)

	if followed {
		return &dto.FollowResponse{Followed: true, Message: "Followed successfully"}, nil
	}
	return &dto.FollowResponse{Followed: false, Message: "Unfollowed successfully"}, nil
}

func (s *engagementService) ListFollowedArtists(db *gorm.DB, userID uint) ([]models.Artist, error) {
	artists, err := s.repo.ListFollowedArtists(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "engagement")
	}
	return artists, nil
}

func (s *engagementService) ToggleSave(db *gorm.DB, userID, artworkID uint) (*dto.SaveResponse, error) {
	if _, err := s.artworkRepo.FindByID(db, artworkID); err != nil {
		if apperrors.Is(err, repositories.ErrArtworkNotFound) {
			return nil, apperrors.NewNotFoundError("artwork", "Artwork not found")
		}
		return nil, apperrors.DatabaseError(err, "engagement")
	}

	saved, err := s.repo.ToggleSave(db, userID, artworkID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "engagement")
	}
	logger.CtxDebug(statementContext(db), "Save toggled", "user_id", userID, "artwork_id", artworkID, "saved", saved)

	if saved {
		return &dto.SaveResponse{Saved: true, Message: "Saved successfully"}, nil
	}
	return &dto.SaveResponse{Saved: false, Message: "Unsaved successfully"}, nil
}

func (s *engagementService) ListSavedArtworks(db *gorm.DB, userID uint) ([]models.Artwork, error) {
	artworks, err := s.repo.ListSavedArtworks(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "engagement")
	}
	return artworks, nil
}
