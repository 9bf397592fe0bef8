package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository stores the user follow and save toggles.
type EngagementRepository interface {
	// ToggleFollow returns true when the follow was created and false when removed.
	ToggleFollow(db *gorm.DB, userID, artistID uint) (bool, error)
	IsFollowing(db *gorm.DB, userID, artistID uint) (bool, error)
	ListFollowedArtists(db *gorm.DB, userID uint) ([]models.Artist, error)

	ToggleSave(db *gorm.DB, userID, artworkID uint) (bool, error)
	IsSaved(db *gorm.DB, userID, artworkID uint) (bool, error)
	ListSavedArtworks(db *gorm.DB, userID uint) ([]models.Artwork, error)
}

type EngagementRepositoryImpl struct{}

func NewEngagementRepository() EngagementRepository {
	return &EngagementRepositoryImpl{}
}

func (r *EngagementRepositoryImpl) ToggleFollow(db *gorm.DB, userID, artistID uint) (bool, error) {
	var created bool
	err := db.Transaction(func(tx *gorm.DB) error {
		var follow models.UserFollowedArtist
		err := tx.Where("user_id = ? AND artist_id = ?", userID, artistID).First(&follow).Error
		switch {
		case err == nil:
			return tx.Delete(&follow).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(&models.UserFollowedArtist{UserID: userID, ArtistID: artistID}).Error
		default:
			return err
		}
	})
	return created, err
}

func (r *EngagementRepositoryImpl) IsFollowing(db *gorm.DB, userID, artistID uint) (bool, error) {
	var count int64
	err := db.Model(&models.UserFollowedArtist{}).
		Where("user_id = ? AND artist_id = ?", userID, artistID).
		Count(&count).Error
	return count > 0, err
}

func (r *EngagementRepositoryImpl) ListFollowedArtists(db *gorm.DB, userID uint) ([]models.Artist, error) {
	artists := make([]models.Artist, 0)
	err := db.Model(&models.Artist{}).
		Select("artists.*").
		Joins("JOIN user_followed_artists ON user_followed_artists.artist_id = artists.artist_id").
		Where("user_followed_artists.user_id = ?", userID).
		Order("user_followed_artists.followed_at DESC, user_followed_artists.follow_id DESC").
		Find(&artists).Error
	return artists, err
}

func (r *EngagementRepositoryImpl) ToggleSave(db *gorm.DB, userID, artworkID uint) (bool, error) {
	var created bool
	err := db.Transaction(func(tx *gorm.DB) error {
		var save models.UserSavedArtwork
		err := tx.Where("user_id = ? AND artwork_id = ?", userID, artworkID).First(&save).Error
		switch {
		case err == nil:
			return tx.Delete(&save).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(&models.UserSavedArtwork{UserID: userID, ArtworkID: artworkID}).Error
		default:
			return err
		}
	})
	return created, err
}

func (r *EngagementRepositoryImpl) IsSaved(db *gorm.DB, userID, artworkID uint) (bool, error) {
	var count int64
	err := db.Model(&models.UserSavedArtwork{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error
	return count > 0, err
}

func (r *EngagementRepositoryImpl) ListSavedArtworks(db *gorm.DB, userID uint) ([]models.Artwork, error) {
	artworks := make([]models.Artwork, 0)
	err := db.Model(&models.Artwork{}).
		Select(artworkWithArtist).
		Joins("JOIN user_saved_artworks ON user_saved_artworks.artwork_id = artworks.artwork_id").
		Joins("LEFT JOIN artists ON artists.artist_id = artworks.artist_id").
		Where("user_saved_artworks.user_id = ?", userID).
		Order("user_saved_artworks.saved_at DESC, user_saved_artworks.save_id DESC").
		Find(&artworks).Error
	return artworks, err
}
