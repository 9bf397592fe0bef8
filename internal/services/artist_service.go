package services

import (
	"mime/multipart"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArtistService interface {
	ListArtists(db *gorm.DB, featured *bool) ([]models.Artist, error)
	GetArtist(db *gorm.DB, id uint) (*models.Artist, error)
	CreateArtist(db *gorm.DB, req *dto.ArtistRequest, photo *multipart.FileHeader) (*models.Artist, error)
	UpdateArtist(db *gorm.DB, id uint, req *dto.ArtistRequest, photo *multipart.FileHeader) (*models.Artist, error)
	DeleteArtist(db *gorm.DB, id uint) error

	ListCategories(db *gorm.DB) ([]models.ArtistCategory, error)
	GetCategory(db *gorm.DB, id uint) (*models.ArtistCategory, error)
	CreateCategory(db *gorm.DB, req *dto.ArtistCategoryRequest) (*models.ArtistCategory, error)
	UpdateCategory(db *gorm.DB, id uint, req *dto.ArtistCategoryRequest) (*models.ArtistCategory, error)
	DeleteCategory(db *gorm.DB, id uint) error
}

type artistService struct {
	artists    contentService[models.Artist]
	categories contentService[models.ArtistCategory]
}

func NewArtistService(
	artistRepo repositories.ArtistRepository,
	categoryRepo repositories.ArtistCategoryRepository,
	notifier NotificationService,
	uploads UploadService,
) ArtistService {
	return &artistService{
		artists: contentService[models.Artist]{
			domain:   "artist",
			label:    "Artist",
			repo:     artistRepo,
			notFound: repositories.ErrArtistNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
		categories: contentService[models.ArtistCategory]{
			domain:   "artist_category",
			label:    "Category",
			repo:     categoryRepo,
			notFound: repositories.ErrArtistCategoryNotFound,
		},
	}
}

func (s *artistService) ListArtists(db *gorm.DB, featured *bool) ([]models.Artist, error) {
	return s.artists.list(db, repositories.ListOptions{Featured: featured})
}

func (s *artistService) GetArtist(db *gorm.DB, id uint) (*models.Artist, error) {
	return s.artists.get(db, id)
}

func (s *artistService) CreateArtist(db *gorm.DB, req *dto.ArtistRequest, photo *multipart.FileHeader) (*models.Artist, error) {
	if !req.SocialLinks.Valid() {
		return nil, apperrors.NewBadRequestError("social_links must be valid JSON")
	}
	photoURL, stored, err := s.artists.storeImage(db, photo, req.PhotoURL)
	if err != nil {
		return nil, err
	}

	artist := &models.Artist{}
	applyArtist(artist, req, photoURL)
	if err := s.artists.create(db, artist, uploadedURL(photoURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.artists.get(db, artist.ID)
	if err != nil {
		return nil, err
	}
	s.artists.notify(db, models.ItemArtist, created.ID, models.NotificationArtist, "New artist added: %s", created.Name)
	return created, nil
}

func (s *artistService) UpdateArtist(db *gorm.DB, id uint, req *dto.ArtistRequest, photo *multipart.FileHeader) (*models.Artist, error) {
	if !req.SocialLinks.Valid() {
		return nil, apperrors.NewBadRequestError("social_links must be valid JSON")
	}
	artist, err := s.artists.get(db, id)
	if err != nil {
		return nil, err
	}

	oldPhoto := artist.PhotoURL
	fallback := req.PhotoURL
	if fallback == "" {
		fallback = oldPhoto
	}
	photoURL, stored, err := s.artists.storeImage(db, photo, fallback)
	if err != nil {
		return nil, err
	}

	applyArtist(artist, req, photoURL)
	if err := s.artists.save(db, artist, uploadedURL(photoURL, stored)); err != nil {
		return nil, err
	}
	s.artists.replaceImage(db, stored, oldPhoto, photoURL)

	updated, err := s.artists.get(db, id)
	if err != nil {
		return nil, err
	}
	s.artists.notify(db, models.ItemArtist, updated.ID, models.NotificationArtistUpdate, "Artist profile updated: %s", updated.Name)
	return updated, nil
}

func (s *artistService) DeleteArtist(db *gorm.DB, id uint) error {
	return s.artists.delete(db, id)
}

func applyArtist(artist *models.Artist, req *dto.ArtistRequest, photoURL string) {
	artist.UserID = req.UserID
	artist.Name = req.Name
	artist.Email = req.Email
	artist.Contact = req.Contact
	artist.Location = req.Location
	artist.About = sanitize(req.About)
	artist.BornYear = req.BornYear
	artist.Specialties = req.Specialties
	artist.Exhibitions = req.Exhibitions
	artist.Category = req.Category
	artist.PhotoURL = photoURL
	artist.IsFeatured = req.IsFeatured
	if links := req.SocialLinks.Bytes(); links != nil {
		artist.SocialLinks = datatypes.JSON(links)
	}
}

// ---------------- Categories ----------------

func (s *artistService) ListCategories(db *gorm.DB) ([]models.ArtistCategory, error) {
	return s.categories.list(db, repositories.ListOptions{})
}

func (s *artistService) GetCategory(db *gorm.DB, id uint) (*models.ArtistCategory, error) {
	return s.categories.get(db, id)
}

func (s *artistService) CreateCategory(db *gorm.DB, req *dto.ArtistCategoryRequest) (*models.ArtistCategory, error) {
	category := &models.ArtistCategory{Name: req.Name, Description: sanitize(req.Description)}
	if err := s.categories.create(db, category, ""); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *artistService) UpdateCategory(db *gorm.DB, id uint, req *dto.ArtistCategoryRequest) (*models.ArtistCategory, error) {
	category, err := s.categories.get(db, id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Description = sanitize(req.Description)
	if err := s.categories.save(db, category, ""); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *artistService) DeleteCategory(db *gorm.DB, id uint) error {
	return s.categories.delete(db, id)
}
