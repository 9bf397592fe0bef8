package services

import (
	"mime/multipart"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"

	"gorm.io/gorm"
)

type ArtworkService interface {
	ListArtworks(db *gorm.DB, query *dto.ArtworkQuery) ([]models.Artwork, error)
	ListFeaturedArtworks(db *gorm.DB) ([]models.Artwork, error)
	GetArtwork(db *gorm.DB, id uint) (*models.Artwork, error)
	CreateArtwork(db *gorm.DB, req *dto.ArtworkRequest, image *multipart.FileHeader) (*models.Artwork, error)
	UpdateArtwork(db *gorm.DB, id uint, req *dto.ArtworkRequest, image *multipart.FileHeader) (*models.Artwork, error)
	DeleteArtwork(db *gorm.DB, id uint) error

	ListCategories(db *gorm.DB) ([]models.ArtworkCategory, error)
}

type artworkService struct {
	repo       repositories.ArtworkRepository
	artworks   contentService[models.Artwork]
	categories contentService[models.ArtworkCategory]
}

func NewArtworkService(
	artworkRepo repositories.ArtworkRepository,
	categoryRepo repositories.ArtworkCategoryRepository,
	notifier NotificationService,
	uploads UploadService,
) ArtworkService {
	return &artworkService{
		repo: artworkRepo,
		artworks: contentService[models.Artwork]{
			domain:   "artwork",
			label:    "Artwork",
			repo:     artworkRepo,
			notFound: repositories.ErrArtworkNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
		categories: contentService[models.ArtworkCategory]{
			domain:   "artwork_category",
			label:    "Category",
			repo:     categoryRepo,
			notFound: repositories.ErrArtworkCategoryNotFound,
		},
	}
}

func (s *artworkService) ListArtworks(db *gorm.DB, query *dto.ArtworkQuery) ([]models.Artwork, error) {
	filter := repositories.ArtworkFilter{}
	if query != nil {
		filter.ArtistID = query.ArtistID
		filter.Category = query.Category
		filter.Limit = query.Limit
	}
	artworks, err := s.repo.ListWithArtist(db, filter)
	if err != nil {
		return nil, s.artworks.mapError(err)
	}
	return artworks, nil
}

func (s *artworkService) ListFeaturedArtworks(db *gorm.DB) ([]models.Artwork, error) {
	artworks, err := s.repo.ListWithArtist(db, repositories.ArtworkFilter{Featured: repositories.Bool(true)})
	if err != nil {
		return nil, s.artworks.mapError(err)
	}
	return artworks, nil
}

func (s *artworkService) GetArtwork(db *gorm.DB, id uint) (*models.Artwork, error) {
	artwork, err := s.repo.FindByIDWithArtist(db, id)
	if err != nil {
		return nil, s.artworks.mapError(err)
	}
	return artwork, nil
}

func (s *artworkService) CreateArtwork(db *gorm.DB, req *dto.ArtworkRequest, image *multipart.FileHeader) (*models.Artwork, error) {
	imageURL, stored, err := s.artworks.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}

	artwork := &models.Artwork{IsAvailable: true, Status: "active"}
	applyArtwork(artwork, req, imageURL)
	if err := s.artworks.create(db, artwork, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.GetArtwork(db, artwork.ID)
	if err != nil {
		return nil, err
	}
	s.artworks.notify(db, models.ItemArtwork, created.ID, models.NotificationArtwork, "New artwork added: %s", created.Title)
	return created, nil
}

func (s *artworkService) UpdateArtwork(db *gorm.DB, id uint, req *dto.ArtworkRequest, image *multipart.FileHeader) (*models.Artwork, error) {
	artwork, err := s.artworks.get(db, id)
	if err != nil {
		return nil, err
	}

	oldImage := artwork.ImageURL
	fallback := req.ImageURL
	if fallback == "" {
		fallback = oldImage
	}
	imageURL, stored, err := s.artworks.storeImage(db, image, fallback)
	if err != nil {
		return nil, err
	}

	applyArtwork(artwork, req, imageURL)
	if err := s.artworks.save(db, artwork, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}
	s.artworks.replaceImage(db, stored, oldImage, imageURL)

	updated, err := s.GetArtwork(db, id)
	if err != nil {
		return nil, err
	}
	s.artworks.notify(db, models.ItemArtwork, updated.ID, models.NotificationArtworkUpdate, "Artwork updated: %s", updated.Title)
	return updated, nil
}

func (s *artworkService) DeleteArtwork(db *gorm.DB, id uint) error {
	return s.artworks.delete(db, id)
}

func (s *artworkService) ListCategories(db *gorm.DB) ([]models.ArtworkCategory, error) {
	return s.categories.list(db, repositories.ListOptions{Order: "name ASC"})
}

func applyArtwork(artwork *models.Artwork, req *dto.ArtworkRequest, imageURL string) {
	artwork.ArtistID = req.ArtistID
	artwork.Categories = req.Categories
	artwork.Title = req.Title
	artwork.Description = sanitize(req.Description)
	artwork.Location = req.Location
	artwork.Medium = req.Medium
	artwork.Year = req.Year
	artwork.Size = req.Size
	artwork.Signature = req.Signature
	artwork.Certificate = req.Certificate
	artwork.SocialMedia = req.SocialMedia
	artwork.Phone = req.Phone
	artwork.Email = req.Email
	artwork.ImageURL = imageURL
	artwork.Price = req.Price
	if req.IsAvailable != nil {
		artwork.IsAvailable = *req.IsAvailable
	}
	artwork.IsFeatured = req.IsFeatured
	if req.Status != "" {
		artwork.Status = req.Status
	}
	artwork.Tags = req.Tags
}
