package services

import (
	"mime/multipart"

	"banarts/internal/logger"
	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"

	"gorm.io/gorm"
)

type GalleryService interface {
	ListGalleries(db *gorm.DB, featured *bool, limit int) ([]models.Gallery, error)
	GetGallery(db *gorm.DB, id uint) (*models.Gallery, error)
	CreateGallery(db *gorm.DB, req *dto.GalleryRequest, image *multipart.FileHeader) (*models.Gallery, error)
	UpdateGallery(db *gorm.DB, id uint, req *dto.GalleryRequest, image *multipart.FileHeader) (*models.Gallery, error)
	DeleteGallery(db *gorm.DB, id uint) error
	SetFeatured(db *gorm.DB, id uint) error
	ResetFeatured(db *gorm.DB) (int64, error)

	ListFeaturedArtworks(db *gorm.DB, galleryID *uint) ([]models.GalleryFeaturedArtwork, error)
	GetFeaturedArtwork(db *gorm.DB, id uint) (*models.GalleryFeaturedArtwork, error)
	CreateFeaturedArtwork(db *gorm.DB, req *dto.GalleryFeaturedArtworkRequest, image *multipart.FileHeader) (*models.GalleryFeaturedArtwork, error)
	UpdateFeaturedArtwork(db *gorm.DB, id uint, req *dto.GalleryFeaturedArtworkRequest, image *multipart.FileHeader) (*models.GalleryFeaturedArtwork, error)
	DeleteFeaturedArtwork(db *gorm.DB, id uint) error
}

type galleryService struct {
	repo      repositories.GalleryRepository
	galleries contentService[models.Gallery]
	featured  contentService[models.GalleryFeaturedArtwork]
}

func NewGalleryService(
	galleryRepo repositories.GalleryRepository,
	featuredRepo repositories.GalleryFeaturedArtworkRepository,
	notifier NotificationService,
	uploads UploadService,
) GalleryService {
	return &galleryService{
		repo: galleryRepo,
		galleries: contentService[models.Gallery]{
			domain:   "gallery",
			label:    "Gallery",
			repo:     galleryRepo,
			notFound: repositories.ErrGalleryNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
		featured: contentService[models.GalleryFeaturedArtwork]{
			domain:   "gallery_artwork",
			label:    "Featured artwork",
			repo:     featuredRepo,
			notFound: repositories.ErrFeaturedArtworkNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
	}
}

func (s *galleryService) ListGalleries(db *gorm.DB, featured *bool, limit int) ([]models.Gallery, error) {
	return s.galleries.list(db, repositories.ListOptions{Featured: featured, Limit: limit})
}

func (s *galleryService) GetGallery(db *gorm.DB, id uint) (*models.Gallery, error) {
	return s.galleries.get(db, id)
}

func (s *galleryService) CreateGallery(db *gorm.DB, req *dto.GalleryRequest, image *multipart.FileHeader) (*models.Gallery, error) {
	imageURL, stored, err := s.galleries.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}

	gallery := &models.Gallery{}
	applyGallery(gallery, req, imageURL)
	if err := s.galleries.create(db, gallery, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.galleries.get(db, gallery.ID)
	if err != nil {
		return nil, err
	}
	s.galleries.notify(db, models.ItemGallery, created.ID, models.NotificationGallery, "New gallery added: %s", created.Name)
	return created, nil
}

func (s *galleryService) UpdateGallery(db *gorm.DB, id uint, req *dto.GalleryRequest, image *multipart.FileHeader) (*models.Gallery, error) {
	gallery, err := s.galleries.get(db, id)
	if err != nil {
		return nil, err
	}

	oldImage := gallery.ImageURL
	fallback := req.ImageURL
	if fallback == "" {
		fallback = oldImage
	}
	imageURL, stored, err := s.galleries.storeImage(db, image, fallback)
	if err != nil {
		return nil, err
	}

	applyGallery(gallery, req, imageURL)
	if err := s.galleries.save(db, gallery, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}
	s.galleries.replaceImage(db, stored, oldImage, imageURL)

	updated, err := s.galleries.get(db, id)
	if err != nil {
		return nil, err
	}
	s.galleries.notify(db, models.ItemGallery, updated.ID, models.NotificationGalleryUpdate, "Gallery updated: %s", updated.Name)
	return updated, nil
}

func (s *galleryService) DeleteGallery(db *gorm.DB, id uint) error {
	return s.galleries.delete(db, id)
}

func (s *galleryService) SetFeatured(db *gorm.DB, id uint) error {
	if err := s.repo.SetFeatured(db, id, true); err != nil {
		return s.galleries.mapError(err)
	}
	return nil
}

func (s *galleryService) ResetFeatured(db *gorm.DB) (int64, error) {
	reset, err := s.repo.ResetFeatured(db)
	if err != nil {
		return 0, s.galleries.mapError(err)
	}
	logger.CtxInfo(statementContext(db), "Featured galleries reset", "count", reset)
	return reset, nil
}

func applyGallery(gallery *models.Gallery, req *dto.GalleryRequest, imageURL string) {
	gallery.Name = req.Name
	gallery.About = sanitize(req.About)
	gallery.Location = req.Location
	gallery.Type = req.Type
	if gallery.Type == "" {
		gallery.Type = models.DefaultGalleryType
	}
	gallery.Collections = req.Collections
	gallery.Email = req.Email
	gallery.Phone = req.Phone
	gallery.ImageURL = imageURL
	gallery.ContactInfo = req.ContactInfo
	gallery.Website = req.Website
	gallery.IsFeatured = req.IsFeatured
}

// ---------------- Featured artworks ----------------

func (s *galleryService) ListFeaturedArtworks(db *gorm.DB, galleryID *uint) ([]models.GalleryFeaturedArtwork, error) {
	opts := repositories.ListOptions{}
	if galleryID != nil {
		opts.Filters = map[string]interface{}{"gallery_id": *galleryID}
	}
	return s.featured.list(db, opts)
}

func (s *galleryService) GetFeaturedArtwork(db *gorm.DB, id uint) (*models.GalleryFeaturedArtwork, error) {
	return s.featured.get(db, id)
}

func (s *galleryService) CreateFeaturedArtwork(db *gorm.DB, req *dto.GalleryFeaturedArtworkRequest, image *multipart.FileHeader) (*models.GalleryFeaturedArtwork, error) {
	if _, err := s.galleries.get(db, req.GalleryID); err != nil {
		return nil, err
	}
	imageURL, stored, err := s.featured.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}

	artwork := &models.GalleryFeaturedArtwork{}
	applyFeaturedArtwork(artwork, req, imageURL)
	if err := s.featured.create(db, artwork, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.featured.get(db, artwork.ID)
	if err != nil {
		return nil, err
	}
	s.featured.notify(db, models.ItemGallery, created.GalleryID, models.NotificationGalleryUpdate, "Featured artwork updated: %s", created.Title)
	return created, nil
}

func (s *galleryService) UpdateFeaturedArtwork(db *gorm.DB, id uint, req *dto.GalleryFeaturedArtworkRequest, image *multipart.FileHeader) (*models.GalleryFeaturedArtwork, error) {
	artwork, err := s.featured.get(db, id)
	if err != nil {
		return nil, err
	}
	if req.GalleryID != artwork.GalleryID {
		if _, err := s.galleries.get(db, req.GalleryID); err != nil {
			return nil, err
		}
	}

	oldImage := artwork.ImageURL
	fallback := req.ImageURL
	if fallback == "" {
		fallback = oldImage
	}
	imageURL, stored, err := s.featured.storeImage(db, image, fallback)
	if err != nil {
		return nil, err
	}

	applyFeaturedArtwork(artwork, req, imageURL)
	if err := s.featured.save(db, artwork, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}
	s.featured.replaceImage(db, stored, oldImage, imageURL)

	updated, err := s.featured.get(db, id)
	if err != nil {
		return nil, err
	}
	s.featured.notify(db, models.ItemGallery, updated.GalleryID, models.NotificationGalleryUpdate, "Featured artwork updated: %s", updated.Title)
	return updated, nil
}

func (s *galleryService) DeleteFeaturedArtwork(db *gorm.DB, id uint) error {
	return s.featured.delete(db, id)
}

func applyFeaturedArtwork(artwork *models.GalleryFeaturedArtwork, req *dto.GalleryFeaturedArtworkRequest, imageURL string) {
	artwork.GalleryID = req.GalleryID
	artwork.Title = req.Title
	artwork.Description = sanitize(req.Description)
	artwork.ImageURL = imageURL
	artwork.DisplayOrder = req.DisplayOrder
}
