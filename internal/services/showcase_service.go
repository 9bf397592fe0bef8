package services

import (
	"mime/multipart"
	"strings"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

// MaxThumbnailUploads caps the files accepted by one thumbnail upload.
const MaxThumbnailUploads = 10

// ShowcaseService manages the home and browse page cards: gallery thumbnails,
// browse galleries and museums, curated highlights and featured artwork tiles.
// None of them notify.
type ShowcaseService interface {
	ListThumbnails(db *gorm.DB) ([]models.GalleryThumbnail, error)
	GetThumbnail(db *gorm.DB, id uint) (*models.GalleryThumbnail, error)
	// CreateThumbnails stores one thumbnail per file; req.Items must describe
	// each file in order.
	CreateThumbnails(db *gorm.DB, req *dto.ThumbnailBatchRequest, files []*multipart.FileHeader) ([]models.GalleryThumbnail, error)
	UpdateThumbnail(db *gorm.DB, id uint, req *dto.ThumbnailRequest, image *multipart.FileHeader) (*models.GalleryThumbnail, error)
	DeleteThumbnail(db *gorm.DB, id uint) error

	ListBrowseGalleries(db *gorm.DB) ([]models.BrowseGallery, error)
	CreateBrowseGallery(db *gorm.DB, req *dto.BrowseEntryRequest, image *multipart.FileHeader) (*models.BrowseGallery, error)
	DeleteBrowseGallery(db *gorm.DB, id uint) error

	ListBrowseMuseums(db *gorm.DB) ([]models.BrowseMuseum, error)
	CreateBrowseMuseum(db *gorm.DB, req *dto.BrowseEntryRequest, image *multipart.FileHeader) (*models.BrowseMuseum, error)
	DeleteBrowseMuseum(db *gorm.DB, id uint) error

	ListHighlights(db *gorm.DB) ([]models.CuratedHighlight, error)
	CreateHighlight(db *gorm.DB, req *dto.HighlightRequest, image *multipart.FileHeader) (*models.CuratedHighlight, error)
	UpdateHighlight(db *gorm.DB, id uint, req *dto.HighlightRequest, image *multipart.FileHeader) (*models.CuratedHighlight, error)
	DeleteHighlight(db *gorm.DB, id uint) error

	ListFeaturedArtworks(db *gorm.DB) ([]models.FeaturedArtwork, error)
	CreateFeaturedArtwork(db *gorm.DB, req *dto.FeaturedArtworkRequest, image *multipart.FileHeader) (*models.FeaturedArtwork, error)
	DeleteFeaturedArtwork(db *gorm.DB, id uint) error
}

type showcaseService struct {
	thumbRepo  repositories.ThumbnailRepository
	thumbnails contentService[models.GalleryThumbnail]
	galleries  contentService[models.BrowseGallery]
	museums    contentService[models.BrowseMuseum]
	highlights contentService[models.CuratedHighlight]
	featured   contentService[models.FeaturedArtwork]
}

func NewShowcaseService(
	thumbnailRepo repositories.ThumbnailRepository,
	browseGalleryRepo repositories.BrowseGalleryRepository,
	browseMuseumRepo repositories.BrowseMuseumRepository,
	highlightRepo repositories.CuratedHighlightRepository,
	featuredRepo repositories.FeaturedArtworkRepository,
	uploads UploadService,
) ShowcaseService {
	return &showcaseService{
		thumbRepo: thumbnailRepo,
		thumbnails: contentService[models.GalleryThumbnail]{
			domain: "thumbnail", label: "Thumbnail",
			repo: thumbnailRepo, notFound: repositories.ErrThumbnailNotFound, uploads: uploads,
		},
		galleries: contentService[models.BrowseGallery]{
			domain: "gallery_card", label: "Browse gallery",
			repo: browseGalleryRepo, notFound: repositories.ErrBrowseGalleryNotFound, uploads: uploads,
		},
		museums: contentService[models.BrowseMuseum]{
			domain: "museum_card", label: "Browse museum",
			repo: browseMuseumRepo, notFound: repositories.ErrBrowseMuseumNotFound, uploads: uploads,
		},
		highlights: contentService[models.CuratedHighlight]{
			domain: "highlight", label: "Curated highlight",
			repo: highlightRepo, notFound: repositories.ErrHighlightNotFound, uploads: uploads,
		},
		featured: contentService[models.FeaturedArtwork]{
			domain: "featured_artwork", label: "Featured artwork",
			repo: featuredRepo, notFound: repositories.ErrFeaturedArtworkNotFound, uploads: uploads,
		},
	}
}

// ==============================
// THUMBNAILS
// ==============================

func (s *showcaseService) ListThumbnails(db *gorm.DB) ([]models.GalleryThumbnail, error) {
	return s.thumbnails.list(db, repositories.ListOptions{})
}

func (s *showcaseService) GetThumbnail(db *gorm.DB, id uint) (*models.GalleryThumbnail, error) {
	return s.thumbnails.get(db, id)
}

func (s *showcaseService) CreateThumbnails(db *gorm.DB, req *dto.ThumbnailBatchRequest, files []*multipart.FileHeader) ([]models.GalleryThumbnail, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("No images uploaded")
	}
	if len(files) > MaxThumbnailUploads {
		return nil, apperrors.NewBadRequestError("Too many images, at most 10 per upload")
	}
	items, err := req.ParseItems()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid items data")
	}
	if len(items) != len(files) {
		return nil, apperrors.NewBadRequestError("Number of items does not match number of images")
	}

	var uploaded []string
	thumbs := make([]models.GalleryThumbnail, 0, len(files))
	for i, file := range files {
		url, _, err := s.thumbnails.storeImage(db, file, "")
		if err != nil {
			s.discardAll(db, uploaded)
			return nil, err
		}
		uploaded = append(uploaded, url)
		thumbs = append(thumbs, models.GalleryThumbnail{
			ImageURL:    url,
			Title:       strings.TrimSpace(items[i].Title),
			Description: sanitize(items[i].Description),
		})
	}

	if err := s.thumbRepo.CreateBatch(db, thumbs); err != nil {
		s.discardAll(db, uploaded)
		return nil, s.thumbnails.mapError(err)
	}

	created := make([]models.GalleryThumbnail, 0, len(thumbs))
	for _, thumb := range thumbs {
		stored, err := s.thumbnails.get(db, thumb.ID)
		if err != nil {
			return nil, err
		}
		created = append(created, *stored)
	}
	return created, nil
}

// UpdateThumbnail keeps the current image unless a new one is uploaded.
func (s *showcaseService) UpdateThumbnail(db *gorm.DB, id uint, req *dto.ThumbnailRequest, image *multipart.FileHeader) (*models.GalleryThumbnail, error) {
	thumb, err := s.thumbnails.get(db, id)
	if err != nil {
		return nil, err
	}

	oldImage := thumb.ImageURL
	url, stored, err := s.thumbnails.storeImage(db, image, oldImage)
	if err != nil {
		return nil, err
	}

	thumb.Title = strings.TrimSpace(req.Title)
	thumb.Description = sanitize(req.Description)
	thumb.ImageURL = url
	if err := s.thumbnails.save(db, thumb, uploadedURL(url, stored)); err != nil {
		return nil, err
	}
	s.thumbnails.replaceImage(db, stored, oldImage, url)
	return s.thumbnails.get(db, id)
}

func (s *showcaseService) DeleteThumbnail(db *gorm.DB, id uint) error {
	return s.thumbnails.delete(db, id)
}

func (s *showcaseService) discardAll(db *gorm.DB, uploaded []string) {
	for _, url := range uploaded {
		s.thumbnails.discard(db, url)
	}
}

// ==============================
// BROWSE GALLERIES & MUSEUMS
// ==============================

func (s *showcaseService) ListBrowseGalleries(db *gorm.DB) ([]models.BrowseGallery, error) {
	return s.galleries.list(db, repositories.ListOptions{})
}

func (s *showcaseService) CreateBrowseGallery(db *gorm.DB, req *dto.BrowseEntryRequest, image *multipart.FileHeader) (*models.BrowseGallery, error) {
	url, stored, err := s.galleries.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}
	entry := &models.BrowseGallery{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		ImageURL: url,
	}
	if err := s.galleries.create(db, entry, uploadedURL(url, stored)); err != nil {
		return nil, err
	}
	return s.galleries.get(db, entry.ID)
}

func (s *showcaseService) DeleteBrowseGallery(db *gorm.DB, id uint) error {
	return s.galleries.delete(db, id)
}

func (s *showcaseService) ListBrowseMuseums(db *gorm.DB) ([]models.BrowseMuseum, error) {
	return s.museums.list(db, repositories.ListOptions{})
}

func (s *showcaseService) CreateBrowseMuseum(db *gorm.DB, req *dto.BrowseEntryRequest, image *multipart.FileHeader) (*models.BrowseMuseum, error) {
	url, stored, err := s.museums.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}
	entry := &models.BrowseMuseum{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		ImageURL: url,
	}
	if err := s.museums.create(db, entry, uploadedURL(url, stored)); err != nil {
		return nil, err
	}
	return s.museums.get(db, entry.ID)
}

func (s *showcaseService) DeleteBrowseMuseum(db *gorm.DB, id uint) error {
	return s.museums.delete(db, id)
}

// ==============================
// CURATED HIGHLIGHTS
// ==============================

func (s *showcaseService) ListHighlights(db *gorm.DB) ([]models.CuratedHighlight, error) {
	return s.highlights.list(db, repositories.ListOptions{})
}

func (s *showcaseService) CreateHighlight(db *gorm.DB, req *dto.HighlightRequest, image *multipart.FileHeader) (*models.CuratedHighlight, error) {
	url, stored, err := s.highlights.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}
	highlight := &models.CuratedHighlight{
		Title:       strings.TrimSpace(req.Title),
		Description: sanitize(req.Description),
		ImageURL:    url,
	}
	if err := s.highlights.create(db, highlight, uploadedURL(url, stored)); err != nil {
		return nil, err
	}
	return s.highlights.get(db, highlight.ID)
}

// UpdateHighlight replaces every field; a blank image_url clears the image
// unless a file is uploaded.
func (s *showcaseService) UpdateHighlight(db *gorm.DB, id uint, req *dto.HighlightRequest, image *multipart.FileHeader) (*models.CuratedHighlight, error) {
	highlight, err := s.highlights.get(db, id)
	if err != nil {
		return nil, err
	}

	oldImage := highlight.ImageURL
	url, stored, err := s.highlights.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}

	highlight.Title = strings.TrimSpace(req.Title)
	highlight.Description = sanitize(req.Description)
	highlight.ImageURL = url
	if err := s.highlights.save(db, highlight, uploadedURL(url, stored)); err != nil {
		return nil, err
	}
	s.highlights.replaceImage(db, stored, oldImage, url)
	return s.highlights.get(db, id)
}

func (s *showcaseService) DeleteHighlight(db *gorm.DB, id uint) error {
	return s.highlights.delete(db, id)
}

// ==============================
// FEATURED ARTWORK TILES
// ==============================

func (s *showcaseService) ListFeaturedArtworks(db *gorm.DB) ([]models.FeaturedArtwork, error) {
	return s.featured.list(db, repositories.ListOptions{})
}

func (s *showcaseService) CreateFeaturedArtwork(db *gorm.DB, req *dto.FeaturedArtworkRequest, image *multipart.FileHeader) (*models.FeaturedArtwork, error) {
	url, stored, err := s.featured.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}
	tile := &models.FeaturedArtwork{
		Name:     strings.TrimSpace(req.Name),
		ImageURL: url,
	}
	if err := s.featured.create(db, tile, uploadedURL(url, stored)); err != nil {
		return nil, err
	}
	return s.featured.get(db, tile.ID)
}

func (s *showcaseService) DeleteFeaturedArtwork(db *gorm.DB, id uint) error {
	return s.featured.delete(db, id)
}
