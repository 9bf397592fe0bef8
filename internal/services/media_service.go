package services

import (
	"mime/multipart"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"

	"gorm.io/gorm"
)

type MediaService interface {
	ListVideos(db *gorm.DB) ([]models.Video, error)
	GetVideo(db *gorm.DB, id uint) (*models.Video, error)
	CreateVideo(db *gorm.DB, req *dto.VideoRequest, thumbnail *multipart.FileHeader) (*models.Video, error)
	UpdateVideo(db *gorm.DB, id uint, req *dto.VideoRequest, thumbnail *multipart.FileHeader) (*models.Video, error)
	DeleteVideo(db *gorm.DB, id uint) error

	ListCollections(db *gorm.DB) ([]models.Collection, error)
	GetCollection(db *gorm.DB, id uint) (*models.Collection, error)
	CreateCollection(db *gorm.DB, req *dto.CollectionRequest, images CollectionImages) (*models.Collection, error)
	UpdateCollection(db *gorm.DB, id uint, req *dto.CollectionRequest, images CollectionImages) (*models.Collection, error)
	DeleteCollection(db *gorm.DB, id uint) error
}

// CollectionImages holds the optional files of a collection form.
type CollectionImages struct {
	Image          *multipart.FileHeader
	Painting       *multipart.FileHeader
	CollectorImage *multipart.FileHeader
}

type mediaService struct {
	videos      contentService[models.Video]
	collections contentService[models.Collection]
}

func NewMediaService(
	videoRepo repositories.VideoRepository,
	collectionRepo repositories.CollectionRepository,
	notifier NotificationService,
	uploads UploadService,
) MediaService {
	return &mediaService{
		videos: contentService[models.Video]{
			domain:   "video",
			label:    "Video",
			repo:     videoRepo,
			notFound: repositories.ErrVideoNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
		collections: contentService[models.Collection]{
			domain:   "collection",
			label:    "Collection",
			repo:     collectionRepo,
			notFound: repositories.ErrCollectionNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
	}
}

func (s *mediaService) ListVideos(db *gorm.DB) ([]models.Video, error) {
	return s.videos.list(db, repositories.ListOptions{})
}

func (s *mediaService) GetVideo(db *gorm.DB, id uint) (*models.Video, error) {
	return s.videos.get(db, id)
}

func (s *mediaService) CreateVideo(db *gorm.DB, req *dto.VideoRequest, thumbnail *multipart.FileHeader) (*models.Video, error) {
	thumbURL, stored, err := s.videos.storeImage(db, thumbnail, req.ThumbnailURL)
	if err != nil {
		return nil, err
	}

	video := &models.Video{}
	applyVideo(video, req, thumbURL)
	if err := s.videos.create(db, video, uploadedURL(thumbURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.videos.get(db, video.ID)
	if err != nil {
		return nil, err
	}
	s.videos.notify(db, models.ItemVideo, created.ID, models.NotificationVideo, "New video added: %s", created.Title)
	return created, nil
}

func (s *mediaService) UpdateVideo(db *gorm.DB, id uint, req *dto.VideoRequest, thumbnail *multipart.FileHeader) (*models.Video, error) {
	video, err := s.videos.get(db, id)
	if err != nil {
		return nil, err
	}

	oldThumb := video.ThumbnailURL
	fallback := req.ThumbnailURL
	if fallback == "" {
		fallback = oldThumb
	}
	thumbURL, stored, err := s.videos.storeImage(db, thumbnail, fallback)
	if err != nil {
		return nil, err
	}

	applyVideo(video, req, thumbURL)
	if err := s.videos.save(db, video, uploadedURL(thumbURL, stored)); err != nil {
		return nil, err
	}
	s.videos.replaceImage(db, stored, oldThumb, thumbURL)

	updated, err := s.videos.get(db, id)
	if err != nil {
		return nil, err
	}
	s.videos.notify(db, models.ItemVideo, updated.ID, models.NotificationVideoUpdate, "Video updated: %s", updated.Title)
	return updated, nil
}

func (s *mediaService) DeleteVideo(db *gorm.DB, id uint) error {
	return s.videos.delete(db, id)
}

func applyVideo(video *models.Video, req *dto.VideoRequest, thumbURL string) {
	video.Title = req.Title
	video.Details = sanitize(req.Details)
	video.URL = req.URL
	video.ThumbnailURL = thumbURL
	video.Duration = req.Duration
	video.Category = req.Category
	video.Tags = req.Tags
}

// ---------------- Collections ----------------

func (s *mediaService) ListCollections(db *gorm.DB) ([]models.Collection, error) {
	return s.collections.list(db, repositories.ListOptions{})
}

func (s *mediaService) GetCollection(db *gorm.DB, id uint) (*models.Collection, error) {
	return s.collections.get(db, id)
}

func (s *mediaService) CreateCollection(db *gorm.DB, req *dto.CollectionRequest, images CollectionImages) (*models.Collection, error) {
	urls, uploaded, err := s.storeCollectionImages(db, images, collectionURLs{req.ImageURL, req.PaintingURL, req.CollectorImage})
	if err != nil {
		return nil, err
	}

	collection := &models.Collection{}
	applyCollection(collection, req, urls)
	if err := s.collections.repo.Create(db, collection); err != nil {
		s.discardAll(db, uploaded)
		return nil, s.collections.mapError(err)
	}

	created, err := s.collections.get(db, collection.ID)
	if err != nil {
		return nil, err
	}
	s.collections.notify(db, models.ItemCollection, created.ID, models.NotificationCollection, "New collection added: %s", created.Name)
	return created, nil
}

func (s *mediaService) UpdateCollection(db *gorm.DB, id uint, req *dto.CollectionRequest, images CollectionImages) (*models.Collection, error) {
	collection, err := s.collections.get(db, id)
	if err != nil {
		return nil, err
	}

	old := collectionURLs{collection.ImageURL, collection.PaintingURL, collection.CollectorImage}
	fallback := collectionURLs{
		orDefault(req.ImageURL, old.image),
		orDefault(req.PaintingURL, old.painting),
		orDefault(req.CollectorImage, old.collector),
	}
	urls, uploaded, err := s.storeCollectionImages(db, images, fallback)
	if err != nil {
		return nil, err
	}

	applyCollection(collection, req, urls)
	if err := s.collections.repo.Update(db, collection); err != nil {
		s.discardAll(db, uploaded)
		return nil, s.collections.mapError(err)
	}
	s.collections.replaceImage(db, images.Image != nil, old.image, urls.image)
	s.collections.replaceImage(db, images.Painting != nil, old.painting, urls.painting)
	s.collections.replaceImage(db, images.CollectorImage != nil, old.collector, urls.collector)

	updated, err := s.collections.get(db, id)
	if err != nil {
		return nil, err
	}
	s.collections.notify(db, models.ItemCollection, updated.ID, models.NotificationCollectionUpdate, "Collection updated: %s", updated.Name)
	return updated, nil
}

func (s *mediaService) DeleteCollection(db *gorm.DB, id uint) error {
	return s.collections.delete(db, id)
}

type collectionURLs struct {
	image     string
	painting  string
	collector string
}

// storeCollectionImages stores each present file and returns the resulting
// urls plus the list of newly stored ones.
func (s *mediaService) storeCollectionImages(db *gorm.DB, images CollectionImages, fallback collectionURLs) (collectionURLs, []string, error) {
	var uploaded []string
	store := func(file *multipart.FileHeader, current string) (string, error) {
		url, stored, err := s.collections.storeImage(db, file, current)
		if err != nil {
			return "", err
		}
		if stored {
			uploaded = append(uploaded, url)
		}
		return url, nil
	}

	var urls collectionURLs
	var err error
	if urls.image, err = store(images.Image, fallback.image); err != nil {
		s.discardAll(db, uploaded)
		return urls, nil, err
	}
	if urls.painting, err = store(images.Painting, fallback.painting); err != nil {
		s.discardAll(db, uploaded)
		return urls, nil, err
	}
	if urls.collector, err = store(images.CollectorImage, fallback.collector); err != nil {
		s.discardAll(db, uploaded)
		return urls, nil, err
	}
	return urls, uploaded, nil
}

func (s *mediaService) discardAll(db *gorm.DB, uploaded []string) {
	for _, url := range uploaded {
		s.collections.discard(db, url)
	}
}

func applyCollection(collection *models.Collection, req *dto.CollectionRequest, urls collectionURLs) {
	collection.Name = req.Name
	collection.About = sanitize(req.About)
	collection.ImageURL = urls.image
	collection.PaintingURL = urls.painting
	collection.CollectorName = req.CollectorName
	collection.CollectorImage = urls.collector
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
