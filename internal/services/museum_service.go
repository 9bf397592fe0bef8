package services

import (
	"fmt"
	"mime/multipart"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"

	"gorm.io/gorm"
)

type MuseumService interface {
	ListMuseums(db *gorm.DB, featured *bool) ([]models.Museum, error)
	GetMuseum(db *gorm.DB, id uint) (*models.Museum, error)
	CreateMuseum(db *gorm.DB, req *dto.MuseumRequest, image *multipart.FileHeader) (*models.Museum, error)
	UpdateMuseum(db *gorm.DB, id uint, req *dto.MuseumRequest, image *multipart.FileHeader) (*models.Museum, error)
	DeleteMuseum(db *gorm.DB, id uint) error

	ListArtifacts(db *gorm.DB, museumID *uint) ([]models.MuseumArtifact, error)
	GetArtifact(db *gorm.DB, id uint) (*models.MuseumArtifact, error)
	CreateArtifact(db *gorm.DB, req *dto.ArtifactRequest, image *multipart.FileHeader) (*models.MuseumArtifact, error)
	UpdateArtifact(db *gorm.DB, id uint, req *dto.ArtifactRequest, image *multipart.FileHeader) (*models.MuseumArtifact, error)
	DeleteArtifact(db *gorm.DB, id uint) error
}

type museumService struct {
	museums   contentService[models.Museum]
	artifacts contentService[models.MuseumArtifact]
}

func NewMuseumService(
	museumRepo repositories.MuseumRepository,
	artifactRepo repositories.ArtifactRepository,
	notifier NotificationService,
	uploads UploadService,
) MuseumService {
	return &museumService{
		museums: contentService[models.Museum]{
			domain:   "museum",
			label:    "Museum",
			repo:     museumRepo,
			notFound: repositories.ErrMuseumNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
		artifacts: contentService[models.MuseumArtifact]{
			domain:   "artifact",
			label:    "Artifact",
			repo:     artifactRepo,
			notFound: repositories.ErrArtifactNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
	}
}

func (s *museumService) ListMuseums(db *gorm.DB, featured *bool) ([]models.Museum, error) {
	return s.museums.list(db, repositories.ListOptions{Featured: featured})
}

func (s *museumService) GetMuseum(db *gorm.DB, id uint) (*models.Museum, error) {
	return s.museums.get(db, id)
}

func (s *museumService) CreateMuseum(db *gorm.DB, req *dto.MuseumRequest, image *multipart.FileHeader) (*models.Museum, error) {
	imageURL, stored, err := s.museums.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}

	museum := &models.Museum{}
	applyMuseum(museum, req, imageURL)
	if err := s.museums.create(db, museum, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.museums.get(db, museum.ID)
	if err != nil {
		return nil, err
	}
	s.museums.notify(db, models.ItemMuseum, created.ID, models.NotificationMuseum, "New museum added: %s", created.Name)
	return created, nil
}

func (s *museumService) UpdateMuseum(db *gorm.DB, id uint, req *dto.MuseumRequest, image *multipart.FileHeader) (*models.Museum, error) {
	museum, err := s.museums.get(db, id)
	if err != nil {
		return nil, err
	}

	oldImage := museum.ImageURL
	fallback := req.ImageURL
	if fallback == "" {
		fallback = oldImage
	}
	imageURL, stored, err := s.museums.storeImage(db, image, fallback)
	if err != nil {
		return nil, err
	}

	applyMuseum(museum, req, imageURL)
	if err := s.museums.save(db, museum, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}
	s.museums.replaceImage(db, stored, oldImage, imageURL)

	updated, err := s.museums.get(db, id)
	if err != nil {
		return nil, err
	}
	s.museums.notify(db, models.ItemMuseum, updated.ID, models.NotificationMuseumUpdate, "Museum updated: %s", updated.Name)
	return updated, nil
}

func (s *museumService) DeleteMuseum(db *gorm.DB, id uint) error {
	return s.museums.delete(db, id)
}

func applyMuseum(museum *models.Museum, req *dto.MuseumRequest, imageURL string) {
	museum.Name = req.Name
	museum.About = sanitize(req.About)
	museum.Location = req.Location
	museum.ImageURL = imageURL
	museum.ContactInfo = req.ContactInfo
	museum.Website = req.Website
	museum.IsFeatured = req.IsFeatured
}

// ---------------- Artifacts ----------------

func (s *museumService) ListArtifacts(db *gorm.DB, museumID *uint) ([]models.MuseumArtifact, error) {
	opts := repositories.ListOptions{}
	if museumID != nil {
		opts.Filters = map[string]interface{}{"museum_id": *museumID}
	}
	return s.artifacts.list(db, opts)
}

func (s *museumService) GetArtifact(db *gorm.DB, id uint) (*models.MuseumArtifact, error) {
	return s.artifacts.get(db, id)
}

func (s *museumService) CreateArtifact(db *gorm.DB, req *dto.ArtifactRequest, image *multipart.FileHeader) (*models.MuseumArtifact, error) {
	if req.MuseumID != nil {
		if _, err := s.museums.get(db, *req.MuseumID); err != nil {
			return nil, err
		}
	}
	imageURL, stored, err := s.artifacts.storeImage(db, image, req.ImageURL)
	if err != nil {
		return nil, err
	}

	artifact := &models.MuseumArtifact{Status: "Active"}
	applyArtifact(artifact, req, imageURL)
	if err := s.artifacts.create(db, artifact, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}

	created, err := s.artifacts.get(db, artifact.ID)
	if err != nil {
		return nil, err
	}
	s.notifyArtifact(db, created)
	return created, nil
}

func (s *museumService) UpdateArtifact(db *gorm.DB, id uint, req *dto.ArtifactRequest, image *multipart.FileHeader) (*models.MuseumArtifact, error) {
	artifact, err := s.artifacts.get(db, id)
	if err != nil {
		return nil, err
	}
	if req.MuseumID != nil {
		if _, err := s.museums.get(db, *req.MuseumID); err != nil {
			return nil, err
		}
	}

	oldImage := artifact.ImageURL
	fallback := req.ImageURL
	if fallback == "" {
		fallback = oldImage
	}
	imageURL, stored, err := s.artifacts.storeImage(db, image, fallback)
	if err != nil {
		return nil, err
	}

	applyArtifact(artifact, req, imageURL)
	if err := s.artifacts.save(db, artifact, uploadedURL(imageURL, stored)); err != nil {
		return nil, err
	}
	s.artifacts.replaceImage(db, stored, oldImage, imageURL)

	updated, err := s.artifacts.get(db, id)
	if err != nil {
		return nil, err
	}
	s.notifyArtifact(db, updated)
	return updated, nil
}

func (s *museumService) DeleteArtifact(db *gorm.DB, id uint) error {
	return s.artifacts.delete(db, id)
}

// notifyArtifact reports artifact changes as museum updates. Artifacts
// without a museum produce a notification with no related item.
func (s *museumService) notifyArtifact(db *gorm.DB, artifact *models.MuseumArtifact) {
	if artifact.MuseumID != nil {
		s.artifacts.notify(db, models.ItemMuseum, *artifact.MuseumID, models.NotificationMuseumUpdate, "Featured artifact updated: %s", artifact.Name)
		return
	}
	if s.artifacts.notifier == nil {
		return
	}
	s.artifacts.notifier.Notify(db, NotifyInput{
		Type:    models.NotificationMuseumUpdate,
		Message: fmt.Sprintf("Featured artifact updated: %s", artifact.Name),
	})
}

func applyArtifact(artifact *models.MuseumArtifact, req *dto.ArtifactRequest, imageURL string) {
	artifact.MuseumID = req.MuseumID
	artifact.Name = req.Name
	artifact.Artist = req.Artist
	artifact.Type = req.Type
	artifact.Medium = req.Medium
	artifact.Dimensions = req.Dimensions
	artifact.Weight = req.Weight
	artifact.Year = req.Year
	artifact.Details = sanitize(req.Details)
	artifact.Location = req.Location
	artifact.Condition = req.Condition
	if req.Status != "" {
		artifact.Status = req.Status
	}
	artifact.ImageURL = imageURL
}
