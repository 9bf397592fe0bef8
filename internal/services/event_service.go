package services

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	artworkSourceNew      = "new"
	artworkSourceExisting = "existing"
	unknownArtist         = "Unknown Artist"
)

// Layouts accepted for EventRequest.Date, tried in order.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type EventService interface {
	ListEvents(db *gorm.DB, featured *bool) ([]models.Event, error)
	GetEvent(db *gorm.DB, id uint) (*models.Event, error)
	CreateEvent(db *gorm.DB, req *dto.EventRequest, files EventFiles) (*models.Event, error)
	UpdateEvent(db *gorm.DB, id uint, req *dto.EventRequest, files EventFiles) (*models.Event, error)
	DeleteEvent(db *gorm.DB, id uint) error
	SetFeatured(db *gorm.DB, id uint, featured bool) error
}

// EventFiles holds the optional files of an event form.
type EventFiles struct {
	Image    *multipart.FileHeader
	Artworks []*multipart.FileHeader
}

type eventService struct {
	repo   repositories.EventRepository
	events contentService[models.Event]
}

func NewEventService(repo repositories.EventRepository, notifier NotificationService, uploads UploadService) EventService {
	return &eventService{
		repo: repo,
		events: contentService[models.Event]{
			domain:   "event",
			label:    "Event",
			repo:     repo,
			notFound: repositories.ErrEventNotFound,
			notifier: notifier,
			uploads:  uploads,
		},
	}
}

func (s *eventService) ListEvents(db *gorm.DB, featured *bool) ([]models.Event, error) {
	return s.events.list(db, repositories.ListOptions{Featured: featured})
}

func (s *eventService) GetEvent(db *gorm.DB, id uint) (*models.Event, error) {
	return s.events.get(db, id)
}

func (s *eventService) CreateEvent(db *gorm.DB, req *dto.EventRequest, files EventFiles) (*models.Event, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	var uploaded []string
	imageURL, stored, err := s.events.storeImage(db, files.Image, req.ImageURL)
	if err != nil {
		return nil, err
	}
	if stored {
		uploaded = append(uploaded, imageURL)
	}

	artworks, artworkUploads, err := s.buildArtworks(db, req, files.Artworks)
	uploaded = append(uploaded, artworkUploads...)
	if err != nil {
		s.discardAll(db, uploaded)
		return nil, err
	}

	event := &models.Event{}
	if err := applyEvent(event, req, date, imageURL, artworks); err != nil {
		s.discardAll(db, uploaded)
		return nil, err
	}
	if err := s.repo.Create(db, event); err != nil {
		s.discardAll(db, uploaded)
		return nil, s.events.mapError(err)
	}

	created, err := s.events.get(db, event.ID)
	if err != nil {
		return nil, err
	}
	s.events.notify(db, models.ItemEvent, created.ID, models.NotificationEvent, "New event added: %s", created.Name)
	return created, nil
}

func (s *eventService) UpdateEvent(db *gorm.DB, id uint, req *dto.EventRequest, files EventFiles) (*models.Event, error) {
	event, err := s.events.get(db, id)
	if err != nil {
		return nil, err
	}
	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	var uploaded []string
	oldImage := event.ImageURL
	imageURL, stored, err := s.events.storeImage(db, files.Image, orDefault(req.ImageURL, oldImage))
	if err != nil {
		return nil, err
	}
	if stored {
		uploaded = append(uploaded, imageURL)
	}

	artworks, artworkUploads, err := s.buildArtworks(db, req, files.Artworks)
	uploaded = append(uploaded, artworkUploads...)
	if err != nil {
		s.discardAll(db, uploaded)
		return nil, err
	}

	if err := applyEvent(event, req, date, imageURL, artworks); err != nil {
		s.discardAll(db, uploaded)
		return nil, err
	}
	if err := s.repo.Update(db, event); err != nil {
		s.discardAll(db, uploaded)
		return nil, s.events.mapError(err)
	}
	s.events.replaceImage(db, stored, oldImage, imageURL)

	updated, err := s.events.get(db, id)
	if err != nil {
		return nil, err
	}
	s.events.notify(db, models.ItemEvent, updated.ID, models.NotificationEventUpdate, "Event updated: %s", updated.Name)
	return updated, nil
}

func (s *eventService) DeleteEvent(db *gorm.DB, id uint) error {
	return s.events.delete(db, id)
}

func (s *eventService) SetFeatured(db *gorm.DB, id uint, featured bool) error {
	if err := s.repo.SetFeatured(db, id, featured); err != nil {
		return s.events.mapError(err)
	}
	return nil
}

// buildArtworks assembles the artworks list. Uploaded files paired with
// names take precedence; otherwise the JSON artworks field is used as is.
// A nil result with no error means the field was not supplied.
func (s *eventService) buildArtworks(db *gorm.DB, req *dto.EventRequest, files []*multipart.FileHeader) ([]dto.EventArtwork, []string, error) {
	var uploaded []string
	if len(req.ArtworkSource) == 0 && len(files) == 0 {
		raw := req.Artworks.Bytes()
		if raw == nil {
			return nil, nil, nil
		}
		artworks := make([]dto.EventArtwork, 0)
		if err := json.Unmarshal(raw, &artworks); err != nil {
			return nil, nil, apperrors.NewBadRequestError("artworks must be a JSON array")
		}
		return artworks, nil, nil
	}

	sources := req.ArtworkSource
	if len(sources) == 0 {
		sources = make([]string, len(files))
		for i := range sources {
			sources[i] = artworkSourceNew
		}
	}

	artworks := make([]dto.EventArtwork, 0, len(sources))
	fileIndex, existingIndex := 0, 0
	for i, source := range sources {
		var imageURL string
		switch source {
		case artworkSourceNew:
			if fileIndex >= len(files) {
				continue
			}
			url, _, err := s.events.storeImage(db, files[fileIndex], "")
			if err != nil {
				return nil, uploaded, err
			}
			fileIndex++
			uploaded = append(uploaded, url)
			imageURL = url
		case artworkSourceExisting:
			if existingIndex >= len(req.ExistingArtworkURLs) {
				continue
			}
			imageURL = req.ExistingArtworkURLs[existingIndex]
			existingIndex++
		default:
			continue
		}
		artworks = append(artworks, dto.EventArtwork{
			Title:      itemAt(req.ArtworkNames, i, fmt.Sprintf("Artwork %d", i+1)),
			ArtistName: itemAt(req.ArtworkArtists, i, unknownArtist),
			ImageURL:   imageURL,
		})
	}
	return artworks, uploaded, nil
}

func (s *eventService) discardAll(db *gorm.DB, uploaded []string) {
	for _, url := range uploaded {
		s.events.discard(db, url)
	}
}

func applyEvent(event *models.Event, req *dto.EventRequest, date *time.Time, imageURL string, artworks []dto.EventArtwork) error {
	event.Type = orDefault(req.Type, "event")
	event.Name = req.Name
	event.Org = req.Org
	event.About = sanitize(req.About)
	event.Date = date
	event.Location = req.Location
	event.ImageURL = imageURL
	event.LogoURL = req.LogoURL
	event.ContactInfo = req.ContactInfo
	event.Website = req.Website
	event.Status = models.EventStatus(orDefault(req.Status, string(models.EventStatusUpcoming)))
	event.IsFeatured = req.IsFeatured

	if artworks != nil || event.Artworks == nil {
		if artworks == nil {
			artworks = []dto.EventArtwork{}
		}
		encoded, err := json.Marshal(artworks)
		if err != nil {
			return apperrors.InternalError(err)
		}
		event.Artworks = datatypes.JSON(encoded)
	}

	exhibitors := make([]string, 0, len(req.Exhibitors))
	for _, name := range req.Exhibitors {
		if name = strings.TrimSpace(name); name != "" {
			exhibitors = append(exhibitors, name)
		}
	}
	encoded, err := json.Marshal(exhibitors)
	if err != nil {
		return apperrors.InternalError(err)
	}
	event.Exhibitors = datatypes.JSON(encoded)
	return nil
}

func parseEventDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, apperrors.NewBadRequestError("date must be an ISO 8601 date or date-time")
}

func itemAt(items []string, i int, fallback string) string {
	if i < len(items) && strings.TrimSpace(items[i]) != "" {
		return items[i]
	}
	return fallback
}
