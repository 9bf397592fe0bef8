package repositories

import (
	"errors"

	"banarts/internal/models"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	ContentRepository[models.Event]
	SetFeatured(db *gorm.DB, id uint, featured bool) error
}

type EventRepositoryImpl struct {
	*contentRepository[models.Event]
}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{
		contentRepository: newContentRepository[models.Event]("event_id", ErrEventNotFound),
	}
}

func (r *EventRepositoryImpl) SetFeatured(db *gorm.DB, id uint, featured bool) error {
	return setFeatured[models.Event](db, r.pk, id, featured, r.notFound)
}
