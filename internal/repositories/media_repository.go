package repositories

import (
	"errors"

	"banarts/internal/models"
)

var (
	ErrVideoNotFound      = errors.New("video not found")
	ErrCollectionNotFound = errors.New("collection not found")
)

type VideoRepository interface {
	ContentRepository[models.Video]
}

func NewVideoRepository() VideoRepository {
	return newContentRepository[models.Video]("video_id", ErrVideoNotFound)
}

type CollectionRepository interface {
	ContentRepository[models.Collection]
}

func NewCollectionRepository() CollectionRepository {
	return newContentRepository[models.Collection]("collection_id", ErrCollectionNotFound)
}
