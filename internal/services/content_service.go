package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"banarts/internal/logger"
	"banarts/internal/repositories"
	"banarts/pkg/apperrors"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ugcPolicy strips scripts and unsafe attributes from user supplied text.
var ugcPolicy = bluemonday.UGCPolicy()

func sanitize(text string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(text))
}

// contentService carries the CRUD plumbing shared by every content entity.
type contentService[T any] struct {
	domain   string
	label    string
	repo     repositories.ContentRepository[T]
	notFound error
	notifier NotificationService
	uploads  UploadService
}

func (s *contentService[T]) list(db *gorm.DB, opts repositories.ListOptions) ([]T, error) {
	items, err := s.repo.List(db, opts)
	if err != nil {
		return nil, s.mapError(err)
	}
	return items, nil
}

func (s *contentService[T]) get(db *gorm.DB, id uint) (*T, error) {
	entity, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	return entity, nil
}

// create stores entity; uploaded is removed again when the insert fails.
func (s *contentService[T]) create(db *gorm.DB, entity *T, uploaded string) error {
	if err := s.repo.Create(db, entity); err != nil {
		s.discard(db, uploaded)
		return s.mapError(err)
	}
	return nil
}

func (s *contentService[T]) save(db *gorm.DB, entity *T, uploaded string) error {
	if err := s.repo.Update(db, entity); err != nil {
		s.discard(db, uploaded)
		return s.mapError(err)
	}
	return nil
}

func (s *contentService[T]) delete(db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		return s.mapError(err)
	}
	return nil
}

// storeImage saves file when present; otherwise it returns fallback.
func (s *contentService[T]) storeImage(db *gorm.DB, file *multipart.FileHeader, fallback string) (string, bool, error) {
	if file == nil {
		return fallback, false, nil
	}
	if s.uploads == nil {
		return "", false, apperrors.NewBadRequestError("File uploads are not enabled")
	}
	url, err := s.uploads.SaveImage(statementContext(db), file, s.domain+"s")
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

// replaceImage removes old after a successful update that stored a new file.
func (s *contentService[T]) replaceImage(db *gorm.DB, stored bool, old, current string) {
	if stored && old != "" && old != current && s.uploads != nil {
		s.uploads.Remove(context.WithoutCancel(statementContext(db)), old)
	}
}

func (s *contentService[T]) discard(db *gorm.DB, uploaded string) {
	if uploaded != "" && s.uploads != nil {
		s.uploads.Remove(statementContext(db), uploaded)
	}
}

func (s *contentService[T]) notify(db *gorm.DB, kind string, id uint, notificationType, format, subject string) {
	if s.notifier == nil {
		logger.CtxWarn(statementContext(db), "No notification service configured", "type", notificationType)
		return
	}
	itemID := id
	itemType := kind
	s.notifier.Notify(db, NotifyInput{
		Type:            notificationType,
		Message:         fmt.Sprintf(format, subject),
		RelatedItemID:   &itemID,
		RelatedItemType: &itemType,
	})
}

func (s *contentService[T]) mapError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, s.notFound) {
		return apperrors.NewNotFoundError(s.domain, s.label+" not found")
	}
	return apperrors.DatabaseError(err, s.domain)
}

// uploadedURL returns url only when it was produced by this request.
func uploadedURL(url string, stored bool) string {
	if stored {
		return url
	}
	return ""
}
