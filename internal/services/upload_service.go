package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"banarts/internal/imageprocessor"
	"banarts/internal/logger"
	"banarts/internal/storage"
	"banarts/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gosimple/slug"
)

// ============================================
// UPLOAD SERVICE
// ============================================

type UploadService interface {
	// SaveImage validates, downsizes and stores an uploaded image under folder
	// and returns its public path or URL.
	SaveImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error)
	// Remove deletes a stored file; failures are logged only.
	Remove(ctx context.Context, pathOrURL string)
}

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type uploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	config    UploadConfig
	now       func() time.Time
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor, config UploadConfig) UploadService {
	if config.MaxSize <= 0 {
		config.MaxSize = 10 * 1024 * 1024
	}
	if len(config.AllowedTypes) == 0 {
		config.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	}
	return &uploadService{
		storage:   store,
		processor: processor,
		config:    config,
		now:       time.Now,
	}
}

func (s *uploadService) SaveImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file == nil {
		return "", apperrors.NewBadRequestError("No file uploaded")
	}
	if file.Size > s.config.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	// the header size can lie; read one byte past the limit to be sure
	data, err := io.ReadAll(io.LimitReader(src, s.config.MaxSize+1))
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("failed to read uploaded file: %w", err))
	}
	if int64(len(data)) > s.config.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	mime := mimetype.Detect(data)
	if !s.isAllowed(mime) {
		logger.CtxWarn(ctx, "Rejected upload", "filename", file.Filename, "mime", mime.String())
		return "", apperrors.ErrInvalidFileType
	}

	if s.processor != nil {
		fitted, resized, err := s.processor.Fit(data, baseMIME(mime))
		if err != nil {
			return "", apperrors.ErrInvalidFileType.WithError(err)
		}
		if resized {
			logger.CtxDebug(ctx, "Image downscaled", "filename", file.Filename, "from", len(data), "to", len(fitted))
		}
		data = fitted
	}

	key := s.buildKey(folder, file.Filename, mime.Extension())
	url, err := s.storage.Save(ctx, key, bytes.NewReader(data), baseMIME(mime))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExternalServiceError, "upload", "Failed to store file", http.StatusInternalServerError)
	}
	return url, nil
}

func (s *uploadService) Remove(ctx context.Context, pathOrURL string) {
	if pathOrURL == "" {
		return
	}
	if err := s.storage.Delete(ctx, pathOrURL); err != nil {
		logger.CtxWithError(ctx, "Failed to delete stored file", err, "path", pathOrURL)
	}
}

func (s *uploadService) isAllowed(mime *mimetype.MIME) bool {
	for _, allowed := range s.config.AllowedTypes {
		if mime.Is(allowed) {
			return true
		}
	}
	return false
}

// buildKey yields "<folder>/<unix-ms>-<random>-<slug><ext>".
func (s *uploadService) buildKey(folder, filename, ext string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name := slug.Make(base)
	if name == "" {
		name = "file"
	}
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(filename))
	}

	random := make([]byte, 4)
	_, _ = rand.Read(random)

	key := fmt.Sprintf("%d-%s-%s%s", s.now().UnixMilli(), hex.EncodeToString(random), name, ext)
	if folder == "" {
		return key
	}
	return folder + "/" + key
}

func baseMIME(mime *mimetype.MIME) string {
	value, _, _ := strings.Cut(mime.String(), ";")
	return value
}
