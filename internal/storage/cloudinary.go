package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage uploads images to a Cloudinary folder.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStorage(cfg Config) (*CloudinaryStorage, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return &CloudinaryStorage{cld: cld, folder: cfg.Folder}, nil
}

func (s *CloudinaryStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		PublicID: publicIDFromKey(key),
		Folder:   s.folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", errors.New("cloudinary returned no url")
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, keyOrURL string) error {
	publicID := s.qualified(publicIDFromKey(keyOrURL))
	if strings.HasPrefix(keyOrURL, "http://") || strings.HasPrefix(keyOrURL, "https://") {
		publicID = PublicIDFromURL(keyOrURL)
	}
	if publicID == "" {
		return nil
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary rejected delete: %s", result.Error.Message)
	}
	return nil
}

func (s *CloudinaryStorage) GetURL(ctx context.Context, key string) (string, error) {
	image, err := s.cld.Image(s.qualified(publicIDFromKey(key)))
	if err != nil {
		return "", fmt.Errorf("failed to build asset: %w", err)
	}
	return image.String()
}

func (s *CloudinaryStorage) qualified(publicID string) string {
	if s.folder == "" {
		return publicID
	}
	return s.folder + "/" + publicID
}

// publicIDFromKey drops the extension; Cloudinary adds its own.
func publicIDFromKey(key string) string {
	key = strings.TrimLeft(strings.ReplaceAll(key, "\\", "/"), "/")
	return strings.TrimSuffix(key, path.Ext(key))
}

// PublicIDFromURL extracts "folder/name" from a delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/v123/folder/name.jpg.
func PublicIDFromURL(url string) string {
	_, rest, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && isVersion(parts[0]) {
		parts = parts[1:]
	}
	return publicIDFromKey(strings.Join(parts, "/"))
}

func isVersion(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, r := range segment[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
