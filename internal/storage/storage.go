package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage keeps uploaded files and turns their keys into public URLs.
type Storage interface {
	// Save stores reader under key and returns the public URL or path.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// Delete removes the object behind key or a URL previously returned by Save.
	// Missing objects are not an error.
	Delete(ctx context.Context, keyOrURL string) error

	GetURL(ctx context.Context, key string) (string, error)
}

type Config struct {
	Type     string // local, cloudinary, s3
	BasePath string // local only
	BaseURL  string // public prefix for local files

	CloudName string
	APIKey    string
	APISecret string
	Folder    string

	// s3 and S3-compatible services such as R2
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "cloudinary":
		return NewCloudinaryStorage(cfg)
	case "s3", "r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
