package models

import (
	"strings"
	"time"
)

// Timestamps replaces gorm.Model for tables keyed by their own *_id column.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeImagePath turns stored upload paths into URL paths.
// Absolute http(s) URLs are returned unchanged.
func NormalizeImagePath(p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	p = strings.ReplaceAll(p, "\\", "/")
	return "/" + strings.TrimLeft(p, "/")
}
