package models

import "gorm.io/gorm"

type Video struct {
	ID           uint   `gorm:"column:video_id;primaryKey;autoIncrement" json:"video_id"`
	Title        string `gorm:"not null" json:"title"`
	Details      string `json:"details"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration"`
	Category     string `json:"category"`
	Tags         string `json:"tags"`
	Timestamps
}

func (v *Video) AfterFind(tx *gorm.DB) error {
	v.ThumbnailURL = NormalizeImagePath(v.ThumbnailURL)
	return nil
}

type Collection struct {
	ID             uint   `gorm:"column:collection_id;primaryKey;autoIncrement" json:"collection_id"`
	Name           string `gorm:"not null" json:"name"`
	About          string `json:"about"`
	ImageURL       string `json:"image_url"`
	PaintingURL    string `json:"painting_url"`
	CollectorName  string `json:"collector_name"`
	CollectorImage string `json:"collector_image"`
	Timestamps
}

func (c *Collection) AfterFind(tx *gorm.DB) error {
	c.ImageURL = NormalizeImagePath(c.ImageURL)
	c.PaintingURL = NormalizeImagePath(c.PaintingURL)
	c.CollectorImage = NormalizeImagePath(c.CollectorImage)
	return nil
}
