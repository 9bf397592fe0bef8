package models

import "gorm.io/gorm"

// Showcase tables feed the home and browse pages. They are plain records and
// do not produce notifications.

type GalleryThumbnail struct {
	ID          uint   `gorm:"column:thumbnail_id;primaryKey;autoIncrement" json:"thumbnail_id"`
	ImageURL    string `gorm:"not null" json:"image_url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamps
}

func (t *GalleryThumbnail) AfterFind(tx *gorm.DB) error {
	t.ImageURL = NormalizeImagePath(t.ImageURL)
	return nil
}

type BrowseGallery struct {
	ID       uint   `gorm:"column:browse_gallery_id;primaryKey;autoIncrement" json:"browse_gallery_id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
	ImageURL string `json:"image_url"`
	Timestamps
}

func (b *BrowseGallery) AfterFind(tx *gorm.DB) error {
	b.ImageURL = NormalizeImagePath(b.ImageURL)
	return nil
}

type BrowseMuseum struct {
	ID       uint   `gorm:"column:browse_museum_id;primaryKey;autoIncrement" json:"browse_museum_id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
	ImageURL string `json:"image_url"`
	Timestamps
}

func (b *BrowseMuseum) AfterFind(tx *gorm.DB) error {
	b.ImageURL = NormalizeImagePath(b.ImageURL)
	return nil
}

type CuratedHighlight struct {
	ID          uint   `gorm:"column:highlight_id;primaryKey;autoIncrement" json:"highlight_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Timestamps
}

func (h *CuratedHighlight) AfterFind(tx *gorm.DB) error {
	h.ImageURL = NormalizeImagePath(h.ImageURL)
	return nil
}

// FeaturedArtwork is a home page tile, independent of the artworks table.
type FeaturedArtwork struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	ImageURL string `json:"image_url"`
	Timestamps
}

func (f *FeaturedArtwork) AfterFind(tx *gorm.DB) error {
	f.ImageURL = NormalizeImagePath(f.ImageURL)
	return nil
}
