package models

import "gorm.io/gorm"

const DefaultGalleryType = "Art Gallery"

type Gallery struct {
	ID          uint   `gorm:"column:gallery_id;primaryKey;autoIncrement" json:"gallery_id"`
	Name        string `gorm:"not null" json:"name"`
	About       string `json:"about"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Collections string `json:"collections"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ImageURL    string `json:"image_url"`
	ContactInfo string `json:"contact_info"`
	Website     string `json:"website"`
	IsFeatured  bool   `gorm:"default:false;index" json:"is_featured"`
	Timestamps
}

func (g *Gallery) AfterFind(tx *gorm.DB) error {
	g.ImageURL = NormalizeImagePath(g.ImageURL)
	if g.Type == "" || g.Type == "[object Object]" {
		g.Type = DefaultGalleryType
	}
	return nil
}

type GalleryFeaturedArtwork struct {
	ID           uint   `gorm:"column:gallery_featured_id;primaryKey;autoIncrement" json:"gallery_featured_id"`
	GalleryID    uint   `gorm:"not null;index" json:"gallery_id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	Timestamps
}

func (g *GalleryFeaturedArtwork) AfterFind(tx *gorm.DB) error {
	g.ImageURL = NormalizeImagePath(g.ImageURL)
	return nil
}
