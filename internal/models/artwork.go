package models

import "gorm.io/gorm"

type ArtworkCategory struct {
	ID          uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Timestamps
}

func (c *ArtworkCategory) AfterFind(tx *gorm.DB) error {
	c.ImageURL = NormalizeImagePath(c.ImageURL)
	return nil
}

type Artwork struct {
	ID          uint     `gorm:"column:artwork_id;primaryKey;autoIncrement" json:"artwork_id"`
	ArtistID    *uint    `gorm:"index" json:"artist_id"`
	Categories  string   `json:"categories"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Medium      string   `json:"medium"`
	Year        *int     `json:"year"`
	Size        string   `json:"size"`
	Signature   string   `json:"signature"`
	Certificate string   `json:"certificate"`
	SocialMedia string   `json:"social_media"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	ImageURL    string   `json:"image_url"`
	Price       *float64 `gorm:"type:decimal(10,2)" json:"price"`
	IsAvailable bool     `gorm:"not null" json:"is_available"`
	IsFeatured  bool     `gorm:"default:false;index" json:"is_featured"`
	Status      string   `gorm:"default:'active'" json:"status"`
	Tags        string   `json:"tags"`
	Timestamps

	// Filled by joined reads only.
	ArtistName  string `gorm:"->;-:migration" json:"artist_name,omitempty"`
	ArtistPhoto string `gorm:"->;-:migration" json:"artist_photo,omitempty"`
}

func (a *Artwork) AfterFind(tx *gorm.DB) error {
	a.ImageURL = NormalizeImagePath(a.ImageURL)
	a.ArtistPhoto = NormalizeImagePath(a.ArtistPhoto)
	return nil
}
