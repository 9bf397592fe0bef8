package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArtistCategory struct {
	ID          uint   `gorm:"column:artist_category_id;primaryKey;autoIncrement" json:"artist_category_id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Timestamps
}

type Artist struct {
	ID          uint           `gorm:"column:artist_id;primaryKey;autoIncrement" json:"artist_id"`
	UserID      *uint          `gorm:"index" json:"user_id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `json:"email"`
	Contact     string         `json:"contact"`
	Location    string         `json:"location"`
	About       string         `json:"about"`
	BornYear    *int           `json:"born_year"`
	Specialties string         `json:"specialties"`
	Exhibitions string         `json:"exhibitions"`
	Category    string         `json:"category"`
	PhotoURL    string         `json:"photo_url"`
	SocialLinks datatypes.JSON `json:"social_links"`
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`
	Timestamps
}

func (a *Artist) AfterFind(tx *gorm.DB) error {
	a.PhotoURL = NormalizeImagePath(a.PhotoURL)
	return nil
}
