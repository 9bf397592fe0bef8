package models

import "gorm.io/gorm"

type Museum struct {
	ID          uint   `gorm:"column:museum_id;primaryKey;autoIncrement" json:"museum_id"`
	Name        string `gorm:"not null" json:"name"`
	About       string `json:"about"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
	ContactInfo string `json:"contact_info"`
	Website     string `json:"website"`
	IsFeatured  bool   `gorm:"default:false;index" json:"is_featured"`
	Timestamps
}

func (m *Museum) AfterFind(tx *gorm.DB) error {
	m.ImageURL = NormalizeImagePath(m.ImageURL)
	return nil
}

type MuseumArtifact struct {
	ID         uint   `gorm:"column:artifact_id;primaryKey;autoIncrement" json:"artifact_id"`
	MuseumID   *uint  `gorm:"index" json:"museum_id"`
	Name       string `gorm:"not null" json:"name"`
	Artist     string `json:"artist"`
	Type       string `json:"type"`
	Medium     string `json:"medium"`
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
	Year       *int   `json:"year"`
	Details    string `json:"details"`
	Location   string `json:"location"`
	Condition  string `json:"condition"`
	Status     string `gorm:"default:'Active'" json:"status"`
	ImageURL   string `json:"image_url"`
	Timestamps
}

func (a *MuseumArtifact) AfterFind(tx *gorm.DB) error {
	a.ImageURL = NormalizeImagePath(a.ImageURL)
	return nil
}
