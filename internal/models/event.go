package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Event struct {
	ID          uint           `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	Type        string         `json:"type"`
	Name        string         `gorm:"not null" json:"name"`
	Org         string         `json:"org"`
	About       string         `json:"about"`
	Date        *time.Time     `json:"date"`
	Location    string         `json:"location"`
	ImageURL    string         `json:"image_url"`
	LogoURL     string         `json:"logo_url"`
	ContactInfo string         `json:"contact_info"`
	Website     string         `json:"website"`
	Status      EventStatus    `gorm:"type:varchar(20);default:'upcoming'" json:"status"`
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`
	Artworks    datatypes.JSON `json:"artworks"`
	Exhibitors  datatypes.JSON `json:"exhibitors"`
	Timestamps
}

func (e *Event) AfterFind(tx *gorm.DB) error {
	e.ImageURL = NormalizeImagePath(e.ImageURL)
	e.LogoURL = NormalizeImagePath(e.LogoURL)
	return nil
}
