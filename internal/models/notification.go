package models

import "time"

// Notification is a global (not per-user) record of a content change.
type Notification struct {
	ID              uint       `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
	Type            string     `gorm:"not null" json:"type"`
	Message         string     `gorm:"not null" json:"message"`
	RelatedItemID   *uint      `json:"related_item_id"`
	RelatedItemType *string    `json:"related_item_type"`
	IsRead          bool       `gorm:"not null;default:false;index" json:"is_read"`
	ExpiresAt       *time.Time `gorm:"index" json:"expires_at"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Notification types emitted by content mutations.
const (
	NotificationArtist           = "artist"
	NotificationArtistUpdate     = "artist_update"
	NotificationArtwork          = "artwork"
	NotificationArtworkUpdate    = "artwork_update"
	NotificationGallery          = "gallery"
	NotificationGalleryUpdate    = "gallery_update"
	NotificationMuseum           = "museum"
	NotificationMuseumUpdate     = "museum_update"
	NotificationEvent            = "event"
	NotificationEventUpdate      = "event_update"
	NotificationVideo            = "video"
	NotificationVideoUpdate      = "video_update"
	NotificationCollection       = "collection"
	NotificationCollectionUpdate = "collection_update"
)

// Related item kinds.
const (
	ItemArtist     = "artist"
	ItemArtwork    = "artwork"
	ItemGallery    = "gallery"
	ItemMuseum     = "museum"
	ItemEvent      = "event"
	ItemVideo      = "video"
	ItemCollection = "collection"
)

// IsVisibleAt reports whether the row is still shown to clients at now.
func (n *Notification) IsVisibleAt(now time.Time) bool {
	return n.ExpiresAt == nil || n.ExpiresAt.After(now)
}
