package dto

import (
	"bytes"
	"encoding/json"
)

// RawJSON binds either from a multipart field holding JSON text or from any
// JSON value in a JSON body.
type RawJSON string

func (r *RawJSON) UnmarshalJSON(b []byte) error {
	*r = RawJSON(b)
	return nil
}

// Bytes returns nil for empty or null input.
func (r RawJSON) Bytes() []byte {
	b := bytes.TrimSpace([]byte(r))
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	return b
}

func (r RawJSON) Valid() bool {
	b := r.Bytes()
	return b == nil || json.Valid(b)
}

// ==============================
// ARTISTS
// ==============================

type ArtistRequest struct {
	UserID      *uint   `form:"user_id" json:"user_id"`
	Name        string  `form:"name" json:"name" validate:"required,max=255"`
	Email       string  `form:"email" json:"email" validate:"omitempty,email"`
	Contact     string  `form:"contact" json:"contact"`
	Location    string  `form:"location" json:"location"`
	About       string  `form:"about" json:"about"`
	BornYear    *int    `form:"born_year" json:"born_year" validate:"omitempty,min=1000,max=9999"`
	Specialties string  `form:"specialties" json:"specialties"`
	Exhibitions string  `form:"exhibitions" json:"exhibitions"`
	Category    string  `form:"category" json:"category" validate:"required"`
	PhotoURL    string  `form:"photo_url" json:"photo_url"`
	SocialLinks RawJSON `form:"social_links" json:"social_links"`
	IsFeatured  bool    `form:"is_featured" json:"is_featured"`
}

type ArtistCategoryRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=100"`
	Description string `form:"description" json:"description"`
}

// ==============================
// ARTWORKS
// ==============================

type ArtworkRequest struct {
	ArtistID    *uint    `form:"artist_id" json:"artist_id"`
	Categories  string   `form:"categories" json:"categories"`
	Title       string   `form:"title" json:"title" validate:"required,max=255"`
	Description string   `form:"description" json:"description"`
	Location    string   `form:"location" json:"location"`
	Medium      string   `form:"medium" json:"medium"`
	Year        *int     `form:"year" json:"year"`
	Size        string   `form:"size" json:"size"`
	Signature   string   `form:"signature" json:"signature"`
	Certificate string   `form:"certificate" json:"certificate"`
	SocialMedia string   `form:"social_media" json:"social_media"`
	Phone       string   `form:"phone" json:"phone"`
	Email       string   `form:"email" json:"email" validate:"omitempty,email"`
	ImageURL    string   `form:"image_url" json:"image_url"`
	Price       *float64 `form:"price" json:"price" validate:"omitempty,min=0"`
	IsAvailable *bool    `form:"is_available" json:"is_available"`
	IsFeatured  bool     `form:"is_featured" json:"is_featured"`
	Status      string   `form:"status" json:"status"`
	Tags        string   `form:"tags" json:"tags"`
}

// ArtworkQuery is the query string of GET /artworks.
type ArtworkQuery struct {
	Limit    int    `form:"_limit" validate:"omitempty,min=0"`
	ArtistID *uint  `form:"artist_id"`
	Category string `form:"category"`
}

// ==============================
// GALLERIES
// ==============================

type GalleryRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	About       string `form:"about" json:"about"`
	Location    string `form:"location" json:"location"`
	Type        string `form:"type" json:"type"`
	Collections string `form:"collections" json:"collections"`
	Email       string `form:"email" json:"email" validate:"omitempty,email"`
	Phone       string `form:"phone" json:"phone"`
	ImageURL    string `form:"image_url" json:"image_url"`
	ContactInfo string `form:"contact_info" json:"contact_info"`
	Website     string `form:"website" json:"website"`
	IsFeatured  bool   `form:"is_featured" json:"is_featured"`
}

type GalleryFeaturedArtworkRequest struct {
	GalleryID    uint   `form:"gallery_id" json:"gallery_id" validate:"required,gt=0"`
	Title        string `form:"title" json:"title" validate:"required,max=255"`
	Description  string `form:"description" json:"description"`
	ImageURL     string `form:"image_url" json:"image_url"`
	DisplayOrder int    `form:"display_order" json:"display_order"`
}

// ==============================
// MUSEUMS
// ==============================

type MuseumRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	About       string `form:"about" json:"about"`
	Location    string `form:"location" json:"location"`
	ImageURL    string `form:"image_url" json:"image_url"`
	ContactInfo string `form:"contact_info" json:"contact_info"`
	Website     string `form:"website" json:"website"`
	IsFeatured  bool   `form:"is_featured" json:"is_featured"`
}

type ArtifactRequest struct {
	MuseumID   *uint  `form:"museum_id" json:"museum_id"`
	Name       string `form:"name" json:"name" validate:"required,max=255"`
	Artist     string `form:"artist" json:"artist"`
	Type       string `form:"type" json:"type"`
	Medium     string `form:"medium" json:"medium"`
	Dimensions string `form:"dimensions" json:"dimensions"`
	Weight     string `form:"weight" json:"weight"`
	Year       *int   `form:"year" json:"year"`
	Details    string `form:"details" json:"details"`
	Location   string `form:"location" json:"location"`
	Condition  string `form:"condition" json:"condition"`
	Status     string `form:"status" json:"status"`
	ImageURL   string `form:"image_url" json:"image_url"`
}

// ==============================
// EVENTS
// ==============================

type EventRequest struct {
	Type        string  `form:"type" json:"type"`
	Name        string  `form:"name" json:"name" validate:"required,max=255"`
	Org         string  `form:"org" json:"org"`
	About       string  `form:"about" json:"about"`
	Date        string  `form:"date" json:"date"`
	Location    string  `form:"location" json:"location"`
	ImageURL    string  `form:"image_url" json:"image_url"`
	LogoURL     string  `form:"logo_url" json:"logo_url"`
	ContactInfo string  `form:"contact_info" json:"contact_info"`
	Website     string  `form:"website" json:"website"`
	Status      string  `form:"status" json:"status" validate:"is-event-status"`
	IsFeatured  bool    `form:"is_featured" json:"is_featured"`
	Artworks    RawJSON `form:"artworks" json:"artworks"`

	// multipart only: parallel lists describing artwork_files. ArtworkSource
	// entries are "new" (next uploaded file) or "existing" (next existing url).
	ArtworkSource       []string `form:"artwork_source" json:"-"`
	ArtworkNames        []string `form:"artwork_names" json:"-"`
	ArtworkArtists      []string `form:"artwork_artists" json:"-"`
	ExistingArtworkURLs []string `form:"existing_artwork_urls" json:"-"`

	Exhibitors []string `form:"exhibitors" json:"exhibitors"`
}

// EventArtwork is one element of Event.Artworks.
type EventArtwork struct {
	Title      string `json:"title"`
	ArtistName string `json:"artist_name"`
	ImageURL   string `json:"image_url"`
}

// ==============================
// VIDEOS & COLLECTIONS
// ==============================

type VideoRequest struct {
	Title        string `form:"title" json:"title" validate:"required,max=255"`
	Details      string `form:"details" json:"details"`
	URL          string `form:"url" json:"url" validate:"omitempty,url"`
	ThumbnailURL string `form:"thumbnail_url" json:"thumbnail_url"`
	Duration     string `form:"duration" json:"duration"`
	Category     string `form:"category" json:"category"`
	Tags         string `form:"tags" json:"tags"`
}

type CollectionRequest struct {
	Name           string `form:"name" json:"name" validate:"required,max=255"`
	About          string `form:"about" json:"about"`
	ImageURL       string `form:"image_url" json:"image_url"`
	PaintingURL    string `form:"painting_url" json:"painting_url"`
	CollectorName  string `form:"collector_name" json:"collector_name"`
	CollectorImage string `form:"collector_image_url" json:"collector_image"`
}

// ==============================
// SHOWCASE
// ==============================

// ThumbnailBatchRequest carries the "items" field of a multi-image upload:
// a JSON array with one entry per uploaded file, in file order.
type ThumbnailBatchRequest struct {
	Items RawJSON `form:"items" json:"items"`
}

type ThumbnailItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ParseItems decodes Items; a missing field is an empty list.
func (r *ThumbnailBatchRequest) ParseItems() ([]ThumbnailItem, error) {
	items := make([]ThumbnailItem, 0)
	raw := r.Items.Bytes()
	if raw == nil {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type ThumbnailRequest struct {
	Title       string `form:"title" json:"title" validate:"required,max=255"`
	Description string `form:"description" json:"description" validate:"required"`
}

// BrowseEntryRequest creates a browse-galleries or browse-museums card.
type BrowseEntryRequest struct {
	Name     string `form:"name" json:"name" validate:"required,max=255"`
	Location string `form:"location" json:"location" validate:"required,max=255"`
	ImageURL string `form:"image_url" json:"image_url"`
}

type HighlightRequest struct {
	Title       string `form:"title" json:"title" validate:"required,max=255"`
	Description string `form:"description" json:"description"`
	ImageURL    string `form:"image_url" json:"image_url"`
}

type FeaturedArtworkRequest struct {
	Name     string `form:"name" json:"name" validate:"required,max=255"`
	ImageURL string `form:"image_url" json:"image_url"`
}
