package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"sync"
	"testing"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services"
	"banarts/internal/services/dto"
	"banarts/internal/testutil"
	"banarts/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUploads stores nothing; it hands out predictable paths.
type fakeUploads struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	err     error
}

func (u *fakeUploads) SaveImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	url := "/img/" + folder + "/" + file.Filename
	u.saved = append(u.saved, url)
	return url, nil
}

func (u *fakeUploads) Remove(ctx context.Context, pathOrURL string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.removed = append(u.removed, pathOrURL)
}

type contentFixture struct {
	db            *gorm.DB
	notifications services.NotificationService
	uploads       *fakeUploads
	artists       services.ArtistService
	artworks      services.ArtworkService
	galleries     services.GalleryService
	museums       services.MuseumService
	events        services.EventService
	media         services.MediaService
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()
	clock := testutil.NewClock(start)
	notifications := services.NewNotificationService(
		repositories.NewNotificationRepository(), &recordingBroadcaster{},
		services.NotificationOptions{Clock: clock.Now},
	)
	uploads := &fakeUploads{}
	return &contentFixture{
		db:            testutil.NewTestDB(t),
		notifications: notifications,
		uploads:       uploads,
		artists: services.NewArtistService(repositories.NewArtistRepository(),
			repositories.NewArtistCategoryRepository(), notifications, uploads),
		artworks: services.NewArtworkService(repositories.NewArtworkRepository(),
			repositories.NewArtworkCategoryRepository(), notifications, uploads),
		galleries: services.NewGalleryService(repositories.NewGalleryRepository(),
			repositories.NewGalleryFeaturedArtworkRepository(), notifications, uploads),
		museums: services.NewMuseumService(repositories.NewMuseumRepository(),
			repositories.NewArtifactRepository(), notifications, uploads),
		events: services.NewEventService(repositories.NewEventRepository(), notifications, uploads),
		media: services.NewMediaService(repositories.NewVideoRepository(),
			repositories.NewCollectionRepository(), notifications, uploads),
	}
}

// notificationsAfterWrites waits for background notifications and lists them.
func (f *contentFixture) notificationsAfterWrites(t *testing.T) []models.Notification {
	t.Helper()
	f.notifications.Wait()
	list, err := f.notifications.ListNotifications(f.db)
	require.NoError(t, err)
	return list
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: 10}
}

func requireAppError(t *testing.T, err error, status int) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, status, appErr.HTTPCode)
	return appErr
}

func TestArtistService_CreateNotifies(t *testing.T) {
	f := newContentFixture(t)

	artist, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{
		Name:        "Jane Doe",
		Category:    "Painter",
		About:       `<p>Hello</p><script>alert(1)</script>`,
		SocialLinks: dto.RawJSON(`{"ig":"@jane"}`),
	}, fileHeader("jane.png"))
	require.NoError(t, err)

	assert.Equal(t, "/img/artists/jane.png", artist.PhotoURL)
	assert.Equal(t, "<p>Hello</p>", artist.About)
	assert.JSONEq(t, `{"ig":"@jane"}`, string(artist.SocialLinks))

	list := f.notificationsAfterWrites(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationArtist, list[0].Type)
	assert.Equal(t, "New artist added: Jane Doe", list[0].Message)
	require.NotNil(t, list[0].RelatedItemID)
	assert.Equal(t, artist.ID, *list[0].RelatedItemID)
	assert.Equal(t, models.ItemArtist, *list[0].RelatedItemType)
}

func TestArtistService_RejectsBadSocialLinks(t *testing.T) {
	f := newContentFixture(t)
	_, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{
		Name: "X", Category: "Painter", SocialLinks: dto.RawJSON("{not json"),
	}, nil)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestArtistService_UpdateReplacesPhoto(t *testing.T) {
	f := newContentFixture(t)
	artist, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{Name: "Ana", Category: "Sculptor"}, fileHeader("old.png"))
	require.NoError(t, err)
	f.notifications.Wait()

	updated, err := f.artists.UpdateArtist(f.db, artist.ID, &dto.ArtistRequest{Name: "Ana Cruz", Category: "Sculptor"}, fileHeader("new.png"))
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", updated.Name)
	assert.Equal(t, "/img/artists/new.png", updated.PhotoURL)
	assert.Equal(t, []string{"/img/artists/old.png"}, f.uploads.removed)

	list := f.notificationsAfterWrites(t)
	require.Len(t, list, 2)
	assert.Equal(t, "Artist profile updated: Ana Cruz", list[0].Message)
	assert.Equal(t, models.NotificationArtistUpdate, list[0].Type)
}

func TestArtistService_UpdateKeepsPhotoWithoutFile(t *testing.T) {
	f := newContentFixture(t)
	artist, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{Name: "Ana", Category: "Sculptor", PhotoURL: "img\\ana.jpg"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/img/ana.jpg", artist.PhotoURL)

	updated, err := f.artists.UpdateArtist(f.db, artist.ID, &dto.ArtistRequest{Name: "Ana", Category: "Painter"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/img/ana.jpg", updated.PhotoURL)
	assert.Empty(t, f.uploads.removed)
}

func TestArtistService_NotFound(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.artists.GetArtist(f.db, 99)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Artist not found", appErr.Message)

	err = f.artists.DeleteArtist(f.db, 99)
	requireAppError(t, err, http.StatusNotFound)

	_, err = f.artists.UpdateArtist(f.db, 99, &dto.ArtistRequest{Name: "n", Category: "c"}, nil)
	requireAppError(t, err, http.StatusNotFound)
}

func TestArtistService_FailedUploadStopsCreate(t *testing.T) {
	f := newContentFixture(t)
	f.uploads.err = apperrors.ErrInvalidFileType

	_, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{Name: "X", Category: "Y"}, fileHeader("x.exe"))
	requireAppError(t, err, http.StatusUnsupportedMediaType)

	artists, err := f.artists.ListArtists(f.db, nil)
	require.NoError(t, err)
	assert.Empty(t, artists)
	assert.Empty(t, f.notificationsAfterWrites(t))
}

func TestArtistService_FeaturedFilter(t *testing.T) {
	f := newContentFixture(t)
	_, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{Name: "A", Category: "P", IsFeatured: true}, nil)
	require.NoError(t, err)
	_, err = f.artists.CreateArtist(f.db, &dto.ArtistRequest{Name: "B", Category: "P"}, nil)
	require.NoError(t, err)

	featured, err := f.artists.ListArtists(f.db, repositories.Bool(true))
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "A", featured[0].Name)

	other, err := f.artists.ListArtists(f.db, repositories.Bool(false))
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "B", other[0].Name)
}

func TestArtistService_CategoriesDoNotNotify(t *testing.T) {
	f := newContentFixture(t)

	category, err := f.artists.CreateCategory(f.db, &dto.ArtistCategoryRequest{Name: "Weaver"})
	require.NoError(t, err)
	_, err = f.artists.UpdateCategory(f.db, category.ID, &dto.ArtistCategoryRequest{Name: "Weavers", Description: "Textile"})
	require.NoError(t, err)

	got, err := f.artists.GetCategory(f.db, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weavers", got.Name)
	assert.Empty(t, f.notificationsAfterWrites(t))

	require.NoError(t, f.artists.DeleteCategory(f.db, category.ID))
	_, err = f.artists.GetCategory(f.db, category.ID)
	requireAppError(t, err, http.StatusNotFound)
}

func TestArtworkService_ListJoinsArtist(t *testing.T) {
	f := newContentFixture(t)
	artist, err := f.artists.CreateArtist(f.db, &dto.ArtistRequest{Name: "Juan", Category: "Painter"}, nil)
	require.NoError(t, err)

	artwork, err := f.artworks.CreateArtwork(f.db, &dto.ArtworkRequest{
		ArtistID: &artist.ID, Title: "Sunrise", Categories: "Landscape, Oil", IsFeatured: true,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Juan", artwork.ArtistName)
	assert.True(t, artwork.IsAvailable)

	_, err = f.artworks.CreateArtwork(f.db, &dto.ArtworkRequest{Title: "Orphan", Categories: "Portrait"}, nil)
	require.NoError(t, err)

	byCategory, err := f.artworks.ListArtworks(f.db, &dto.ArtworkQuery{Category: "landscape"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Sunrise", byCategory[0].Title)

	byArtist, err := f.artworks.ListArtworks(f.db, &dto.ArtworkQuery{ArtistID: &artist.ID})
	require.NoError(t, err)
	assert.Len(t, byArtist, 1)

	limited, err := f.artworks.ListArtworks(f.db, &dto.ArtworkQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	featured, err := f.artworks.ListFeaturedArtworks(f.db)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Juan", featured[0].ArtistName)

	list := f.notificationsAfterWrites(t)
	var messages []string
	for _, n := range list {
		messages = append(messages, n.Message)
	}
	assert.Contains(t, messages, "New artwork added: Sunrise")
	assert.Contains(t, messages, "New artwork added: Orphan")
}

func TestArtworkService_UnavailableIsKept(t *testing.T) {
	f := newContentFixture(t)
	unavailable := false
	artwork, err := f.artworks.CreateArtwork(f.db, &dto.ArtworkRequest{Title: "Sold", IsAvailable: &unavailable}, nil)
	require.NoError(t, err)
	assert.False(t, artwork.IsAvailable)

	updated, err := f.artworks.UpdateArtwork(f.db, artwork.ID, &dto.ArtworkRequest{Title: "Sold"}, nil)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable, "omitted is_available keeps the stored value")
}

func TestGalleryService_FeaturedArtworkNotifiesGallery(t *testing.T) {
	f := newContentFixture(t)
	gallery, err := f.galleries.CreateGallery(f.db, &dto.GalleryRequest{Name: "Casa"}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultGalleryType, gallery.Type)

	featured, err := f.galleries.CreateFeaturedArtwork(f.db, &dto.GalleryFeaturedArtworkRequest{
		GalleryID: gallery.ID, Title: "Harbor",
	}, nil)
	require.NoError(t, err)

	list := f.notificationsAfterWrites(t)
	require.Len(t, list, 2)
	var n models.Notification
	for _, row := range list {
		if row.Message == "Featured artwork updated: Harbor" {
			n = row
		}
	}
	assert.Equal(t, models.NotificationGalleryUpdate, n.Type)
	require.NotNil(t, n.RelatedItemID)
	assert.Equal(t, gallery.ID, *n.RelatedItemID)
	assert.Equal(t, models.ItemGallery, *n.RelatedItemType)

	artworks, err := f.galleries.ListFeaturedArtworks(f.db, &gallery.ID)
	require.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, featured.ID, artworks[0].ID)
}

func TestGalleryService_FeaturedArtworkNeedsGallery(t *testing.T) {
	f := newContentFixture(t)
	_, err := f.galleries.CreateFeaturedArtwork(f.db, &dto.GalleryFeaturedArtworkRequest{GalleryID: 5, Title: "X"}, nil)
	requireAppError(t, err, http.StatusNotFound)
}

func TestGalleryService_SetAndResetFeatured(t *testing.T) {
	f := newContentFixture(t)
	a, err := f.galleries.CreateGallery(f.db, &dto.GalleryRequest{Name: "A"}, nil)
	require.NoError(t, err)
	_, err = f.galleries.CreateGallery(f.db, &dto.GalleryRequest{Name: "B", IsFeatured: true}, nil)
	require.NoError(t, err)

	require.NoError(t, f.galleries.SetFeatured(f.db, a.ID))
	featured, err := f.galleries.ListGalleries(f.db, repositories.Bool(true), 0)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	reset, err := f.galleries.ResetFeatured(f.db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reset)

	err = f.galleries.SetFeatured(f.db, 999)
	requireAppError(t, err, http.StatusNotFound)
}

func TestMuseumService_ArtifactNotifiesMuseum(t *testing.T) {
	f := newContentFixture(t)
	museum, err := f.museums.CreateMuseum(f.db, &dto.MuseumRequest{Name: "National"}, nil)
	require.NoError(t, err)

	_, err = f.museums.CreateArtifact(f.db, &dto.ArtifactRequest{MuseumID: &museum.ID, Name: "Jar"}, nil)
	require.NoError(t, err)
	loose, err := f.museums.CreateArtifact(f.db, &dto.ArtifactRequest{Name: "Coin"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Active", loose.Status)

	list := f.notificationsAfterWrites(t)
	require.Len(t, list, 3)
	byMessage := map[string]models.Notification{}
	for _, n := range list {
		byMessage[n.Message] = n
	}

	jar := byMessage["Featured artifact updated: Jar"]
	assert.Equal(t, models.NotificationMuseumUpdate, jar.Type)
	require.NotNil(t, jar.RelatedItemID)
	assert.Equal(t, museum.ID, *jar.RelatedItemID)

	coin := byMessage["Featured artifact updated: Coin"]
	assert.Nil(t, coin.RelatedItemID)

	artifacts, err := f.museums.ListArtifacts(f.db, &museum.ID)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)

	_, err = f.museums.CreateArtifact(f.db, &dto.ArtifactRequest{MuseumID: ptr(uint(404)), Name: "Ghost"}, nil)
	requireAppError(t, err, http.StatusNotFound)
}

func TestEventService_CreateFromJSON(t *testing.T) {
	f := newContentFixture(t)

	event, err := f.events.CreateEvent(f.db, &dto.EventRequest{
		Name:       "Fiesta",
		Date:       "2024-08-01T18:30",
		Artworks:   dto.RawJSON(`[{"title":"Boat","artist_name":"Lito","image_url":"/img/boat.jpg"}]`),
		Exhibitors: []string{"Lito", " ", "Ana"},
	}, services.EventFiles{})
	require.NoError(t, err)

	assert.Equal(t, models.EventStatusUpcoming, event.Status)
	assert.Equal(t, "event", event.Type)
	require.NotNil(t, event.Date)
	assert.Equal(t, 18, event.Date.Hour())

	var artworks []dto.EventArtwork
	require.NoError(t, json.Unmarshal(event.Artworks, &artworks))
	require.Len(t, artworks, 1)
	assert.Equal(t, "Boat", artworks[0].Title)
	assert.JSONEq(t, `["Lito","Ana"]`, string(event.Exhibitors))

	list := f.notificationsAfterWrites(t)
	require.Len(t, list, 1)
	assert.Equal(t, "New event added: Fiesta", list[0].Message)
}

func TestEventService_CreateFromFiles(t *testing.T) {
	f := newContentFixture(t)

	event, err := f.events.CreateEvent(f.db, &dto.EventRequest{
		Name:         "Expo",
		ArtworkNames: []string{"First"},
	}, services.EventFiles{Artworks: []*multipart.FileHeader{fileHeader("a.png"), fileHeader("b.png")}})
	require.NoError(t, err)

	var artworks []dto.EventArtwork
	require.NoError(t, json.Unmarshal(event.Artworks, &artworks))
	require.Len(t, artworks, 2)
	assert.Equal(t, "First", artworks[0].Title)
	assert.Equal(t, "Unknown Artist", artworks[0].ArtistName)
	assert.Equal(t, "Artwork 2", artworks[1].Title)
	assert.Equal(t, "/img/events/b.png", artworks[1].ImageURL)
}

func TestEventService_UpdateMixesSources(t *testing.T) {
	f := newContentFixture(t)
	event, err := f.events.CreateEvent(f.db, &dto.EventRequest{Name: "Expo"}, services.EventFiles{})
	require.NoError(t, err)
	f.notifications.Wait()

	updated, err := f.events.UpdateEvent(f.db, event.ID, &dto.EventRequest{
		Name:                "Expo 2",
		Status:              "ongoing",
		ArtworkSource:       []string{"existing", "new"},
		ArtworkNames:        []string{"Kept", "Fresh"},
		ArtworkArtists:      []string{"Ana", "Ben"},
		ExistingArtworkURLs: []string{"/img/events/kept.png"},
	}, services.EventFiles{Artworks: []*multipart.FileHeader{fileHeader("fresh.png")}})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusOngoing, updated.Status)

	var artworks []dto.EventArtwork
	require.NoError(t, json.Unmarshal(updated.Artworks, &artworks))
	assert.Equal(t, []dto.EventArtwork{
		{Title: "Kept", ArtistName: "Ana", ImageURL: "/img/events/kept.png"},
		{Title: "Fresh", ArtistName: "Ben", ImageURL: "/img/events/fresh.png"},
	}, artworks)

	list := f.notificationsAfterWrites(t)
	assert.Equal(t, "Event updated: Expo 2", list[0].Message)
}

func TestEventService_BadInput(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.events.CreateEvent(f.db, &dto.EventRequest{Name: "X", Date: "next tuesday"}, services.EventFiles{})
	requireAppError(t, err, http.StatusBadRequest)

	_, err = f.events.CreateEvent(f.db, &dto.EventRequest{Name: "X", Artworks: dto.RawJSON(`{"a":1}`)}, services.EventFiles{})
	requireAppError(t, err, http.StatusBadRequest)
}

func TestEventService_Featured(t *testing.T) {
	f := newContentFixture(t)
	event, err := f.events.CreateEvent(f.db, &dto.EventRequest{Name: "Gala"}, services.EventFiles{})
	require.NoError(t, err)

	require.NoError(t, f.events.SetFeatured(f.db, event.ID, true))
	featured, err := f.events.ListEvents(f.db, repositories.Bool(true))
	require.NoError(t, err)
	assert.Len(t, featured, 1)

	require.NoError(t, f.events.SetFeatured(f.db, event.ID, false))
	featured, err = f.events.ListEvents(f.db, repositories.Bool(true))
	require.NoError(t, err)
	assert.Empty(t, featured)
}

func TestMediaService_VideoAndCollection(t *testing.T) {
	f := newContentFixture(t)

	video, err := f.media.CreateVideo(f.db, &dto.VideoRequest{Title: "Intro", URL: "https://example.com/v.mp4"}, nil)
	require.NoError(t, err)
	_, err = f.media.UpdateVideo(f.db, video.ID, &dto.VideoRequest{Title: "Intro cut"}, nil)
	require.NoError(t, err)

	collection, err := f.media.CreateCollection(f.db, &dto.CollectionRequest{Name: "Shells", CollectorName: "Mara"},
		services.CollectionImages{CollectorImage: fileHeader("mara.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "/img/collections/mara.jpg", collection.CollectorImage)

	updated, err := f.media.UpdateCollection(f.db, collection.ID, &dto.CollectionRequest{Name: "Shells II"},
		services.CollectionImages{Painting: fileHeader("p.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "/img/collections/mara.jpg", updated.CollectorImage)
	assert.Equal(t, "/img/collections/p.jpg", updated.PaintingURL)

	list := f.notificationsAfterWrites(t)
	var types []string
	for _, n := range list {
		types = append(types, n.Type)
	}
	assert.ElementsMatch(t, []string{
		models.NotificationVideo, models.NotificationVideoUpdate,
		models.NotificationCollection, models.NotificationCollectionUpdate,
	}, types)

	require.NoError(t, f.media.DeleteCollection(f.db, collection.ID))
	_, err = f.media.GetCollection(f.db, collection.ID)
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Collection not found", appErr.Message)
}

func ptr[T any](v T) *T {
	return &v
}
