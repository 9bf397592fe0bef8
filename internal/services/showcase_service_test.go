package services_test

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"

	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services"
	"banarts/internal/services/dto"
	"banarts/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newShowcaseService(t *testing.T) (*gorm.DB, services.ShowcaseService, *fakeUploads) {
	t.Helper()
	uploads := &fakeUploads{}
	svc := services.NewShowcaseService(
		repositories.NewThumbnailRepository(),
		repositories.NewBrowseGalleryRepository(),
		repositories.NewBrowseMuseumRepository(),
		repositories.NewCuratedHighlightRepository(),
		repositories.NewFeaturedArtworkRepository(),
		uploads,
	)
	return testutil.NewTestDB(t), svc, uploads
}

func fileHeaders(n int) []*multipart.FileHeader {
	files := make([]*multipart.FileHeader, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, fileHeader(fmt.Sprintf("thumb-%d.png", i)))
	}
	return files
}

func TestShowcaseService_CreateThumbnailsPairsItemsWithFiles(t *testing.T) {
	db, svc, uploads := newShowcaseService(t)

	thumbs, err := svc.CreateThumbnails(db, &dto.ThumbnailBatchRequest{
		Items: dto.RawJSON(`[{"title":" First ","description":"a"},{"title":"Second"}]`),
	}, fileHeaders(2))
	require.NoError(t, err)
	require.Len(t, thumbs, 2)
	assert.Equal(t, "First", thumbs[0].Title)
	assert.Equal(t, "/img/thumbnails/thumb-0.png", thumbs[0].ImageURL)
	assert.Equal(t, "Second", thumbs[1].Title)
	assert.Equal(t, "/img/thumbnails/thumb-1.png", thumbs[1].ImageURL)
	assert.Len(t, uploads.saved, 2)

	listed, err := svc.ListThumbnails(db)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestShowcaseService_CreateThumbnailsValidation(t *testing.T) {
	db, svc, uploads := newShowcaseService(t)

	cases := []struct {
		name    string
		items   string
		files   int
		message string
	}{
		{"no files", `[]`, 0, "No images uploaded"},
		{"too many", `[]`, services.MaxThumbnailUploads + 1, "Too many images, at most 10 per upload"},
		{"bad json", `{"title":`, 1, "Invalid items data"},
		{"missing items", ``, 1, "Number of items does not match number of images"},
		{"mismatch", `[{"title":"a"},{"title":"b"}]`, 1, "Number of items does not match number of images"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateThumbnails(db, &dto.ThumbnailBatchRequest{Items: dto.RawJSON(tc.items)}, fileHeaders(tc.files))
			appErr := requireAppError(t, err, http.StatusBadRequest)
			assert.Equal(t, tc.message, appErr.Message)
		})
	}

	assert.Empty(t, uploads.saved)
	var count int64
	require.NoError(t, db.Model(&models.GalleryThumbnail{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestShowcaseService_FailedBatchDiscardsStoredFiles(t *testing.T) {
	db, svc, uploads := newShowcaseService(t)
	require.NoError(t, db.Migrator().DropTable(&models.GalleryThumbnail{}))

	_, err := svc.CreateThumbnails(db, &dto.ThumbnailBatchRequest{
		Items: dto.RawJSON(`[{"title":"a"},{"title":"b"}]`),
	}, fileHeaders(2))
	require.Error(t, err)
	assert.ElementsMatch(t, uploads.saved, uploads.removed)
}

func TestShowcaseService_HighlightUpdateReplacesImage(t *testing.T) {
	db, svc, uploads := newShowcaseService(t)

	highlight, err := svc.CreateHighlight(db, &dto.HighlightRequest{Title: "Rain"}, fileHeader("rain.png"))
	require.NoError(t, err)
	assert.Equal(t, "/img/highlights/rain.png", highlight.ImageURL)

	updated, err := svc.UpdateHighlight(db, highlight.ID, &dto.HighlightRequest{Title: "Storm"}, fileHeader("storm.png"))
	require.NoError(t, err)
	assert.Equal(t, "Storm", updated.Title)
	assert.Equal(t, "/img/highlights/storm.png", updated.ImageURL)
	assert.Contains(t, uploads.removed, "/img/highlights/rain.png")

	_, err = svc.UpdateHighlight(db, 999, &dto.HighlightRequest{Title: "x"}, nil)
	requireAppError(t, err, http.StatusNotFound)
}

func TestShowcaseService_BrowseCardsAndTiles(t *testing.T) {
	db, svc, _ := newShowcaseService(t)

	gallery, err := svc.CreateBrowseGallery(db, &dto.BrowseEntryRequest{Name: "North", Location: "Dhaka"}, fileHeader("n.png"))
	require.NoError(t, err)
	assert.Equal(t, "/img/gallery_cards/n.png", gallery.ImageURL)

	museum, err := svc.CreateBrowseMuseum(db, &dto.BrowseEntryRequest{Name: "River", Location: "Khulna", ImageURL: `uploads\river.png`}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/river.png", museum.ImageURL)

	tile, err := svc.CreateFeaturedArtwork(db, &dto.FeaturedArtworkRequest{Name: "Boatmen"}, nil)
	require.NoError(t, err)
	assert.Empty(t, tile.ImageURL)

	require.NoError(t, svc.DeleteBrowseGallery(db, gallery.ID))
	requireAppError(t, svc.DeleteBrowseGallery(db, gallery.ID), http.StatusNotFound)

	museums, err := svc.ListBrowseMuseums(db)
	require.NoError(t, err)
	assert.Len(t, museums, 1)

	tiles, err := svc.ListFeaturedArtworks(db)
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	require.NoError(t, svc.DeleteFeaturedArtwork(db, tiles[0].ID))
}
