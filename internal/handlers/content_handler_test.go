package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"banarts/internal/models"
	"banarts/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestArtworks_MultipartCreateStoresImage(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)

	res, body := ts.SendMultipart(t, http.MethodPost, "/artworks", token,
		map[string][]string{
			"title":        {"Sunset"},
			"medium":       {"Oil"},
			"price":        {"120.5"},
			"year":         {""},
			"is_available": {"true"},
		},
		testutil.Upload{Field: "image", Filename: "sunset.png", Content: pngImage(t)},
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var artwork models.Artwork
	require.NoError(t, json.Unmarshal([]byte(body), &artwork))
	assert.Equal(t, "Sunset", artwork.Title)
	assert.Nil(t, artwork.Year)
	require.True(t, strings.HasPrefix(artwork.ImageURL, "/img/"), artwork.ImageURL)

	res, _ = ts.SendRequest(t, http.MethodGet, artwork.ImageURL, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	ts.WaitForNotifications()
	notifications := listNotifications(t, ts)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New artwork added: Sunset", notifications[0].Message)
	assert.Equal(t, models.NotificationArtwork, notifications[0].Type)
}

func TestArtworks_RejectsNonImageUpload(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)

	res, _ := ts.SendMultipart(t, http.MethodPost, "/artworks", token,
		map[string][]string{"title": {"Not a picture"}},
		testutil.Upload{Field: "image", Filename: "notes.png", Content: []byte("plain text pretending")},
	)
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)

	ts.WaitForNotifications()
	assert.Empty(t, listNotifications(t, ts))
}

func TestContent_AccessRules(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/galleries", "", map[string]any{"name": "Anon"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/galleries", token, map[string]any{"name": "North Hall"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var gallery models.Gallery
	require.NoError(t, json.Unmarshal([]byte(body), &gallery))

	path := fmt.Sprintf("/galleries/%d", gallery.ID)
	res, _ = ts.SendRequest(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodDelete, path, ts.AdminToken(t), nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"message":"Gallery deleted"}`, body)

	res, _ = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestContent_ValidationErrors(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/artists", token, map[string]any{"name": "No Category"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/events", token, map[string]any{"name": "Expo", "status": "someday"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/artworks/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	ts.WaitForNotifications()
	assert.Empty(t, listNotifications(t, ts))
}

func TestGalleries_Featured(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)

	var ids []uint
	for _, name := range []string{"East", "West"} {
		res, body := ts.SendRequest(t, http.MethodPost, "/galleries", token, map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
		var gallery models.Gallery
		require.NoError(t, json.Unmarshal([]byte(body), &gallery))
		ids = append(ids, gallery.ID)
	}

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/galleries/%d/set-featured", ids[1]), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"success":true,"message":"Gallery set as featured"}`, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/galleries/featured", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var featured []models.Gallery
	require.NoError(t, json.Unmarshal([]byte(body), &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, ids[1], featured[0].ID)

	res, body = ts.SendRequest(t, http.MethodPost, "/galleries/reset-featured", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"success":true,"updated":1}`, body)

	res, _ = ts.SendRequest(t, http.MethodPost, "/galleries/9999/set-featured", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdates_EmitUpdateNotifications(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/museums", token, map[string]any{"name": "City Museum"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var museum models.Museum
	require.NoError(t, json.Unmarshal([]byte(body), &museum))
	ts.WaitForNotifications()

	res, body = ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/museums/%d", museum.ID), token, map[string]any{"name": "City Art Museum"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	ts.WaitForNotifications()

	notifications := listNotifications(t, ts)
	require.Len(t, notifications, 2)
	messages := []string{notifications[0].Message, notifications[1].Message}
	assert.ElementsMatch(t, []string{"New museum added: City Museum", "Museum updated: City Art Museum"}, messages)
}
