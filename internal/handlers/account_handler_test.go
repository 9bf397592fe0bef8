package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"banarts/internal/config"
	"banarts/internal/models"
	"banarts/internal/services/dto"
	"banarts/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_SignupLoginFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	signup := map[string]string{
		"email":             "painter@banarts.com",
		"password":          "Str0ng!Pass",
		"security_question": "First pet?",
		"security_answer":   "Rex",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/signup", "", signup)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)

	res, _ = ts.SendRequest(t, http.MethodPost, "/signup", "", signup)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
		"email": "painter@banarts.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	ts.Login(t, "painter@banarts.com", "Str0ng!Pass")

	res, body = ts.SendRequest(t, http.MethodGet, "/user-auth-status/painter@banarts.com", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"success":true,"hasOAuthProvider":false,"oauthProvider":null}`, body)
}

func TestAuth_ChangeAndForgotPassword(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, id := ts.SignupUser(t)

	var user models.User
	require.NoError(t, ts.DB.First(&user, id).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/change-password", token, map[string]string{
		"email":           user.Email,
		"currentPassword": "Str0ng!Pass",
		"newPassword":     "N3w!Passw0rd",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	ts.Login(t, user.Email, "N3w!Passw0rd")

	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/forgot-password", "", map[string]string{
		"email":           user.Email,
		"newPassword":     "An0ther!Pass",
		"security_answer": "wrong answer",
	})
	assert.NotEqual(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/forgot-password", "", map[string]string{
		"email":           user.Email,
		"newPassword":     "An0ther!Pass",
		"security_answer": "rex",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	ts.Login(t, user.Email, "An0ther!Pass")
}

func TestAuth_RateLimited(t *testing.T) {
	ts := testutil.NewTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.RequestsPerMinute = 1
		cfg.RateLimit.Burst = 2
	})

	creds := map[string]string{"email": "nobody@banarts.com", "password": "whatever"}
	for i := 0; i < 2; i++ {
		res, _ := ts.SendRequest(t, http.MethodPost, "/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode, body)

	// the limiter guards auth routes only
	res, _ = ts.SendRequest(t, http.MethodGet, "/notifications", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUsers_AdminOnly(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, id := ts.SignupUser(t)
	admin := ts.AdminToken(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/users", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, "password")

	path := fmt.Sprintf("/users/%d", id)
	res, body = ts.SendRequest(t, http.MethodPut, path, admin, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, path, admin, map[string]any{"first_name": "Renamed"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Renamed")

	res, body = ts.SendRequest(t, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"message":"User deleted"}`, body)
}

func TestUpload_ProfilePicture(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, id := ts.SignupUser(t)

	res, _ := ts.SendMultipart(t, http.MethodPost, "/upload-profile-picture", "", nil,
		testutil.Upload{Field: "profile_picture", Filename: "me.png", Content: pngImage(t)})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := ts.SendMultipart(t, http.MethodPost, "/upload-profile-picture", token, nil,
		testutil.Upload{Field: "profile_picture", Filename: "me.png", Content: pngImage(t)})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Success        bool   `json:"success"`
		ProfilePicture string `json:"profile_picture"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.ProfilePicture, "/img/"), resp.ProfilePicture)

	var user models.User
	require.NoError(t, ts.DB.First(&user, id).Error)
	assert.Equal(t, resp.ProfilePicture, user.ProfilePicture)
}

func TestEngagement_FollowAndSaveToggle(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, id := ts.SignupUser(t)

	artistID := createArtist(t, ts, token, "Followed Artist")
	res, body := ts.SendRequest(t, http.MethodPost, "/artworks", token, map[string]any{"title": "Kept"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var artwork models.Artwork
	require.NoError(t, json.Unmarshal([]byte(body), &artwork))

	res, body = ts.SendRequest(t, http.MethodPost, "/follow-artist", token, map[string]any{"artist_id": artistID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"followed":true`)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/followed-artists/%d", id), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var artists []models.Artist
	require.NoError(t, json.Unmarshal([]byte(body), &artists))
	require.Len(t, artists, 1)
	assert.Equal(t, artistID, artists[0].ID)

	res, body = ts.SendRequest(t, http.MethodPost, "/follow-artist", token, map[string]any{"artist_id": artistID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"followed":false`)

	res, body = ts.SendRequest(t, http.MethodPost, "/save-artwork", token, map[string]any{"artwork_id": artwork.ID})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"saved":true`)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/saved-artworks/%d", id), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var saved []models.Artwork
	require.NoError(t, json.Unmarshal([]byte(body), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, artwork.ID, saved[0].ID)

	ts.WaitForNotifications()
}

func TestSearch(t *testing.T) {
	ts := testutil.NewTestServer(t)
	token, _ := ts.SignupUser(t)
	createArtist(t, ts, token, "Monet Jr")

	res, _ := ts.SendRequest(t, http.MethodGet, "/search?q=", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/search?q=monet", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var results dto.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(body), &results))
	require.Len(t, results.Artists, 1)
	assert.Equal(t, "Monet Jr", results.Artists[0].Name)
	assert.Empty(t, results.Artworks)

	ts.WaitForNotifications()
}

func TestSystemRoutes(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/test", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"message":"Server is working!"}`, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "banarts_http_requests_total")

	res, body = ts.SendRequest(t, http.MethodGet, "/dashboard", ts.AdminToken(t), nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "users")
}

func TestAuth_RegisterCreatesAccountWithoutToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	payload := map[string]string{"email": "guest@banarts.com", "password": "Str0ng!Pass", "first_name": " Ada "}
	res, body := ts.SendRequest(t, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.NotContains(t, body, "token")
	assert.NotContains(t, body, "password")

	var resp struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "guest@banarts.com", resp.User.Email)
	assert.Equal(t, "Ada", resp.User.FirstName)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)

	ts.Login(t, "guest@banarts.com", "Str0ng!Pass")

	res, _ = ts.SendRequest(t, http.MethodPost, "/register", "", payload)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/register", "", map[string]string{
		"email": "half@banarts.com", "password": "Str0ng!Pass", "security_question": "First pet?",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUsers_AdminCreatesAccount(t *testing.T) {
	ts := testutil.NewTestServer(t)
	userToken, _ := ts.SignupUser(t)
	adminToken := ts.AdminToken(t)

	payload := map[string]string{"email": "curator@banarts.com", "password": "Str0ng!Pass", "role": "admin"}
	res, _ := ts.SendRequest(t, http.MethodPost, "/users", userToken, payload)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/users", adminToken, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created models.User
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, models.UserRoleAdmin, created.Role)
	assert.True(t, created.IsActive)

	res, _ = ts.SendRequest(t, http.MethodPost, "/users", adminToken, map[string]string{
		"email": "weak@banarts.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/users", adminToken, map[string]string{
		"email": "odd@banarts.com", "password": "Str0ng!Pass", "role": "owner",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
