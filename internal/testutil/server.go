package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"banarts/database"
	"banarts/internal/app"
	"banarts/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	AdminEmail    = "admin@banarts.com"
	AdminPassword = "Admin@123"
)

// TestServer is a running application on an in-memory database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	App    *app.App
	Clock  *Clock
}

// NewTestServer starts the full router with the hub running and an admin seeded.
// tweak, when given, adjusts the configuration before wiring.
func NewTestServer(t *testing.T, tweak ...func(*config.Config)) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Admin.Password = AdminPassword
	cfg.RateLimit.RequestsPerMinute = 6000
	cfg.RateLimit.Burst = 1000
	cfg.Notifications.SweepInterval = 0
	for _, fn := range tweak {
		fn(cfg)
	}

	db := NewTestDB(t)
	require.NoError(t, database.SeedCategories(db))

	clock := NewClock(time.Now())
	application, err := app.New(cfg, db, clock.Now)
	require.NoError(t, err)
	require.NoError(t, application.Bootstrap())

	ctx, cancel := context.WithCancel(context.Background())
	application.Start(ctx)

	server := httptest.NewServer(application.Router)
	t.Cleanup(func() {
		server.Close()
		cancel()
		application.Stop()
	})

	return &TestServer{
		Server: server,
		DB:     db,
		App:    application,
		Clock:  clock,
	}
}

// SendRequest sends body as JSON and returns the response with its body read.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field    string
	Filename string
	Content  []byte
}

// SendMultipart posts fields and files as multipart/form-data.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string][]string, files ...Upload) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, writer.WriteField(name, v))
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}

// Login returns a token for an existing account.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (ts *TestServer) AdminToken(t *testing.T) string {
	return ts.Login(t, AdminEmail, AdminPassword)
}

// SignupUser registers a fresh regular user and returns its token and id.
func (ts *TestServer) SignupUser(t *testing.T) (string, uint) {
	t.Helper()

	email := fmt.Sprintf("user_%d@banarts.test", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/signup", "", map[string]string{
		"email":             email,
		"password":          "Str0ng!Pass",
		"first_name":        "Test",
		"last_name":         "User",
		"security_question": "First pet?",
		"security_answer":   "Rex",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp.Token, resp.User.ID
}

// WaitForNotifications blocks until every pending Notify has been stored and broadcast.
func (ts *TestServer) WaitForNotifications() {
	ts.App.Services.NotificationService.Wait()
}

// DialWS opens a websocket to path ("/ws" or "/socket").
func (ts *TestServer) DialWS(t *testing.T, path string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}
