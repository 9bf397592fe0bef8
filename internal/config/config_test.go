package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3002, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Notifications.RetentionWindow)
	assert.Equal(t, 50, cfg.Notifications.PageSize)
	assert.True(t, cfg.Notifications.ClearOnStartup)
	assert.Equal(t, "admin@banarts.com", cfg.Admin.Email)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
server:
  port: 8088
notifications:
  retention_window: 30m
  page_size: 10
  sweep_interval: 1m
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Notifications.RetentionWindow)
	assert.Equal(t, 10, cfg.Notifications.PageSize)
	assert.Equal(t, time.Minute, cfg.Notifications.SweepInterval)
	// untouched sections keep defaults
	assert.Equal(t, "local", cfg.Storage.Type)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoad_EmailAndObjectStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
storage:
  type: r2
  s3:
    endpoint: https://acc.r2.cloudflarestorage.com
    bucket: banarts-media
email:
  smtp_host: smtp.example.com
`)
	require.NoError(t, os.WriteFile(path, body, 0o644))
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("SMTP_PASSWORD", "mail-pass")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "r2", cfg.Storage.Type)
	assert.Equal(t, "banarts-media", cfg.Storage.S3.Bucket)
	assert.Equal(t, "key", cfg.Storage.S3.AccessKey)
	assert.Equal(t, "secret", cfg.Storage.S3.SecretKey)

	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, "mail-pass", cfg.Email.SMTPPassword)
	assert.Equal(t, "BanArts", cfg.Email.FromName)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Notifications.RetentionWindow = 0
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}
