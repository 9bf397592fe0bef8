package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImagePath(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"img\\1700000000-1.jpg":     "/img/1700000000-1.jpg",
		"img/a.png":                 "/img/a.png",
		"/img/a.png":                "/img/a.png",
		"//img/a.png":               "/img/a.png",
		"https://cdn.example/a.png": "https://cdn.example/a.png",
		"http://cdn.example/a.png":  "http://cdn.example/a.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeImagePath(in), "input %q", in)
	}
}

func TestNotification_IsVisibleAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Notification{}).IsVisibleAt(now))
	assert.True(t, (&Notification{ExpiresAt: &future}).IsVisibleAt(now))
	assert.False(t, (&Notification{ExpiresAt: &past}).IsVisibleAt(now))
	assert.False(t, (&Notification{ExpiresAt: &now}).IsVisibleAt(now))
}

func TestGallery_AfterFindDefaultsType(t *testing.T) {
	g := &Gallery{Type: "[object Object]", ImageURL: "img\\g.jpg"}
	assert.NoError(t, g.AfterFind(nil))
	assert.Equal(t, DefaultGalleryType, g.Type)
	assert.Equal(t, "/img/g.jpg", g.ImageURL)
}

func TestEventStatus_IsValid(t *testing.T) {
	assert.True(t, EventStatusUpcoming.IsValid())
	assert.False(t, EventStatus("postponed").IsValid())
}
