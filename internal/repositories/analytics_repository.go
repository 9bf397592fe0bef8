package repositories

import (
	"banarts/internal/models"

	"gorm.io/gorm"
)

// DashboardCounts is the payload of GET /dashboard.
type DashboardCounts struct {
	Artists     int64 `json:"artists"`
	Artworks    int64 `json:"artworks"`
	Galleries   int64 `json:"galleries"`
	Museums     int64 `json:"museums"`
	Artifacts   int64 `json:"artifacts"`
	Events      int64 `json:"events"`
	Videos      int64 `json:"videos"`
	Collections int64 `json:"collections"`
	Users       int64 `json:"users"`
}

type AnalyticsRepository interface {
	DashboardCounts(db *gorm.DB) (*DashboardCounts, error)
}

type AnalyticsRepositoryImpl struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return &AnalyticsRepositoryImpl{}
}

func (r *AnalyticsRepositoryImpl) DashboardCounts(db *gorm.DB) (*DashboardCounts, error) {
	counts := &DashboardCounts{}
	targets := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Artist{}, &counts.Artists},
		{&models.Artwork{}, &counts.Artworks},
		{&models.Gallery{}, &counts.Galleries},
		{&models.Museum{}, &counts.Museums},
		{&models.MuseumArtifact{}, &counts.Artifacts},
		{&models.Event{}, &counts.Events},
		{&models.Video{}, &counts.Videos},
		{&models.Collection{}, &counts.Collections},
		{&models.User{}, &counts.Users},
	}
	for _, target := range targets {
		if err := db.Model(target.model).Count(target.dest).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}
