package services

import (
	"banarts/internal/repositories"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

// AnalyticsService feeds the admin dashboard.
type AnalyticsService interface {
	GetDashboard(db *gorm.DB) (*repositories.DashboardCounts, error)
}

type analyticsService struct {
	repo repositories.AnalyticsRepository
}

func NewAnalyticsService(repo repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) GetDashboard(db *gorm.DB) (*repositories.DashboardCounts, error) {
	counts, err := s.repo.DashboardCounts(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "dashboard")
	}
	return counts, nil
}
