package service

import (
	"hostel-admin-svc/internal/models/response"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

// DashboardService defines the interface for the warden dashboard
type DashboardService interface {
	GetOccupancySummary() (*response.DashboardResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetOccupancySummary retrieves the aggregate occupancy view
func (s *dashboardService) GetOccupancySummary() (*response.DashboardResponse, error) {
	summary, err := s.dashboardRepo.GetOccupancySummary()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get occupancy summary")
		return nil, err
	}
	return summary, nil
}
