package repository

import (
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models/response"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetOccupancySummary() (*response.DashboardResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetOccupancySummary retrieves aggregate occupancy figures plus a per-room breakdown
func (r *dashboardRepository) GetOccupancySummary() (*response.DashboardResponse, error) {
	var summary response.DashboardResponse

	query := `
		SELECT
			COUNT(*) AS total_rooms,
			COALESCE(SUM(capacity), 0) AS total_capacity,
			COALESCE(SUM(current_occupancy), 0) AS total_occupancy,
			COALESCE(SUM(capacity - current_occupancy) FILTER (WHERE under_maintenance = false), 0) AS free_slots,
			COUNT(*) FILTER (WHERE under_maintenance = true) AS rooms_under_maintenance
		FROM rooms
	`

	if err := r.db.Raw(query).Scan(&summary).Error; err != nil {
		return nil, err
	}

	studentQuery := `SELECT COUNT(*) FROM users WHERE role = 'student'`
	if err := r.db.Raw(studentQuery).Scan(&summary.TotalStudents).Error; err != nil {
		return nil, err
	}

	roomQuery := `
		SELECT id AS room_id, number, capacity, current_occupancy, under_maintenance
		FROM rooms
		ORDER BY number
	`
	if err := r.db.Raw(roomQuery).Scan(&summary.Rooms).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
