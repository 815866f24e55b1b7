package repository

import (
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
)

// PlacementRepository defines the interface for placement data operations
type PlacementRepository interface {
	Create(placement *models.Placement) error
	GetByID(id uint) (*models.Placement, error)
	Search(search string, page, limit int) ([]*models.Placement, int64, error)
	Update(placement *models.Placement) error
	Delete(id uint) error
}

// placementRepository implements PlacementRepository
type placementRepository struct {
	db *gorm.DB
}

// NewPlacementRepository creates a new instance of PlacementRepository
func NewPlacementRepository(db *gorm.DB) PlacementRepository {
	return &placementRepository{
		db: db,
	}
}

// Create inserts a new placement record
func (r *placementRepository) Create(placement *models.Placement) error {
	return r.db.Create(placement).Error
}

// GetByID retrieves a placement by primary key
func (r *placementRepository) GetByID(id uint) (*models.Placement, error) {
	var placement models.Placement
	if err := r.db.First(&placement, id).Error; err != nil {
		return nil, err
	}
	return &placement, nil
}

// Search retrieves placements filtered by company or role title with pagination
func (r *placementRepository) Search(search string, page, limit int) ([]*models.Placement, int64, error) {
	var placements []*models.Placement
	var total int64

	query := r.db.Model(&models.Placement{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("company ILIKE ? OR role_title ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("deadline NULLS LAST, id").Offset(offset).Limit(limit).Find(&placements).Error
	if err != nil {
		return nil, 0, err
	}

	return placements, total, nil
}

// Update saves changes to an existing placement record
func (r *placementRepository) Update(placement *models.Placement) error {
	return r.db.Save(placement).Error
}

// Delete removes a placement by primary key
func (r *placementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Placement{}, id).Error
}
