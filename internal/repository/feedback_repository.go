package repository

import (
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
)

// FeedbackRepository defines the interface for feedback data operations
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	List(page, limit int) ([]*models.Feedback, int64, error)
}

// feedbackRepository implements FeedbackRepository
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create inserts a new feedback record
func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// List retrieves feedback entries newest first with pagination
func (r *feedbackRepository) List(page, limit int) ([]*models.Feedback, int64, error) {
	var entries []*models.Feedback
	var total int64

	if err := r.db.Model(&models.Feedback{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
