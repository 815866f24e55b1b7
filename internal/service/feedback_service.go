package service

import (
	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	Submit(userID uint, subject, message string) (*models.Feedback, error)
	List(page, limit int) ([]*models.Feedback, int64, error)
}

// feedbackService implements FeedbackService
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *logger.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Submit records feedback from an authenticated student
func (s *feedbackService) Submit(userID uint, subject, message string) (*models.Feedback, error) {
	feedback := &models.Feedback{
		UserID:  userID,
		Subject: subject,
		Message: message,
	}
	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"feedback_id": feedback.ID,
		"user_id":     userID,
	}).Info("Feedback submitted")

	return feedback, nil
}

// List retrieves feedback entries newest first
func (s *feedbackService) List(page, limit int) ([]*models.Feedback, int64, error) {
	return s.feedbackRepo.List(page, limit)
}
