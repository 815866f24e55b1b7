package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hostel-admin-svc/internal/mailer"
	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

// PlacementService defines the interface for placement listing operations
type PlacementService interface {
	Create(ctx context.Context, placement *models.Placement) error
	Search(search string, page, limit int) ([]*models.Placement, int64, error)
	Update(id uint, company, roleTitle, pkg, eligibility string, deadline *time.Time, link string) (*models.Placement, error)
	Delete(id uint) error
}

// placementService implements PlacementService
type placementService struct {
	placementRepo repository.PlacementRepository
	userRepo      repository.UserRepository
	mailer        mailer.Mailer
	logger        *logger.Logger
}

// NewPlacementService creates a new placement service
func NewPlacementService(
	placementRepo repository.PlacementRepository,
	userRepo repository.UserRepository,
	mailer mailer.Mailer,
	logger *logger.Logger,
) PlacementService {
	return &placementService{
		placementRepo: placementRepo,
		userRepo:      userRepo,
		mailer:        mailer,
		logger:        logger,
	}
}

// Create inserts a new placement listing and announces it to every student
// account. Announcement failures are counted and logged, never fatal.
func (s *placementService) Create(ctx context.Context, placement *models.Placement) error {
	if err := s.placementRepo.Create(placement); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"placement_id": placement.ID,
		"company":      placement.Company,
	}).Info("Placement created")

	s.announce(ctx, placement)

	return nil
}

func (s *placementService) announce(ctx context.Context, placement *models.Placement) {
	students, err := s.userRepo.ListByRole(models.RoleStudent)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list students for placement announcement")
		return
	}
	if len(students) == 0 {
		return
	}

	recipients := make([]string, 0, len(students))
	for _, student := range students {
		recipients = append(recipients, student.Email)
	}

	subject := fmt.Sprintf("New Placement: %s at %s", placement.RoleTitle, placement.Company)
	result := s.mailer.SendBulk(ctx, recipients, subject,
		announcementText(placement), announcementHTML(placement))

	s.logger.WithFields(map[string]interface{}{
		"placement_id": placement.ID,
		"sent":         result.Sent,
		"failed":       result.Failed,
	}).Info("Placement announced to students")
}

// Search retrieves placements filtered by company or role with pagination
func (s *placementService) Search(search string, page, limit int) ([]*models.Placement, int64, error) {
	return s.placementRepo.Search(search, page, limit)
}

// Update edits a placement listing
func (s *placementService) Update(id uint, company, roleTitle, pkg, eligibility string, deadline *time.Time, link string) (*models.Placement, error) {
	placement, err := s.placementRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlacementNotFound
		}
		return nil, err
	}

	placement.Company = company
	placement.RoleTitle = roleTitle
	placement.Package = pkg
	placement.Eligibility = eligibility
	placement.Deadline = deadline
	placement.Link = link
	if err := s.placementRepo.Update(placement); err != nil {
		return nil, err
	}

	return placement, nil
}

// Delete removes a placement listing
func (s *placementService) Delete(id uint) error {
	if _, err := s.placementRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlacementNotFound
		}
		return err
	}
	return s.placementRepo.Delete(id)
}

func announcementText(p *models.Placement) string {
	deadline := "open until filled"
	if p.Deadline != nil {
		deadline = p.Deadline.Format("02 Jan 2006")
	}
	return fmt.Sprintf(
		"A new placement listing is available.\n\nCompany: %s\nRole: %s\nPackage: %s\nEligibility: %s\nDeadline: %s\nApply: %s\n",
		p.Company, p.RoleTitle, p.Package, p.Eligibility, deadline, p.Link,
	)
}

func announcementHTML(p *models.Placement) string {
	deadline := "open until filled"
	if p.Deadline != nil {
		deadline = p.Deadline.Format("02 Jan 2006")
	}
	return fmt.Sprintf(
		"<p>A new placement listing is available.</p><p>Company: <b>%s</b><br>Role: <b>%s</b><br>Package: %s<br>Eligibility: %s<br>Deadline: %s</p><p><a href=%q>Apply here</a></p>",
		p.Company, p.RoleTitle, p.Package, p.Eligibility, deadline, p.Link,
	)
}
