package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-admin-svc/internal/mailer"
	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/models/response"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

const generatedPasswordLength = 12

// UserService defines the interface for account directory operations
type UserService interface {
	CreateStudent(ctx context.Context, name, email string) (*response.CreateStudentResponse, error)
	GetStudent(id uint) (*response.StudentResponse, error)
	ListStudents() ([]*response.StudentResponse, error)
	UpdateStudent(id uint, name, email string) (*response.StudentResponse, error)
	DeleteStudent(id uint) error
	Authenticate(email, password string) (*models.User, error)
}

// userService implements UserService
type userService struct {
	userRepo   repository.UserRepository
	assignment AssignmentService
	mailer     mailer.Mailer
	logger     *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	assignment AssignmentService,
	mailer mailer.Mailer,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepo:   userRepo,
		assignment: assignment,
		mailer:     mailer,
		logger:     logger,
	}
}

// CreateStudent onboards a student account with a generated password and
// emails the credentials. A mail delivery failure is logged and reported in
// the response but never rolls back the created account.
func (s *userService) CreateStudent(ctx context.Context, name, email string) (*response.CreateStudentResponse, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	password, err := utils.GeneratePassword(generatedPasswordLength)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleStudent,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	emailSent := true
	if err := s.mailer.SendCredentials(ctx, email, name, password); err != nil {
		emailSent = false
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		}).Error("Failed to send credential email, account created without confirmed delivery")
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":    user.ID,
		"email":      email,
		"email_sent": emailSent,
	}).Info("Student account created")

	return &response.CreateStudentResponse{
		Student:   *toStudentResponse(user),
		EmailSent: emailSent,
	}, nil
}

// GetStudent retrieves a student account by id
func (s *userService) GetStudent(id uint) (*response.StudentResponse, error) {
	user, err := s.getStudent(id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(user), nil
}

// ListStudents retrieves all student accounts
func (s *userService) ListStudents() ([]*response.StudentResponse, error) {
	users, err := s.userRepo.ListByRole(models.RoleStudent)
	if err != nil {
		return nil, err
	}

	students := make([]*response.StudentResponse, 0, len(users))
	for _, user := range users {
		students = append(students, toStudentResponse(user))
	}
	return students, nil
}

// UpdateStudent edits a student's name and email. Role is immutable after
// creation and is never touched here.
func (s *userService) UpdateStudent(id uint, name, email string) (*response.StudentResponse, error) {
	user, err := s.getStudent(id)
	if err != nil {
		return nil, err
	}

	if email != user.Email {
		if _, err := s.userRepo.GetByEmail(email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	// Only profile fields are written; assigned_room_id and role stay
	// whatever they are at write time.
	if err := s.userRepo.UpdateProfile(id, name, email); err != nil {
		return nil, err
	}
	user.Name = name
	user.Email = email

	s.logger.WithField("user_id", user.ID).Info("Student account updated")

	return toStudentResponse(user), nil
}

// DeleteStudent removes a student account. A student still occupying a room
// is unassigned first so the room's occupancy counter stays consistent.
func (s *userService) DeleteStudent(id uint) error {
	user, err := s.getStudent(id)
	if err != nil {
		return err
	}

	if user.AssignedRoomID != nil {
		if err := s.assignment.Unassign(id); err != nil && !errors.Is(err, ErrNotAssigned) {
			return err
		}
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	s.logger.WithField("user_id", id).Info("Student account deleted")

	return nil
}

// Authenticate verifies login credentials and returns the matching user
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) getStudent(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func toStudentResponse(user *models.User) *response.StudentResponse {
	return &response.StudentResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		AssignedRoomID: user.AssignedRoomID,
	}
}
