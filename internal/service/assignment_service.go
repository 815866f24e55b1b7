package service

import (
	"errors"

	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

// AssignmentService is the only component allowed to mutate the Room/User
// occupancy pair. It keeps the room counter and the student back-reference
// consistent: either both updates commit or neither does.
type AssignmentService interface {
	Assign(studentID, roomID uint) error
	Unassign(studentID uint) error
}

// Available reports whether a room can accept another occupant. Maintenance
// takes precedence over remaining capacity.
func Available(room *models.Room) bool {
	return !room.UnderMaintenance && room.CurrentOccupancy < room.Capacity
}

// assignmentService implements AssignmentService
type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	roomRepo       repository.RoomRepository
	userRepo       repository.UserRepository
	logger         *logger.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	logger *logger.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		roomRepo:       roomRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// Assign moves a student into a room. The availability check is re-validated
// inside the repository transaction, so a concurrent assign racing for the
// last slot fails with ErrRoomUnavailable instead of oversubscribing.
func (s *assignmentService) Assign(studentID, roomID uint) error {
	user, err := s.userRepo.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role != models.RoleStudent {
		return ErrNotAStudent
	}
	if user.AssignedRoomID != nil {
		return ErrAlreadyAssigned
	}

	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	if err := s.assignmentRepo.AssignStudent(studentID, roomID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFreeSlot):
			return ErrRoomUnavailable
		case errors.Is(err, repository.ErrAlreadyAssigned):
			return ErrAlreadyAssigned
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Student deleted between the pre-check and the transaction
			return ErrUserNotFound
		default:
			return err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"student_id": studentID,
		"room_id":    roomID,
	}).Info("Student assigned to room")

	return nil
}

// Unassign removes a student from their room and releases the slot
func (s *assignmentService) Unassign(studentID uint) error {
	user, err := s.userRepo.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role != models.RoleStudent {
		return ErrNotAStudent
	}

	roomID, err := s.assignmentRepo.UnassignStudent(studentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotAssigned):
			return ErrNotAssigned
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrUserNotFound
		default:
			return err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"student_id": studentID,
		"room_id":    roomID,
	}).Info("Student unassigned from room")

	return nil
}
