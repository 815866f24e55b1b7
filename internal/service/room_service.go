package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/models/response"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

// RoomService defines the interface for room registry operations
type RoomService interface {
	Create(number string, capacity int, underMaintenance bool) (*models.Room, error)
	GetByID(id uint) (*response.RoomResponse, error)
	List() ([]*response.RoomResponse, error)
	Update(id uint, number string, capacity int, underMaintenance bool) (*models.Room, error)
	Delete(id uint) error
	ExportRooms() ([]byte, string, error)
}

// roomService implements RoomService
type roomService struct {
	roomRepo repository.RoomRepository
	logger   *logger.Logger
}

// NewRoomService creates a new room service
func NewRoomService(roomRepo repository.RoomRepository, logger *logger.Logger) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create validates and inserts a new room
func (s *roomService) Create(number string, capacity int, underMaintenance bool) (*models.Room, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	if _, err := s.roomRepo.GetByNumber(number); err == nil {
		return nil, ErrRoomNumberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &models.Room{
		Number:           number,
		Capacity:         capacity,
		UnderMaintenance: underMaintenance,
	}
	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"room_id":  room.ID,
		"number":   room.Number,
		"capacity": room.Capacity,
	}).Info("Room created")

	return room, nil
}

// GetByID retrieves a room with its computed availability
func (s *roomService) GetByID(id uint) (*response.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return toRoomResponse(room), nil
}

// List retrieves all rooms with their computed availability
func (s *roomService) List() ([]*response.RoomResponse, error) {
	rooms, err := s.roomRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]*response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, toRoomResponse(room))
	}
	return responses, nil
}

// Update edits a room. The capacity floor is enforced inside the repository
// write itself, so a rejected shrink leaves the room unchanged even when an
// assign lands between this read and the write. current_occupancy is never
// written here.
func (s *roomService) Update(id uint, number string, capacity int, underMaintenance bool) (*models.Room, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	room, err := s.roomRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if number != room.Number {
		if _, err := s.roomRepo.GetByNumber(number); err == nil {
			return nil, ErrRoomNumberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := s.roomRepo.UpdateDetails(id, number, capacity, underMaintenance); err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityConflict):
			return nil, ErrCapacityBelowOccupancy
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrRoomNotFound
		default:
			return nil, err
		}
	}

	updated, err := s.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("room_id", id).Info("Room updated")

	return updated, nil
}

// Delete removes an empty room. Occupied rooms must have all students
// unassigned first; there is no cascading auto-unassign. The emptiness check
// is part of the delete statement, not a prior read.
func (s *roomService) Delete(id uint) error {
	if err := s.roomRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomOccupied):
			return ErrRoomNotEmpty
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrRoomNotFound
		default:
			return err
		}
	}

	s.logger.WithField("room_id", id).Info("Room deleted")

	return nil
}

// ExportRooms exports the room occupancy report to an Excel file
func (s *roomService) ExportRooms() ([]byte, string, error) {
	rooms, err := s.roomRepo.List()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get rooms: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Rooms"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Room Number", "Capacity", "Occupancy", "Free Slots", "Under Maintenance", "Available"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	for i, room := range rooms {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), room.Number)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), room.Capacity)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), room.CurrentOccupancy)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), room.Capacity-room.CurrentOccupancy)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), room.UnderMaintenance)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), Available(room))
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("room_occupancy_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}

func toRoomResponse(room *models.Room) *response.RoomResponse {
	return &response.RoomResponse{
		ID:               room.ID,
		Number:           room.Number,
		Capacity:         room.Capacity,
		CurrentOccupancy: room.CurrentOccupancy,
		UnderMaintenance: room.UnderMaintenance,
		Available:        Available(room),
	}
}
