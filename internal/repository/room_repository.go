package repository

import (
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
)

// RoomRepository defines the interface for room data operations. Edits and
// deletes never touch current_occupancy: that column belongs to the
// assignment repository, so writing it back from a previously read row could
// clobber a concurrent assignment.
type RoomRepository interface {
	Create(room *models.Room) error
	GetByID(id uint) (*models.Room, error)
	GetByNumber(number string) (*models.Room, error)
	List() ([]*models.Room, error)
	UpdateDetails(id uint, number string, capacity int, underMaintenance bool) error
	Delete(id uint) error
	CountOccupants(roomID uint) (int64, error)
}

// roomRepository implements RoomRepository
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new instance of RoomRepository
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// Create inserts a new room record
func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// GetByID retrieves a room by primary key
func (r *roomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByNumber retrieves a room by its room number
func (r *roomRepository) GetByNumber(number string) (*models.Room, error) {
	var room models.Room
	if err := r.db.Where("number = ?", number).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List retrieves all rooms ordered by room number
func (r *roomRepository) List() ([]*models.Room, error) {
	var rooms []*models.Room
	err := r.db.Order("number").Find(&rooms).Error
	return rooms, err
}

// UpdateDetails writes the editable room fields. The capacity check is part
// of the UPDATE itself, so an assign committing between a caller's read and
// this write cannot be undone or oversubscribed by a stale snapshot.
func (r *roomRepository) UpdateDetails(id uint, number string, capacity int, underMaintenance bool) error {
	res := r.db.Model(&models.Room{}).
		Where("id = ? AND current_occupancy <= ?", id, capacity).
		Updates(map[string]interface{}{
			"number":            number,
			"capacity":          capacity,
			"under_maintenance": underMaintenance,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Room{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrCapacityConflict
	}
	return nil
}

// Delete removes a room, conditional on it being empty at write time
func (r *roomRepository) Delete(id uint) error {
	res := r.db.Where("current_occupancy = 0").Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Room{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrRoomOccupied
	}
	return nil
}

// CountOccupants counts the users whose back-reference points at the room
func (r *roomRepository) CountOccupants(roomID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("assigned_room_id = ?", roomID).Count(&count).Error
	return count, err
}
