package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-admin-svc/internal/models"
)

// OccupancyDrift reports a room whose occupancy counter disagrees with the
// actual number of back-references pointing at it.
type OccupancyDrift struct {
	RoomID   uint   `json:"room_id"`
	Number   string `json:"number"`
	Recorded int    `json:"recorded"`
	Actual   int    `json:"actual"`
}

// AssignmentRepository owns the two-document Room/User mutation. Both updates
// run inside one transaction and the room-side update re-validates capacity
// and maintenance at commit time, so a stale availability read can never
// oversubscribe a room.
type AssignmentRepository interface {
	AssignStudent(studentID, roomID uint) error
	UnassignStudent(studentID uint) (roomID uint, err error)
	ListOccupancyDrift() ([]*OccupancyDrift, error)
	RepairOccupancy(roomID uint, actual int) error
}

// assignmentRepository implements AssignmentRepository
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new instance of AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// AssignStudent reserves a slot on the room and sets the student's
// back-reference. The reservation is a conditional update; zero rows affected
// means the room is full, under maintenance, or missing.
func (r *assignmentRepository) AssignStudent(studentID, roomID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE rooms
			SET current_occupancy = current_occupancy + 1, updated_at = NOW()
			WHERE id = ? AND under_maintenance = false AND current_occupancy < capacity
		`, roomID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoFreeSlot
		}

		res = tx.Exec(`
			UPDATE users
			SET assigned_room_id = ?, updated_at = NOW()
			WHERE id = ? AND assigned_room_id IS NULL
		`, roomID, studentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Rolls back the slot reservation. The student either picked up
			// a room concurrently or was deleted; tell those apart so the
			// caller doesn't report "already assigned" for a missing row.
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", studentID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrAlreadyAssigned
		}

		return nil
	})
}

// UnassignStudent clears the student's back-reference and releases the slot.
// Returns the room the student was removed from.
func (r *assignmentRepository) UnassignStudent(studentID uint) (uint, error) {
	var roomID uint

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, studentID).Error; err != nil {
			return err
		}
		if user.AssignedRoomID == nil {
			return ErrNotAssigned
		}
		roomID = *user.AssignedRoomID

		if err := tx.Exec(`
			UPDATE users
			SET assigned_room_id = NULL, updated_at = NOW()
			WHERE id = ?
		`, studentID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
			UPDATE rooms
			SET current_occupancy = current_occupancy - 1, updated_at = NOW()
			WHERE id = ? AND current_occupancy > 0
		`, roomID).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return roomID, nil
}

// ListOccupancyDrift finds rooms whose counter disagrees with the actual
// occupant count
func (r *assignmentRepository) ListOccupancyDrift() ([]*OccupancyDrift, error) {
	var drifts []*OccupancyDrift

	query := `
		SELECT r.id AS room_id, r.number, r.current_occupancy AS recorded, COUNT(u.id) AS actual
		FROM rooms r
		LEFT JOIN users u ON u.assigned_room_id = r.id
		GROUP BY r.id, r.number, r.current_occupancy
		HAVING r.current_occupancy <> COUNT(u.id)
		ORDER BY r.id
	`

	err := r.db.Raw(query).Scan(&drifts).Error
	if err != nil {
		return nil, err
	}

	return drifts, nil
}

// RepairOccupancy resets a room's counter to the actual occupant count
func (r *assignmentRepository) RepairOccupancy(roomID uint, actual int) error {
	return r.db.Exec(`
		UPDATE rooms
		SET current_occupancy = ?, updated_at = NOW()
		WHERE id = ?
	`, actual, roomID).Error
}
