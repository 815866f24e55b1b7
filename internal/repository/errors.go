package repository

import "errors"

// Conditional-update outcomes surfaced by the assignment repository.
// The service layer translates these into its own error taxonomy.
var (
	// ErrNoFreeSlot means the room reservation update matched no row:
	// the room is full, under maintenance, or gone.
	ErrNoFreeSlot = errors.New("no free slot on room")
	// ErrAlreadyAssigned means the student back-reference was already set
	// when the update ran.
	ErrAlreadyAssigned = errors.New("student already assigned to a room")
	// ErrNotAssigned means the student had no back-reference to clear.
	ErrNotAssigned = errors.New("student not assigned to any room")
	// ErrCapacityConflict means a room edit would have dropped capacity
	// below the occupancy at write time.
	ErrCapacityConflict = errors.New("capacity below current occupancy")
	// ErrRoomOccupied means a room delete matched no row because the room
	// still had occupants at write time.
	ErrRoomOccupied = errors.New("room still occupied")
)
