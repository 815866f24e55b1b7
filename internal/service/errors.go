package service

import "errors"

// Business errors surfaced to the handler layer. The handler error mapper
// translates these into HTTP status codes.
var (
	// Conflict errors
	ErrRoomUnavailable        = errors.New("room is under maintenance or has no free slot")
	ErrAlreadyAssigned        = errors.New("student is already assigned to a room")
	ErrNotAssigned            = errors.New("student is not assigned to any room")
	ErrRoomNotEmpty           = errors.New("room still has occupants")
	ErrCapacityBelowOccupancy = errors.New("capacity cannot be reduced below current occupancy")
	ErrEmailExists            = errors.New("email is already registered")
	ErrRoomNumberExists       = errors.New("room number already exists")

	// Not found errors
	ErrRoomNotFound      = errors.New("room not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrPlacementNotFound = errors.New("placement not found")

	// Validation errors
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrInvalidRole     = errors.New("unknown role")
	ErrNotAStudent     = errors.New("user is not a student")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
)
