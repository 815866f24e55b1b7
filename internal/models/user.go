package models

import (
	"time"
)

// Roles recognized by the application. A user's role is fixed at account creation.
const (
	RoleAdmin   = "admin"
	RoleWarden  = "warden"
	RoleStudent = "student"
)

// ValidRole reports whether the given role is one of the recognized roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWarden, RoleStudent:
		return true
	}
	return false
}

// User represents the users table
type User struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Name           string    `json:"name" gorm:"column:name"`
	Email          string    `json:"email" gorm:"column:email;uniqueIndex"`
	Password       string    `json:"-" gorm:"column:password"`
	Role           string    `json:"role" gorm:"column:role;index"`
	AssignedRoomID *uint     `json:"assigned_room_id" gorm:"column:assigned_room_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
