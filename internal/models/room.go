package models

import (
	"time"
)

// Room represents the rooms table. CurrentOccupancy is mutated only through
// the assignment service and always equals the number of users whose
// AssignedRoomID points at the room.
type Room struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	Number           string    `json:"number" gorm:"column:number;uniqueIndex"`
	Capacity         int       `json:"capacity" gorm:"column:capacity"`
	CurrentOccupancy int       `json:"current_occupancy" gorm:"column:current_occupancy;default:0"`
	UnderMaintenance bool      `json:"under_maintenance" gorm:"column:under_maintenance;default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Room
func (Room) TableName() string {
	return "rooms"
}
