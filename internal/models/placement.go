package models

import (
	"time"
)

// Placement represents the placements table
type Placement struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Company     string     `json:"company" gorm:"column:company"`
	RoleTitle   string     `json:"role_title" gorm:"column:role_title"`
	Package     string     `json:"package" gorm:"column:package"`
	Eligibility string     `json:"eligibility" gorm:"column:eligibility"`
	Deadline    *time.Time `json:"deadline" gorm:"column:deadline"`
	Link        string     `json:"link" gorm:"column:link"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for Placement
func (Placement) TableName() string {
	return "placements"
}
