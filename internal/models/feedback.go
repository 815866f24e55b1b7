package models

import (
	"time"
)

// Feedback represents the feedback table
type Feedback struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;index"`
	Subject   string    `json:"subject" gorm:"column:subject"`
	Message   string    `json:"message" gorm:"column:message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
