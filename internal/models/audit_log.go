package models

import (
	"time"
)

// AuditLog represents the audit_logs table, written by scheduled jobs
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RunID     string    `json:"run_id" gorm:"column:run_id;index"`
	Code      string    `json:"code" gorm:"column:code"`
	Message   string    `json:"message" gorm:"column:message"`
	Status    string    `json:"status" gorm:"column:status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
