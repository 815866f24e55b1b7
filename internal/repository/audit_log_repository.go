package repository

import (
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
)

// AuditLogRepository defines the interface for audit log data operations
type AuditLogRepository interface {
	Create(log *models.AuditLog) error
}

// auditLogRepository implements AuditLogRepository
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new instance of AuditLogRepository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create creates a new audit log record
func (r *auditLogRepository) Create(log *models.AuditLog) error {
	return r.db.Create(log).Error
}
