package scheduler

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

const occupancyAuditCode = "OCCUPANCY_AUDIT"

// OccupancyAuditor periodically recounts room occupants and repairs any
// counter drift. Under normal operation the assignment service keeps the
// counters exact; the audit is a safety net and leaves an audit trail.
type OccupancyAuditor struct {
	assignmentRepo repository.AssignmentRepository
	auditLogRepo   repository.AuditLogRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
}

// NewOccupancyAuditor creates a new occupancy auditor
func NewOccupancyAuditor(
	assignmentRepo repository.AssignmentRepository,
	auditLogRepo repository.AuditLogRepository,
	logger *logger.Logger,
	cronExpression string,
) *OccupancyAuditor {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &OccupancyAuditor{
		assignmentRepo: assignmentRepo,
		auditLogRepo:   auditLogRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
	}
}

// Start schedules and starts the audit job
func (s *OccupancyAuditor) Start() error {
	s.logger.Info("Starting occupancy auditor...")

	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling occupancy audit job")
	_, err := s.cron.AddFunc(s.cronExpression, s.runAudit)
	if err != nil {
		return fmt.Errorf("failed to schedule occupancy audit job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Occupancy auditor started successfully")

	return nil
}

// Stop gracefully stops the auditor
func (s *OccupancyAuditor) Stop() {
	s.logger.Info("Stopping occupancy auditor...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Occupancy auditor stopped successfully")
}

// runAudit is the scheduled job that recounts occupants per room
func (s *OccupancyAuditor) runAudit() {
	runID := uuid.New().String()

	s.logAudit(runID, "Starting occupancy audit", "START")
	s.logger.WithField("run_id", runID).Info("Starting occupancy audit...")

	drifts, err := s.assignmentRepo.ListOccupancyDrift()
	if err != nil {
		s.logAudit(runID, fmt.Sprintf("Failed to list occupancy drift: %v", err), "FAILED")
		s.logger.WithError(err).Error("Failed to list occupancy drift")
		return
	}

	if len(drifts) == 0 {
		s.logAudit(runID, "All occupancy counters consistent", "SUCCESS")
		s.logger.WithField("run_id", runID).Info("All occupancy counters consistent")
		return
	}

	repaired := 0
	for _, drift := range drifts {
		s.logger.WithFields(map[string]interface{}{
			"run_id":   runID,
			"room_id":  drift.RoomID,
			"number":   drift.Number,
			"recorded": drift.Recorded,
			"actual":   drift.Actual,
		}).Warn("Occupancy counter drift detected")

		if err := s.assignmentRepo.RepairOccupancy(drift.RoomID, drift.Actual); err != nil {
			s.logAudit(runID, fmt.Sprintf("Failed to repair room %s: %v", drift.Number, err), "FAILED")
			s.logger.WithError(err).WithField("room_id", drift.RoomID).Error("Failed to repair occupancy counter")
			continue
		}
		repaired++
	}

	message := fmt.Sprintf("Repaired %d of %d drifted occupancy counters", repaired, len(drifts))
	s.logAudit(runID, message, "SUCCESS")
	s.logger.WithFields(map[string]interface{}{
		"run_id":   runID,
		"drifted":  len(drifts),
		"repaired": repaired,
	}).Info("Occupancy audit completed")
}

// logAudit writes an audit trail record, logging failures without aborting the run
func (s *OccupancyAuditor) logAudit(runID, message, status string) {
	entry := &models.AuditLog{
		RunID:   runID,
		Code:    occupancyAuditCode,
		Message: message,
		Status:  status,
	}
	if err := s.auditLogRepo.Create(entry); err != nil {
		s.logger.WithError(err).WithField("run_id", runID).Error("Failed to write audit log")
	}
}
