package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// FeedbackHandler handles feedback HTTP requests
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	logger          *logger.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackService, logger *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// FeedbackRequest is the feedback submission payload
type FeedbackRequest struct {
	Subject string `json:"subject" binding:"required" example:"Water supply"`
	Message string `json:"message" binding:"required" example:"No hot water on the second floor."`
}

// SubmitFeedback handles POST /api/v1/student/feedback
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback"
// @Success 201 {object} utils.APIResponse "Feedback submitted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Router /api/v1/student/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	current := MustCurrentUser(c)
	if current == nil {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	feedback, err := h.feedbackService.Submit(current.ID, req.Subject, req.Message)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", current.ID).Error("Failed to submit feedback")
		utils.InternalServerErrorResponse(c, "Failed to submit feedback", err)
		return
	}

	utils.CreatedResponse(c, "Feedback submitted successfully", feedback)
}

// ListFeedback handles GET /api/v1/admin/feedback and GET /api/v1/warden/feedback
// @Summary List feedback entries
// @Tags feedback
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse "Feedback retrieved successfully"
// @Router /api/v1/admin/feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)

	entries, total, err := h.feedbackService.List(page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list feedback")
		utils.InternalServerErrorResponse(c, "Failed to list feedback", err)
		return
	}

	utils.SuccessResponse(c, "Feedback retrieved successfully", gin.H{
		"feedback": entries,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
