package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// StudentHandler handles student account HTTP requests
type StudentHandler struct {
	userService service.UserService
	roomService service.RoomService
	logger      *logger.Logger
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(userService service.UserService, roomService service.RoomService, logger *logger.Logger) *StudentHandler {
	return &StudentHandler{
		userService: userService,
		roomService: roomService,
		logger:      logger,
	}
}

// CreateStudentRequest is the student onboarding payload
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required" example:"John Doe"`
	Email string `json:"email" binding:"required,email" example:"john.doe@example.com"`
}

// UpdateStudentRequest is the student edit payload
type UpdateStudentRequest struct {
	Name  string `json:"name" binding:"required" example:"John Doe"`
	Email string `json:"email" binding:"required,email" example:"john.doe@example.com"`
}

// CreateStudent handles POST /api/v1/admin/students
// @Summary Create a student account
// @Description Onboard a student with a generated password; credentials are emailed. Account creation succeeds even when the email fails.
// @Tags students
// @Accept json
// @Produce json
// @Param request body CreateStudentRequest true "Student details"
// @Success 201 {object} utils.APIResponse{data=response.CreateStudentResponse} "Student created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Router /api/v1/admin/students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	result, err := h.userService.CreateStudent(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to create student")
		RespondError(c, "Failed to create student", err)
		return
	}

	utils.CreatedResponse(c, "Student created successfully", result)
}

// ListStudents handles GET /api/v1/admin/students
// @Summary List student accounts
// @Tags students
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.StudentResponse} "Students retrieved successfully"
// @Router /api/v1/admin/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.userService.ListStudents()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list students")
		utils.InternalServerErrorResponse(c, "Failed to list students", err)
		return
	}

	utils.SuccessResponse(c, "Students retrieved successfully", students)
}

// GetStudent handles GET /api/v1/admin/students/:id
// @Summary Get a student account
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} utils.APIResponse{data=response.StudentResponse} "Student retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Student not found"
// @Router /api/v1/admin/students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid student ID", err)
		return
	}

	student, err := h.userService.GetStudent(id)
	if err != nil {
		RespondError(c, "Failed to get student", err)
		return
	}

	utils.SuccessResponse(c, "Student retrieved successfully", student)
}

// UpdateStudent handles PUT /api/v1/admin/students/:id
// @Summary Update a student account
// @Description Edit name and email. Role is immutable after creation.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body UpdateStudentRequest true "Student details"
// @Success 200 {object} utils.APIResponse{data=response.StudentResponse} "Student updated successfully"
// @Failure 404 {object} utils.APIResponse "Student not found"
// @Failure 409 {object} utils.APIResponse "Email already registered"
// @Router /api/v1/admin/students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid student ID", err)
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	student, err := h.userService.UpdateStudent(id, req.Name, req.Email)
	if err != nil {
		h.logger.WithError(err).WithField("student_id", id).Error("Failed to update student")
		RespondError(c, "Failed to update student", err)
		return
	}

	utils.SuccessResponse(c, "Student updated successfully", student)
}

// DeleteStudent handles DELETE /api/v1/admin/students/:id
// @Summary Delete a student account
// @Description Remove a student account. An assigned student is unassigned from their room first.
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} utils.APIResponse "Student deleted successfully"
// @Failure 404 {object} utils.APIResponse "Student not found"
// @Router /api/v1/admin/students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid student ID", err)
		return
	}

	if err := h.userService.DeleteStudent(id); err != nil {
		h.logger.WithError(err).WithField("student_id", id).Error("Failed to delete student")
		RespondError(c, "Failed to delete student", err)
		return
	}

	utils.SuccessResponse(c, "Student deleted successfully", nil)
}

// GetOwnRoom handles GET /api/v1/student/room
// @Summary Get the authenticated student's room
// @Tags students
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.RoomResponse} "Room retrieved successfully"
// @Failure 404 {object} utils.APIResponse "No room assigned"
// @Router /api/v1/student/room [get]
func (h *StudentHandler) GetOwnRoom(c *gin.Context) {
	current := MustCurrentUser(c)
	if current == nil {
		return
	}

	student, err := h.userService.GetStudent(current.ID)
	if err != nil {
		RespondError(c, "Failed to get student", err)
		return
	}
	if student.AssignedRoomID == nil {
		utils.NotFoundResponse(c, "No room assigned")
		return
	}

	room, err := h.roomService.GetByID(*student.AssignedRoomID)
	if err != nil {
		RespondError(c, "Failed to get room", err)
		return
	}

	utils.SuccessResponse(c, "Room retrieved successfully", room)
}
