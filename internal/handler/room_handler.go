package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// RoomHandler handles room registry and assignment HTTP requests
type RoomHandler struct {
	roomService       service.RoomService
	assignmentService service.AssignmentService
	logger            *logger.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomService, assignmentService service.AssignmentService, logger *logger.Logger) *RoomHandler {
	return &RoomHandler{
		roomService:       roomService,
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// RoomRequest is the create/update room payload
type RoomRequest struct {
	Number           string `json:"number" binding:"required" example:"A-101"`
	Capacity         int    `json:"capacity" binding:"required" example:"4"`
	UnderMaintenance bool   `json:"under_maintenance" example:"false"`
}

// AssignRequest is the room assignment payload
type AssignRequest struct {
	StudentID uint `json:"student_id" binding:"required" example:"7"`
}

// CreateRoom handles POST /api/v1/admin/rooms
// @Summary Create a room
// @Description Create a new room with the given number and capacity
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room details"
// @Success 201 {object} utils.APIResponse "Room created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 409 {object} utils.APIResponse "Room number already exists"
// @Router /api/v1/admin/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	room, err := h.roomService.Create(req.Number, req.Capacity, req.UnderMaintenance)
	if err != nil {
		h.logger.WithError(err).WithField("number", req.Number).Error("Failed to create room")
		RespondError(c, "Failed to create room", err)
		return
	}

	utils.CreatedResponse(c, "Room created successfully", room)
}

// ListRooms handles GET /api/v1/admin/rooms
// @Summary List rooms
// @Description List all rooms with their computed availability
// @Tags rooms
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response.RoomResponse} "Rooms retrieved successfully"
// @Router /api/v1/admin/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.List()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list rooms")
		utils.InternalServerErrorResponse(c, "Failed to list rooms", err)
		return
	}

	utils.SuccessResponse(c, "Rooms retrieved successfully", rooms)
}

// GetRoom handles GET /api/v1/admin/rooms/:id
// @Summary Get a room
// @Description Get a room by id with its computed availability
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} utils.APIResponse{data=response.RoomResponse} "Room retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Router /api/v1/admin/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	room, err := h.roomService.GetByID(id)
	if err != nil {
		RespondError(c, "Failed to get room", err)
		return
	}

	utils.SuccessResponse(c, "Room retrieved successfully", room)
}

// UpdateRoom handles PUT /api/v1/admin/rooms/:id
// @Summary Update a room
// @Description Edit room number, capacity, or maintenance flag. Capacity cannot drop below current occupancy.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body RoomRequest true "Room details"
// @Success 200 {object} utils.APIResponse "Room updated successfully"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 409 {object} utils.APIResponse "Capacity below occupancy"
// @Router /api/v1/admin/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	room, err := h.roomService.Update(id, req.Number, req.Capacity, req.UnderMaintenance)
	if err != nil {
		h.logger.WithError(err).WithField("room_id", id).Error("Failed to update room")
		RespondError(c, "Failed to update room", err)
		return
	}

	utils.SuccessResponse(c, "Room updated successfully", room)
}

// DeleteRoom handles DELETE /api/v1/admin/rooms/:id
// @Summary Delete a room
// @Description Delete an empty room. Rooms with occupants are rejected.
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} utils.APIResponse "Room deleted successfully"
// @Failure 404 {object} utils.APIResponse "Room not found"
// @Failure 409 {object} utils.APIResponse "Room still has occupants"
// @Router /api/v1/admin/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	if err := h.roomService.Delete(id); err != nil {
		h.logger.WithError(err).WithField("room_id", id).Error("Failed to delete room")
		RespondError(c, "Failed to delete room", err)
		return
	}

	utils.SuccessResponse(c, "Room deleted successfully", nil)
}

// AssignStudent handles POST /api/v1/admin/rooms/:id/assign
// @Summary Assign a student to a room
// @Description Move a student into the room, enforcing capacity and maintenance rules
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body AssignRequest true "Student to assign"
// @Success 200 {object} utils.APIResponse "Student assigned successfully"
// @Failure 404 {object} utils.APIResponse "Room or student not found"
// @Failure 409 {object} utils.APIResponse "Room unavailable or student already assigned"
// @Router /api/v1/admin/rooms/{id}/assign [post]
func (h *RoomHandler) AssignStudent(c *gin.Context) {
	roomID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid room ID", err)
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	if err := h.assignmentService.Assign(req.StudentID, roomID); err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"student_id": req.StudentID,
			"room_id":    roomID,
		}).Error("Failed to assign student")
		RespondError(c, "Failed to assign student", err)
		return
	}

	utils.SuccessResponse(c, "Student assigned successfully", nil)
}

// UnassignStudent handles POST /api/v1/admin/rooms/unassign
// @Summary Unassign a student from their room
// @Description Remove a student from their current room and release the slot
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body AssignRequest true "Student to unassign"
// @Success 200 {object} utils.APIResponse "Student unassigned successfully"
// @Failure 404 {object} utils.APIResponse "Student not found"
// @Failure 409 {object} utils.APIResponse "Student not assigned to any room"
// @Router /api/v1/admin/rooms/unassign [post]
func (h *RoomHandler) UnassignStudent(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	if err := h.assignmentService.Unassign(req.StudentID); err != nil {
		h.logger.WithError(err).WithField("student_id", req.StudentID).Error("Failed to unassign student")
		RespondError(c, "Failed to unassign student", err)
		return
	}

	utils.SuccessResponse(c, "Student unassigned successfully", nil)
}

// ExportRooms handles GET /api/v1/admin/rooms/export
// @Summary Export the room occupancy report
// @Description Download the room occupancy report as an Excel file
// @Tags rooms
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Excel file"
// @Router /api/v1/admin/rooms/export [get]
func (h *RoomHandler) ExportRooms(c *gin.Context) {
	content, filename, err := h.roomService.ExportRooms()
	if err != nil {
		h.logger.WithError(err).Error("Failed to export rooms")
		utils.InternalServerErrorResponse(c, "Failed to export rooms", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
