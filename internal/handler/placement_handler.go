package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// PlacementHandler handles placement listing HTTP requests
type PlacementHandler struct {
	placementService service.PlacementService
	logger           *logger.Logger
}

// NewPlacementHandler creates a new placement handler
func NewPlacementHandler(placementService service.PlacementService, logger *logger.Logger) *PlacementHandler {
	return &PlacementHandler{
		placementService: placementService,
		logger:           logger,
	}
}

// PlacementRequest is the create/update placement payload
type PlacementRequest struct {
	Company     string     `json:"company" binding:"required" example:"Acme Corp"`
	RoleTitle   string     `json:"role_title" binding:"required" example:"Backend Engineer"`
	Package     string     `json:"package" example:"12 LPA"`
	Eligibility string     `json:"eligibility" example:"CGPA >= 7.0"`
	Deadline    *time.Time `json:"deadline"`
	Link        string     `json:"link" example:"https://careers.acme.example"`
}

// CreatePlacement handles POST /api/v1/admin/placements
// @Summary Create a placement listing
// @Tags placements
// @Accept json
// @Produce json
// @Param request body PlacementRequest true "Placement details"
// @Success 201 {object} utils.APIResponse "Placement created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Router /api/v1/admin/placements [post]
func (h *PlacementHandler) CreatePlacement(c *gin.Context) {
	var req PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	placement := &models.Placement{
		Company:     req.Company,
		RoleTitle:   req.RoleTitle,
		Package:     req.Package,
		Eligibility: req.Eligibility,
		Deadline:    req.Deadline,
		Link:        req.Link,
	}
	if err := h.placementService.Create(c.Request.Context(), placement); err != nil {
		h.logger.WithError(err).WithField("company", req.Company).Error("Failed to create placement")
		utils.InternalServerErrorResponse(c, "Failed to create placement", err)
		return
	}

	utils.CreatedResponse(c, "Placement created successfully", placement)
}

// ListPlacements handles GET /api/v1/student/placements
// @Summary List placement listings
// @Description Paginated, searchable placement listings
// @Tags placements
// @Produce json
// @Param search query string false "Search by company or role"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse "Placements retrieved successfully"
// @Router /api/v1/student/placements [get]
func (h *PlacementHandler) ListPlacements(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)
	search := c.Query("search")

	placements, total, err := h.placementService.Search(search, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list placements")
		utils.InternalServerErrorResponse(c, "Failed to list placements", err)
		return
	}

	utils.SuccessResponse(c, "Placements retrieved successfully", gin.H{
		"placements": placements,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}

// UpdatePlacement handles PUT /api/v1/admin/placements/:id
// @Summary Update a placement listing
// @Tags placements
// @Accept json
// @Produce json
// @Param id path int true "Placement ID"
// @Param request body PlacementRequest true "Placement details"
// @Success 200 {object} utils.APIResponse "Placement updated successfully"
// @Failure 404 {object} utils.APIResponse "Placement not found"
// @Router /api/v1/admin/placements/{id} [put]
func (h *PlacementHandler) UpdatePlacement(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid placement ID", err)
		return
	}

	var req PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	placement, err := h.placementService.Update(id, req.Company, req.RoleTitle, req.Package, req.Eligibility, req.Deadline, req.Link)
	if err != nil {
		h.logger.WithError(err).WithField("placement_id", id).Error("Failed to update placement")
		RespondError(c, "Failed to update placement", err)
		return
	}

	utils.SuccessResponse(c, "Placement updated successfully", placement)
}

// DeletePlacement handles DELETE /api/v1/admin/placements/:id
// @Summary Delete a placement listing
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} utils.APIResponse "Placement deleted successfully"
// @Failure 404 {object} utils.APIResponse "Placement not found"
// @Router /api/v1/admin/placements/{id} [delete]
func (h *PlacementHandler) DeletePlacement(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid placement ID", err)
		return
	}

	if err := h.placementService.Delete(id); err != nil {
		h.logger.WithError(err).WithField("placement_id", id).Error("Failed to delete placement")
		RespondError(c, "Failed to delete placement", err)
		return
	}

	utils.SuccessResponse(c, "Placement deleted successfully", nil)
}
