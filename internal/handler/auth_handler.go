package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/models/response"
	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/jwt"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// AuthHandler handles login requests
type AuthHandler struct {
	userService service.UserService
	tokens      *jwt.Manager
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService service.UserService, tokens *jwt.Manager, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate with email and password, returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse{data=response.LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("email", req.Email).Warn("Login failed")
		RespondError(c, "Login failed", err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate session token")
		utils.InternalServerErrorResponse(c, "Failed to generate session token", err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in")

	utils.SuccessResponse(c, "Login successful", response.LoginResponse{
		Token: token,
		User: response.StudentResponse{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			AssignedRoomID: user.AssignedRoomID,
		},
	})
}
