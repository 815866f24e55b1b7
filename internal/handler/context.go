package handler

import (
	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/middleware"
	"hostel-admin-svc/pkg/utils"
)

// MustCurrentUser reads the authenticated identity from the request context,
// writing a 401 and returning nil when it is absent.
func MustCurrentUser(c *gin.Context) *middleware.CurrentUser {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return nil
	}
	return &user
}
