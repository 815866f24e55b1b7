package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hostel-admin-svc/pkg/jwt"
	"hostel-admin-svc/pkg/utils"
)

// currentUserKey is the gin context key carrying the authenticated identity
const currentUserKey = "currentUser"

// CurrentUser is the request-scoped authenticated identity resolved from the
// session token. Handlers read it from the gin context instead of any
// ambient global state.
type CurrentUser struct {
	ID    uint
	Email string
	Role  string
}

// Auth validates the Bearer token and stores the authenticated identity in
// the request context
func Auth(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.UnauthorizedResponse(c, "Invalid authorization header format")
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				utils.UnauthorizedResponse(c, "Token expired")
				return
			}
			utils.UnauthorizedResponse(c, "Invalid token")
			return
		}

		c.Set(currentUserKey, CurrentUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated identity does not carry
// the required role. Role checks happen here, before dispatch, never inside
// handlers.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			utils.UnauthorizedResponse(c, "Authentication required")
			return
		}
		if user.Role != role {
			utils.ForbiddenResponse(c, "Insufficient role")
			return
		}
		c.Next()
	}
}

// GetCurrentUser reads the authenticated identity from the gin context
func GetCurrentUser(c *gin.Context) (CurrentUser, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return CurrentUser{}, false
	}
	user, ok := value.(CurrentUser)
	return user, ok
}
