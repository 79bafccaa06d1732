package middleware

import (
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// GetUserIDFromContext retrieves the authenticated user's ID, set by the auth
// middleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetUserRoleFromContext retrieves the authenticated user's role claim.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleCtxKey).(domain.UserRole)
	return role, ok && role != ""
}
