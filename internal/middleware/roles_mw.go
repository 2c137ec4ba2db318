package middleware

import (
	"net/http"

	"onlearn/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles.
// It must run after SessionAuthMiddleware.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := AuthUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		for _, allowedRole := range allowedRoles {
			if user.Role == allowedRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}

// StaffMiddleware allows teachers and admins
func StaffMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleTeacher, model.RoleAdmin)
}
