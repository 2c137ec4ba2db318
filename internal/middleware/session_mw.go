package middleware

import (
	"errors"
	"net/http"

	"onlearn/internal/model"
	"onlearn/internal/service"
	"onlearn/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const AuthUserKey = "authUser"

// SessionAuthMiddleware resolves the session cookie into a user and stores it
// in the context. Requests without a valid session get 401.
func SessionAuthMiddleware(auth service.AuthService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		user, err := auth.ResolveSession(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			case errors.Is(err, service.ErrSessionInvalid):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			default:
				logger.WithFields(logrus.Fields{"request_id": c.GetString(RequestIDKey), "error": err.Error()}).
					Error("failed to resolve session")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// AuthUser returns the user stored by SessionAuthMiddleware
func AuthUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}
