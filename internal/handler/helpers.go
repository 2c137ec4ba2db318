package handler

import (
	"errors"
	"net/http"
	"strconv"

	"onlearn/internal/middleware"
	"onlearn/internal/model"
	"onlearn/internal/service"
	"onlearn/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Helper to get the authenticated user from context
func getAuthUser(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.AuthUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}
	return user, true
}

// parseIDParam reads an integer path parameter. Non-numeric input is a 422;
// integers that cannot name a stored row (ids are positive int4) answer
// 404 with notFound.
func parseIDParam(c *gin.Context, name, label string, notFound error) (int, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 32)
	if errors.Is(err, strconv.ErrSyntax) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid " + label + " ID"})
		return 0, false
	}
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": capitalize(notFound.Error())})
		return 0, false
	}
	return int(id), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request", "details": validation.ToDetails(err)})
		return false
	}
	return true
}

// respondError maps service errors to HTTP statuses. Unknown errors are
// logged and reported as a bare 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error, action string) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrEnrollmentNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, service.ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, service.ErrEmptyComment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": capitalize(err.Error())})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrSessionInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": capitalize(err.Error())})
	default:
		fields := logrus.Fields{"request_id": c.GetString(middleware.RequestIDKey), "error": err.Error()}
		if user, ok := middleware.AuthUser(c); ok {
			fields["user_id"] = user.ID
		}
		logger.WithFields(fields).Errorf("Error %s", action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed " + action})
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
