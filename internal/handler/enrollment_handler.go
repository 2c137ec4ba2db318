package handler

import (
	"net/http"

	"onlearn/internal/model"
	"onlearn/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EnrollmentHandler handles enrollment related requests
type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  *logrus.Logger
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(s service.EnrollmentService, logger *logrus.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{service: s, logger: logger}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	var req model.EnrollRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), user, req.CourseID)
	if err != nil {
		respondError(c, h.logger, err, "to create enrollment")
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) GetMyCourses(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	list, err := h.service.ListMyCourses(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.logger, err, "to retrieve courses")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetUserCourses lets staff look at any user's enrollments
func (h *EnrollmentHandler) GetUserCourses(c *gin.Context) {
	userID, ok := parseIDParam(c, "id", "user", service.ErrUserNotFound)
	if !ok {
		return
	}

	list, err := h.service.ListUserCourses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "to retrieve user courses")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}

	enrollmentID, ok := parseIDParam(c, "id", "enrollment", service.ErrEnrollmentNotFound)
	if !ok {
		return
	}

	var req model.UpdateProgressRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.service.UpdateProgress(c.Request.Context(), user, enrollmentID, *req.ProgressPercent)
	if err != nil {
		respondError(c, h.logger, err, "to update progress")
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// RegisterEnrollmentRoutes registers enrollment routes
func (h *EnrollmentHandler) RegisterEnrollmentRoutes(rg gin.IRouter, authMW gin.HandlerFunc, staffMW gin.HandlerFunc) {
	rg.POST("/enroll", authMW, h.Enroll)
	rg.GET("/my-courses", authMW, h.GetMyCourses)
	rg.PATCH("/enrollments/:id/progress", authMW, h.UpdateProgress)
	rg.GET("/users/:id/courses", authMW, staffMW, h.GetUserCourses)
}
