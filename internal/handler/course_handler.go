package handler

import (
	"net/http"
	"strconv"

	"onlearn/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CourseHandler serves the public course catalog
type CourseHandler struct {
	service service.CourseService
	logger  *logrus.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(s service.CourseService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{service: s, logger: logger}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	var publishedOnly *bool
	if param, ok := c.GetQuery("published_only"); ok {
		v, err := strconv.ParseBool(param)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid value for 'published_only', use true or false"})
			return
		}
		publishedOnly = &v
	}

	courses, err := h.service.ListCourses(c.Request.Context(), publishedOnly)
	if err != nil {
		respondError(c, h.logger, err, "to retrieve courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id", "course", service.ErrCourseNotFound)
	if !ok {
		return
	}

	course, err := h.service.GetCourse(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, h.logger, err, "to retrieve course")
		return
	}
	c.JSON(http.StatusOK, course)
}

// RegisterCourseRoutes registers catalog routes; none require a session
func (h *CourseHandler) RegisterCourseRoutes(rg gin.IRouter) {
	rg.GET("/courses", h.ListCourses)
	rg.GET("/courses/:id", h.GetCourse)
}
