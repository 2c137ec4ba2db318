package handler

import (
	"context"
	"net/http"
	"time"

	"onlearn/internal/middleware"
	"onlearn/internal/service"
	"onlearn/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterOptions carries everything the HTTP layer depends on
type RouterOptions struct {
	Logger      *logrus.Logger
	CORSOrigins []string
	HTTPLog     bool
	Cookie      *utils.SessionCookie

	Auth        service.AuthService
	Courses     service.CourseService
	Enrollments service.EnrollmentService
	Comments    service.CommentService

	// Ping reports store health for /health; nil skips the check
	Ping func(ctx context.Context) error
}

// NewRouter builds the gin engine with global middleware and all routes
func NewRouter(opts RouterOptions) *gin.Engine {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if opts.HTTPLog {
		router.Use(gin.Logger())
	}

	authMW := middleware.SessionAuthMiddleware(opts.Auth, opts.Logger)
	staffMW := middleware.StaffMiddleware()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Onlearn API")
	})

	router.GET("/health", func(c *gin.Context) {
		if opts.Ping != nil {
			if err := opts.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	NewAuthHandler(opts.Auth, opts.Cookie, opts.Logger).RegisterAuthRoutes(router, authMW)
	NewCourseHandler(opts.Courses, opts.Logger).RegisterCourseRoutes(router)
	NewEnrollmentHandler(opts.Enrollments, opts.Logger).RegisterEnrollmentRoutes(router, authMW, staffMW)
	NewCommentHandler(opts.Comments, opts.Logger).RegisterCommentRoutes(router, authMW)

	return router
}
