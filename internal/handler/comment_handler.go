package handler

import (
	"net/http"

	"onlearn/internal/model"
	"onlearn/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CommentHandler handles course comments
type CommentHandler struct {
	service service.CommentService
	logger  *logrus.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(s service.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{service: s, logger: logger}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id", "course", service.ErrCourseNotFound)
	if !ok {
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, h.logger, err, "to retrieve comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "id", "course", service.ErrCourseNotFound)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), user, courseID, req.Text)
	if err != nil {
		respondError(c, h.logger, err, "to create comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "id", "comment", service.ErrCommentNotFound)
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), user, commentID); err != nil {
		respondError(c, h.logger, err, "to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterCommentRoutes registers comment routes
func (h *CommentHandler) RegisterCommentRoutes(rg gin.IRouter, authMW gin.HandlerFunc) {
	rg.GET("/courses/:id/comments", h.ListComments)
	rg.POST("/courses/:id/comments", authMW, h.CreateComment)
	rg.DELETE("/comments/:id", authMW, h.DeleteComment)
}
