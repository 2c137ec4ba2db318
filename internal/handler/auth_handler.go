package handler

import (
	"net/http"

	"onlearn/internal/model"
	"onlearn/internal/service"
	"onlearn/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles login, logout and the current-user endpoint
type AuthHandler struct {
	service service.AuthService
	cookie  *utils.SessionCookie
	logger  *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, cookie *utils.SessionCookie, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: s, cookie: cookie, logger: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err, "to login")
		return
	}

	h.cookie.Set(c, token)
	h.logger.WithFields(logrus.Fields{"user_id": user.ID}).Info("user logged in")
	c.JSON(http.StatusOK, model.LoginResponse{
		Success: true,
		User:    user,
		Message: "Login successful",
	})
}

// Logout always succeeds; it only clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookie.Clear(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := getAuthUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg gin.IRouter, authMW gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", authMW, h.Me)
}
