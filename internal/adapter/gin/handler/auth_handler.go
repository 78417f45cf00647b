package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-console/internal/session"
)

// AuthHandler handles HTTP requests for the admin session lifecycle.
type AuthHandler struct {
	store *session.Store
	log   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(store *session.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{store: store, log: log}
}

// LoginRequest represents the HTTP request body for admin login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "username and password are required",
		})
		return
	}

	result := h.store.Login(c.Request.Context(), req.Username, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   result.Error,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    result.User,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.store.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "no active session",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	})
}
