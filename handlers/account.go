package handlers

import (
	"errors"
	"net/http"

	"ongkit/middleware"
	"ongkit/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler handles POST /auth/register.
func (h *HandlerBundle) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Accounts.Register(req)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /auth/login.
func (h *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeTokenHandler handles POST /api/auth/revoke (logout everywhere).
func (h *HandlerBundle) RevokeTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	if err := h.Accounts.RevokeToken(octx.UserID); err != nil {
		logger.Error("Token revocation failed", zap.String("userId", octx.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// CreateOrganizationHandler handles POST /api/organizations.
func (h *HandlerBundle) CreateOrganizationHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	var req account.CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	org, err := h.Accounts.CreateOrganization(octx.UserID, req)
	if err != nil {
		logger.Warn("Organization creation failed", zap.String("userId", octx.UserID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, org)
}
