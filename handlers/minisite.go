package handlers

import (
	"errors"
	"net/http"

	"ongkit/middleware"
	"ongkit/services/minisite"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetConfigHandler handles GET /api/minisite/config.
func (h *HandlerBundle) GetConfigHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	cfg, err := h.MiniSite.GetConfig(octx.OrgID)
	if err != nil {
		logger.Error("Failed to load mini-site config", zap.String("orgId", octx.OrgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load configuration"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfigHandler handles PUT /api/minisite/config with a generic
// partial update.
func (h *HandlerBundle) UpdateConfigHandler(c *gin.Context) {
	octx, _ := middleware.GetOrgContext(c)

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	cfg, err := h.MiniSite.UpdateConfig(octx.OrgID, raw)
	if err != nil {
		h.writeUpdateError(c, octx.OrgID, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateEditorHandler returns a handler for one editor surface's scoped
// partial update (PUT /api/minisite/:editor).
func (h *HandlerBundle) UpdateEditorHandler(editor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		octx, _ := middleware.GetOrgContext(c)

		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		cfg, err := h.MiniSite.UpdateEditorSection(octx.OrgID, editor, raw)
		if err != nil {
			h.writeUpdateError(c, octx.OrgID, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

func (h *HandlerBundle) writeUpdateError(c *gin.Context, orgID string, err error) {
	logger := getLogger(c)
	switch {
	case minisite.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, minisite.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Mini-site update failed", zap.String("orgId", orgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
	}
}
