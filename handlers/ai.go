package handlers

import (
	"net/http"

	"ongkit/middleware"
	"ongkit/models"
	ai "ongkit/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIToolHandler handles POST /api/ai-tools. The generated text is returned
// for review; with apply=true the returned fields are also persisted into
// the mini-site configuration.
func (h *HandlerBundle) AIToolHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	var req models.AIToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !ai.KnownTool(req.Tool) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown AI tool: " + req.Tool})
		return
	}

	result, err := h.AI.RunTool(c.Request.Context(), req.Tool, req.Context)
	if err != nil {
		logger.Error("AI tool failed", zap.String("tool", req.Tool), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI tools are temporarily unavailable, please try again"})
		return
	}

	resp := models.AIToolResult{Result: result}
	if req.Apply {
		if _, err := h.MiniSite.ApplyAIResult(octx.OrgID, req.Tool, result); err != nil {
			logger.Error("Failed to apply AI result", zap.String("tool", req.Tool),
				zap.String("orgId", octx.OrgID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Generated text could not be saved"})
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
