package handlers

import (
	"errors"
	"net/http"

	"ongkit/services/donation"
	"ongkit/services/minisite"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateDonationHandler handles POST /p/:slug/donate from the public page.
func (h *HandlerBundle) CreateDonationHandler(c *gin.Context) {
	logger := getLogger(c)
	slug := c.Param("slug")

	var req donation.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	intent, err := h.Donations.CreateIntent(slug, req)
	if err != nil {
		if errors.Is(err, minisite.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pagina nu există"})
			return
		}
		if errors.Is(err, donation.ErrPaymentsNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Donation intent failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, intent)
}
