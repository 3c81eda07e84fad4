package handlers

import (
	"net/http"
	"time"

	"ongkit/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSubscriptionHandler handles GET /api/subscription.
func (h *HandlerBundle) GetSubscriptionHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	sub, err := h.Subscriptions.Get(octx.OrgID)
	if err != nil {
		logger.Error("Failed to load subscription", zap.String("orgId", octx.OrgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UpdateSubscriptionHandler handles PUT /api/subscription. It writes the
// plan directly, used by the admin surface and post-checkout confirmation.
func (h *HandlerBundle) UpdateSubscriptionHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	var req struct {
		Plan      string     `json:"plan" binding:"required"`
		ExpiresAt *time.Time `json:"expiresAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sub, err := h.Subscriptions.SetPlan(octx.OrgID, req.Plan, req.ExpiresAt)
	if err != nil {
		logger.Warn("Plan update rejected", zap.String("orgId", octx.OrgID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CheckoutHandler handles POST /api/subscription/checkout and returns the
// Stripe Checkout URL for a paid plan upgrade.
func (h *HandlerBundle) CheckoutHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	var req struct {
		Plan       string `json:"plan" binding:"required"`
		SuccessURL string `json:"successUrl" binding:"required"`
		CancelURL  string `json:"cancelUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	url, err := h.Subscriptions.StartCheckout(octx.OrgID, req.Plan, req.SuccessURL, req.CancelURL)
	if err != nil {
		logger.Error("Checkout session failed", zap.String("orgId", octx.OrgID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkoutUrl": url})
}
