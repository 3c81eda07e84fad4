package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ongkit/middleware"
	"ongkit/models"
	"ongkit/services/minisite"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitLeadHandler returns a handler for one public form kind
// (POST /p/:slug/volunteer, POST /p/:slug/newsletter). Forms post regular
// urlencoded bodies, so the response is a redirect back to the page.
func (h *HandlerBundle) SubmitLeadHandler(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		slug := c.Param("slug")

		_, org, err := h.MiniSite.PublicSite(slug)
		if err != nil {
			if errors.Is(err, minisite.ErrNotFound) {
				c.String(http.StatusNotFound, "Pagina nu există")
				return
			}
			logger.Error("Failed to resolve site for lead", zap.String("slug", slug), zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}

		email := strings.TrimSpace(c.PostForm("email"))
		if email == "" {
			c.String(http.StatusBadRequest, "E-mailul este obligatoriu")
			return
		}

		lead := &models.Lead{
			ID:        uuid.NewString(),
			OrgID:     org.ID,
			Kind:      kind,
			Name:      strings.TrimSpace(c.PostForm("name")),
			Email:     email,
			Message:   strings.TrimSpace(c.PostForm("message")),
			CreatedAt: time.Now(),
		}
		if err := h.Leads.Create(lead); err != nil {
			logger.Error("Failed to store lead", zap.String("orgId", org.ID), zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
		c.Redirect(http.StatusSeeOther, "/s/"+slug+"?submitted="+kind)
	}
}

// ListLeadsHandler handles GET /api/leads for the dashboard.
func (h *HandlerBundle) ListLeadsHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	leads, err := h.Leads.ListByOrg(octx.OrgID, c.Query("kind"), 500)
	if err != nil {
		logger.Error("Failed to list leads", zap.String("orgId", octx.OrgID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leads"})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}
