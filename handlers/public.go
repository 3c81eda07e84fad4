package handlers

import (
	"errors"
	"net/http"
	"time"

	"ongkit/services/minisite"
	"ongkit/services/render"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicSiteHandler handles GET /s/:slug, the server-rendered public page.
func (h *HandlerBundle) PublicSiteHandler(c *gin.Context) {
	logger := getLogger(c)
	slug := c.Param("slug")

	cfg, org, err := h.MiniSite.PublicSite(slug)
	if err != nil {
		if errors.Is(err, minisite.ErrNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", gin.H{"slug": slug})
			return
		}
		logger.Error("Failed to resolve public site", zap.String("slug", slug), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	view := render.BuildView(cfg, org, time.Now())
	c.HTML(http.StatusOK, "public.html", view)
}
