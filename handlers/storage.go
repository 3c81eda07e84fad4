package handlers

import (
	"net/http"

	"ongkit/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 10 MB covers logos, cover images and transparency PDFs.
const maxUploadBytes = 10 << 20

// UploadHandler handles POST /api/storage/upload (multipart "file"). The
// returned URL is what editors write into image and document fields.
func (h *HandlerBundle) UploadHandler(c *gin.Context) {
	logger := getLogger(c)
	octx, _ := middleware.GetOrgContext(c)

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the 10 MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	defer file.Close()

	result, err := h.Storage.Upload(c.Request.Context(), file, "ongkit/"+octx.OrgID)
	if err != nil {
		logger.Error("Upload failed", zap.String("orgId", octx.OrgID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusCreated, result)
}
