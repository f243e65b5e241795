package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princechakusa/Card-management-system/internal/export"
)

// GetExport handles GET /api/export, serving the card set as a CSV
// download.
func (h *Handler) GetExport(c *gin.Context) {
	csv := export.CSV(h.store.Snapshot())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(http.StatusOK, export.ContentType, []byte(csv))
}
