package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princechakusa/Card-management-system/internal/query"
)

// GetOverview handles GET /api/overview: stats, filtered rows, and per-unit
// aggregates in one response, the way a view refreshes in one pass.
func (h *Handler) GetOverview(c *gin.Context) {
	criteria := query.Criteria{
		UnitID: c.Query("unit_id"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("q"),
	}

	c.JSON(http.StatusOK, query.Render(h.store.Snapshot(), criteria))
}
