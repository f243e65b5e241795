package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addUnitRequest struct {
	Name string `json:"name"`
}

// PostUnit handles POST /api/units.
func (h *Handler) PostUnit(c *gin.Context) {
	var req addUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	unit, err := h.store.AddUnit(req.Name)
	if err != nil {
		abortStoreError(c, err)
		return
	}
	if !h.flush(c) {
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// GetUnits handles GET /api/units.
func (h *Handler) GetUnits(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Units())
}
