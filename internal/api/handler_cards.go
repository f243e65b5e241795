package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princechakusa/Card-management-system/internal/model"
)

type addCardRequest struct {
	UnitID string `json:"unitId"`
	Type   string `json:"type"`
	Number string `json:"number"`
	Status string `json:"status"`
}

// PostCard handles POST /api/cards.
func (h *Handler) PostCard(c *gin.Context) {
	var req addCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Status == "" {
		req.Status = string(model.StatusAvailable)
	}

	card, err := h.store.AddCard(req.UnitID, req.Type, req.Number, model.Status(req.Status))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	if !h.flush(c) {
		return
	}
	c.JSON(http.StatusCreated, card)
}

type assignCardRequest struct {
	AssignedTo string `json:"assignedTo"`
	Status     string `json:"status"`
}

// AssignCard handles POST /api/cards/:card_id/assign.
func (h *Handler) AssignCard(c *gin.Context) {
	var req assignCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Status == "" {
		req.Status = string(model.StatusAssigned)
	}

	card, err := h.store.AssignCard(c.Param("card_id"), req.AssignedTo, model.Status(req.Status))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	if !h.flush(c) {
		return
	}
	c.JSON(http.StatusOK, card)
}

// ReturnCard handles POST /api/cards/:card_id/return.
func (h *Handler) ReturnCard(c *gin.Context) {
	card, err := h.store.ReturnCard(c.Param("card_id"))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	if !h.flush(c) {
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCard handles DELETE /api/cards/:card_id. Deleting an unknown card
// succeeds; the operation is a no-op.
func (h *Handler) DeleteCard(c *gin.Context) {
	h.store.DeleteCard(c.Param("card_id"))
	if !h.flush(c) {
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCardHistory handles GET /api/cards/:card_id/history.
func (h *Handler) GetCardHistory(c *gin.Context) {
	card, err := h.store.Card(c.Param("card_id"))
	if err != nil {
		abortStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, card.History)
}
