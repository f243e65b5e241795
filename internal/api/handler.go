package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/princechakusa/Card-management-system/internal/persist"
	"github.com/princechakusa/Card-management-system/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   *store.Store
	persist persist.Adapter
	cache   *cache.Cache
}

// NewHandler creates a new API handler.
func NewHandler(s *store.Store, p persist.Adapter, responseCache *cache.Cache) *Handler {
	return &Handler{
		store:   s,
		persist: p,
		cache:   responseCache,
	}
}

// flush persists the current snapshot and invalidates cached GET responses.
// The in-memory store keeps the mutation even when the flush fails.
func (h *Handler) flush(c *gin.Context) bool {
	if err := h.persist.Save(c.Request.Context(), h.store.Snapshot()); err != nil {
		log.Printf("failed to persist store: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to persist changes"})
		return false
	}
	if h.cache != nil {
		h.cache.Flush()
	}
	return true
}

// abortStoreError maps store errors onto HTTP statuses.
func abortStoreError(c *gin.Context, err error) {
	var vErr *store.ValidationError
	if errors.As(err, &vErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}
	var nfErr *store.NotFoundError
	if errors.As(err, &nfErr) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
