package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/princechakusa/Card-management-system/config"
	"github.com/princechakusa/Card-management-system/internal/mw"
	"github.com/princechakusa/Card-management-system/internal/persist"
	"github.com/princechakusa/Card-management-system/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s *store.Store, p persist.Adapter, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	responseCache := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(responseCache, cacheTTL)

	handler := NewHandler(s, p, responseCache)
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/overview", caching, handler.GetOverview)
		api.GET("/units", caching, handler.GetUnits)
		api.POST("/units", handler.PostUnit)

		api.POST("/cards", handler.PostCard)
		api.POST("/cards/:card_id/assign", handler.AssignCard)
		api.POST("/cards/:card_id/return", handler.ReturnCard)
		api.DELETE("/cards/:card_id", handler.DeleteCard)
		api.GET("/cards/:card_id/history", handler.GetCardHistory)

		api.GET("/export", handler.GetExport)
	}

	return r
}
