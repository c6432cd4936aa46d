package http

import (
	"golang-warga-nlp/internal/analyzer/config"

	"github.com/labstack/echo/v4"
)

// RegisterAPIRoutes mounts the handlers under /api, behind the rate limiter when enabled.
func RegisterAPIRoutes(e *echo.Echo, cfg *config.Config, nlpHandler *NLPHandler, crawlerHandler *CrawlerHandler) {
	api := e.Group("/api")
	if cfg.RateLimit.Enabled {
		api.Use(RateLimit(cfg.RateLimit))
	}

	nlpHandler.RegisterRoutes(api.Group("/nlp"))
	crawlerHandler.RegisterRoutes(api.Group("/crawler"))
}
