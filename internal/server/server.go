// Package server exposes the HTTP JSON API for product and settings
// management. It validates requests and delegates all scraping to the
// shared price cache.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Server wires the handlers to their collaborators.
type Server struct {
	log        *slog.Logger
	products   ProductRepository
	settings   SettingsRepository
	cache      Cache
	siteDomain string
}

// New creates a server. siteDomain is the substring every product URL
// must contain (the target site's domain).
func New(log *slog.Logger, products ProductRepository, settings SettingsRepository,
	cache Cache, siteDomain string,
) *Server {
	return &Server{
		log:        log,
		products:   products,
		settings:   settings,
		cache:      cache,
		siteDomain: siteDomain,
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.GET("/products", s.listProducts)
	api.POST("/products", s.createProduct)
	api.DELETE("/products/:id", s.deleteProduct)
	api.GET("/settings", s.getSettings)
	api.POST("/settings", s.updateSettings)
	api.POST("/scrape", s.triggerScrape)

	return router
}
