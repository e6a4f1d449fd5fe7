package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tkarimov/pricewatch/internal/models"
	"github.com/tkarimov/pricewatch/internal/repository"
)

// minRefreshInterval is the smallest accepted refresh interval, in
// seconds.
const minRefreshInterval = 5

type createProductRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// updateSettingsRequest uses pointers so partial updates leave omitted
// fields untouched.
type updateSettingsRequest struct {
	RefreshInterval *int   `json:"refresh_interval"`
	TargetPrice     *int64 `json:"target_price"`
	AlarmEnabled    *bool  `json:"alarm_enabled"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// listProducts returns all products decorated with their latest cached
// outcomes.
func (s *Server) listProducts(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list products", "error", err)
		fail(c, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": s.cache.Decorate(products)})
}

// createProduct validates and stores a new product, then scrapes it
// synchronously so the response already carries a price outcome.
// Validation happens before any scrape is attempted.
func (s *Server) createProduct(c *gin.Context) {
	ctx := c.Request.Context()

	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "name and URL are required")
		return
	}

	name := strings.TrimSpace(req.Name)
	url := strings.TrimSpace(req.URL)
	if name == "" || url == "" {
		fail(c, http.StatusBadRequest, "name and URL cannot be empty")
		return
	}

	if !strings.Contains(url, s.siteDomain) {
		fail(c, http.StatusBadRequest, fmt.Sprintf("URL must be from %s", s.siteDomain))
		return
	}

	product, err := s.products.CreateProduct(ctx, name, url)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateURL) {
			fail(c, http.StatusBadRequest, "product URL already exists")
			return
		}
		s.log.ErrorContext(ctx, "Failed to create product", "error", err)
		fail(c, http.StatusInternalServerError, "failed to save product")
		return
	}

	outcome := s.cache.UpdateOne(ctx, product)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": models.DecoratedProduct{Product: product, PriceOutcome: &outcome},
	})
}

// deleteProduct removes a product and evicts its cache entry.
func (s *Server) deleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}

	deleted, err := s.products.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			fail(c, http.StatusBadRequest, "invalid product id")
			return
		}
		s.log.ErrorContext(ctx, "Failed to delete product", "id", id, "error", err)
		fail(c, http.StatusInternalServerError, "failed to delete product")
		return
	}

	s.cache.Evict(deleted.URL)

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

// getSettings returns the current monitoring parameters.
func (s *Server) getSettings(c *gin.Context) {
	ctx := c.Request.Context()

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load settings", "error", err)
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// updateSettings applies a partial settings update.
func (s *Server) updateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "no data provided")
		return
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load settings", "error", err)
		fail(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	if req.RefreshInterval != nil {
		if *req.RefreshInterval < minRefreshInterval {
			fail(c, http.StatusBadRequest,
				fmt.Sprintf("refresh interval must be at least %d seconds", minRefreshInterval))
			return
		}
		settings.RefreshInterval = *req.RefreshInterval
	}
	if req.TargetPrice != nil {
		settings.TargetPrice = *req.TargetPrice
	}
	if req.AlarmEnabled != nil {
		settings.AlarmEnabled = *req.AlarmEnabled
	}

	if err = s.settings.UpdateSettings(ctx, settings); err != nil {
		s.log.ErrorContext(ctx, "Failed to save settings", "error", err)
		fail(c, http.StatusInternalServerError, "failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// triggerScrape starts a batch scrape of every product in the background
// and returns immediately.
func (s *Server) triggerScrape(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list products", "error", err)
		fail(c, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	if len(products) == 0 {
		fail(c, http.StatusBadRequest, "no products to scrape")
		return
	}

	// Fire and forget: the batch outlives this request, so it runs on
	// its own context.
	go func() {
		s.cache.UpdateBatch(context.Background(), products)
	}()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "scraping started"})
}
