// Package pricecache holds the shared URL→outcome map that reconciles
// results from on-demand and periodic scrapes. It is the only shared
// mutable state in the core; every access goes through its single lock.
package pricecache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tkarimov/pricewatch/internal/models"
)

// Scraper is the scraping capability the cache drives. Network I/O
// always happens before the cache's lock is taken.
type Scraper interface {
	ScrapeOne(ctx context.Context, pageURL string) models.PriceOutcome
	ScrapeAll(ctx context.Context, products []models.Product) []models.ScrapedProduct
}

// Cache maps product URLs to their latest scrape outcome. Entries are
// overwritten wholesale on every scrape and removed when the owning
// product is deleted; the raw map is never exposed.
type Cache struct {
	log     *slog.Logger
	scraper Scraper

	mu      sync.Mutex
	entries map[string]models.PriceOutcome
}

// New creates an empty cache on top of the given scraper.
func New(log *slog.Logger, scraper Scraper) *Cache {
	return &Cache{
		log:     log,
		scraper: scraper,
		entries: make(map[string]models.PriceOutcome),
	}
}

// UpdateOne scrapes a single product and stores the outcome. Used on
// product creation for immediate feedback.
func (c *Cache) UpdateOne(ctx context.Context, product models.Product) models.PriceOutcome {
	outcome := c.scraper.ScrapeOne(ctx, product.URL)

	c.mu.Lock()
	c.entries[product.URL] = outcome
	c.mu.Unlock()

	return outcome
}

// UpdateBatch scrapes every product and commits all results as a single
// locked write, so readers observe either the previous batch or the new
// one in full, never a mix.
func (c *Cache) UpdateBatch(ctx context.Context, products []models.Product) []models.ScrapedProduct {
	results := c.scraper.ScrapeAll(ctx, products)

	c.mu.Lock()
	for _, r := range results {
		c.entries[r.URL] = r.Outcome
	}
	c.mu.Unlock()

	c.log.DebugContext(ctx, "Committed scrape batch to cache", "count", len(results))

	return results
}

// Decorate attaches the latest cached outcome to each product in the
// externally supplied list. Products never scraped come back without
// outcome fields.
func (c *Cache) Decorate(products []models.Product) []models.DecoratedProduct {
	c.mu.Lock()
	defer c.mu.Unlock()

	decorated := make([]models.DecoratedProduct, 0, len(products))
	for _, p := range products {
		d := models.DecoratedProduct{Product: p}
		if outcome, ok := c.entries[p.URL]; ok {
			d.PriceOutcome = &outcome
		}
		decorated = append(decorated, d)
	}

	return decorated
}

// Evict removes the cache entry for a deleted product's URL.
func (c *Cache) Evict(url string) {
	c.mu.Lock()
	delete(c.entries, url)
	c.mu.Unlock()
}
