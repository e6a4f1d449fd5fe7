package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkarimov/pricewatch/internal/models"
)

// politenessDelay is the pause between sequential scrapes in a batch,
// to avoid tripping rate limiting on the target site.
const politenessDelay = time.Second

// Strategy produces a price outcome for a single product page. Faults
// are recorded in the outcome, never returned as errors.
type Strategy interface {
	Scrape(ctx context.Context, pageURL string) models.PriceOutcome
}

// Scraper orchestrates the two fetch strategies: the cheap direct fetch
// first, the rendered fallback only when it does not succeed.
type Scraper struct {
	log      *slog.Logger
	direct   Strategy
	rendered Strategy
	delay    time.Duration
}

// New creates a scraper from the two strategies.
func New(log *slog.Logger, direct, rendered Strategy) *Scraper {
	return &Scraper{log: log, direct: direct, rendered: rendered, delay: politenessDelay}
}

// ScrapeOne scrapes a single product URL. Exactly one strategy's result
// is returned: a successful direct fetch short-circuits, anything else
// is superseded by the rendered fetch's result, whatever that is.
func (s *Scraper) ScrapeOne(ctx context.Context, pageURL string) models.PriceOutcome {
	outcome := s.direct.Scrape(ctx, pageURL)
	if outcome.Status == models.StatusSuccess {
		return outcome
	}

	s.log.DebugContext(ctx, "Direct fetch did not succeed, falling back to rendered fetch",
		"url", pageURL, "status", outcome.Status)

	return s.rendered.Scrape(ctx, pageURL)
}

// ScrapeAll scrapes products sequentially, producing one entry per input
// product in input order. A single product's failure does not abort the
// batch; its outcome simply records the failure.
func (s *Scraper) ScrapeAll(ctx context.Context, products []models.Product) []models.ScrapedProduct {
	results := make([]models.ScrapedProduct, 0, len(products))

	for i, product := range products {
		s.log.InfoContext(ctx, "Scraping product", "name", product.Name, "url", product.URL)

		results = append(results, models.ScrapedProduct{
			Name:    product.Name,
			URL:     product.URL,
			Outcome: s.ScrapeOne(ctx, product.URL),
		})

		if i < len(products)-1 {
			select {
			case <-ctx.Done():
				// Stop waiting; remaining scrapes fail fast on the
				// cancelled context, keeping one outcome per product.
			case <-time.After(s.delay):
			}
		}
	}

	return results
}
