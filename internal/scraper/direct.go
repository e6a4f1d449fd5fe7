package scraper

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tkarimov/pricewatch/internal/models"
)

const (
	directTimeout = 30 * time.Second

	// A realistic desktop browser identity; the site serves a reduced
	// page to unknown agents.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// DirectFetcher is Strategy A: a plain HTTP GET of the product page's
// initial markup. It is cheap and sufficient for the majority of pages
// where the price is present before any scripts run.
type DirectFetcher struct {
	log    *slog.Logger
	client *http.Client
}

// NewDirectFetcher creates the fast-path strategy.
func NewDirectFetcher(log *slog.Logger) *DirectFetcher {
	return &DirectFetcher{
		log: log,
		client: &http.Client{
			Timeout: directTimeout,
			Transport: &http.Transport{
				// The target site's certificate chain is intermittently
				// misconfigured; skipping verification is an accepted
				// risk, not a security boundary.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		},
	}
}

// Scrape fetches the initial markup and extracts a price from it.
func (f *DirectFetcher) Scrape(ctx context.Context, pageURL string) models.PriceOutcome {
	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		return models.FailedOutcome(models.StatusError, fmt.Sprintf("http request error: %v", err))
	}

	price, text, found := Extract(body, DirectThreshold)
	if !found {
		return models.FailedOutcome(models.StatusNotFound, "no valid price found in HTML")
	}

	return models.SuccessOutcome(price, text)
}

func (f *DirectFetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}

	req.Header.Set("User-Agent", userAgent)

	f.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	f.log.DebugContext(ctx, "Successfully received http response", "status code", res.StatusCode, "bytes", len(body))

	return string(body), nil
}
