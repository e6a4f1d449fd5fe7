// Package monitor runs the periodic scrape cycle: load products and
// settings, refresh the shared price cache, raise target-price alerts.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tkarimov/pricewatch/internal/models"
	"github.com/tkarimov/pricewatch/internal/notifier"
)

const (
	// errCooldown is the pause after a failed cycle before retrying.
	errCooldown = 30 * time.Second

	// minInterval is the smallest refresh interval the monitor will
	// honor; stored values below it fall back to the default.
	minInterval = 5 * time.Second
)

// Repository provides the product list and settings for each cycle.
type Repository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetSettings(ctx context.Context) (models.Settings, error)
}

// Cache is the shared price cache the monitor refreshes.
type Cache interface {
	UpdateBatch(ctx context.Context, products []models.Product) []models.ScrapedProduct
}

// Monitor is the background scheduler task.
type Monitor struct {
	log      *slog.Logger
	repo     Repository
	cache    Cache
	alerts   notifier.Notifier
	cooldown time.Duration
}

// New creates a monitor.
func New(log *slog.Logger, repo Repository, cache Cache, alerts notifier.Notifier) *Monitor {
	return &Monitor{log: log, repo: repo, cache: cache, alerts: alerts, cooldown: errCooldown}
}

// Run executes scrape cycles until ctx is cancelled. A failed cycle is
// logged and retried after a cooldown; nothing short of cancellation
// terminates the loop.
func (m *Monitor) Run(ctx context.Context) {
	m.log.InfoContext(ctx, "Price monitor started")

	for {
		wait, err := m.runCycle(ctx)
		if err != nil {
			m.log.ErrorContext(ctx, "Scrape cycle failed, cooling down", "error", err, "cooldown", m.cooldown)
			wait = m.cooldown
		}

		if !sleep(ctx, wait) {
			m.log.InfoContext(ctx, "Price monitor stopped")
			return
		}
	}
}

// runCycle performs one scrape pass and returns how long to sleep before
// the next one.
func (m *Monitor) runCycle(ctx context.Context) (time.Duration, error) {
	const opn = "monitor.runCycle"

	settings, err := m.repo.GetSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to load settings: %w", opn, err)
	}

	interval := time.Duration(settings.RefreshInterval) * time.Second
	if interval < minInterval {
		interval = time.Duration(models.DefaultSettings().RefreshInterval) * time.Second
	}

	products, err := m.repo.ListProducts(ctx)
	if err != nil {
		return interval, fmt.Errorf("%s: failed to load products: %w", opn, err)
	}

	if len(products) == 0 {
		return interval, nil
	}

	m.log.InfoContext(ctx, "Checking products", "count", len(products))

	results := m.cache.UpdateBatch(ctx, products)

	for _, r := range results {
		if r.Outcome.Price == nil || *r.Outcome.Price != settings.TargetPrice {
			continue
		}

		m.log.WarnContext(ctx, "Product reached target price",
			"name", r.Name, "price_text", r.Outcome.PriceText)

		if !settings.AlarmEnabled {
			continue
		}

		if err = m.alerts.NotifyTargetPrice(ctx, r, settings.TargetPrice); err != nil {
			m.log.ErrorContext(ctx, "Failed to deliver target price alert", "name", r.Name, "error", err)
		}
	}

	return interval, nil
}

// sleep waits d or until ctx is cancelled; it reports false on
// cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
