package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/tkarimov/pricewatch/internal/models"
)

const (
	renderTimeout = 30 * time.Second
	// settleDelay gives client-side rendering time to finish after the
	// document load event.
	settleDelay = 3 * time.Second

	localeID   = "fa-IR"
	timezoneID = "Asia/Tehran"
)

// RenderedFetcher retrieves a page's markup after executing its scripts.
type RenderedFetcher interface {
	FetchRendered(ctx context.Context, pageURL string) (string, error)
}

// ChromeFetcher renders pages in a disposable headless Chrome context.
// Every call launches and tears down its own browser: slower than a
// pooled instance, but concurrent scrapes can never interfere with each
// other's sessions.
type ChromeFetcher struct {
	log     *slog.Logger
	timeout time.Duration
	settle  time.Duration
}

// NewChromeFetcher creates a rendered-page fetcher with the default
// navigation timeout and settling delay.
func NewChromeFetcher(log *slog.Logger) *ChromeFetcher {
	return &ChromeFetcher{log: log, timeout: renderTimeout, settle: settleDelay}
}

// FetchRendered navigates to pageURL, waits for client-side rendering to
// settle and returns the document markup. The browser context is torn
// down on every exit path.
func (f *ChromeFetcher) FetchRendered(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-software-rasterizer", true),
		chromedp.Flag("disable-extensions", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, f.timeout)
	defer cancelRun()

	f.log.DebugContext(ctx, "Rendering page in headless browser", "url", pageURL)

	var html string
	err := chromedp.Run(runCtx,
		// Client-side formatting on the site depends on the visitor's
		// locale and timezone.
		emulation.SetLocaleOverride().WithLocale(localeID),
		emulation.SetTimezoneOverride(timezoneID),
		chromedp.Navigate(pageURL),
		chromedp.Sleep(f.settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", pageURL, err)
	}

	return html, nil
}

// RenderedScraper is Strategy B: the fallback used when the direct fetch
// does not yield a price. It renders the page, runs the extractor over
// the full document with the looser threshold, and as a last resort
// pulls a price out of the first element carrying the currency keyword.
type RenderedScraper struct {
	log     *slog.Logger
	fetcher RenderedFetcher
}

// NewRenderedScraper creates Strategy B on top of a rendered-page fetcher.
func NewRenderedScraper(log *slog.Logger, fetcher RenderedFetcher) *RenderedScraper {
	return &RenderedScraper{log: log, fetcher: fetcher}
}

// Scrape renders the page and extracts a price from the result.
func (s *RenderedScraper) Scrape(ctx context.Context, pageURL string) models.PriceOutcome {
	html, err := s.fetcher.FetchRendered(ctx, pageURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.FailedOutcome(models.StatusTimeout, "timeout waiting for page render")
		}
		return models.FailedOutcome(models.StatusError, fmt.Sprintf("browser error: %v", err))
	}

	if price, text, found := Extract(html, RenderedThreshold); found {
		return models.SuccessOutcome(price, text)
	}

	s.log.DebugContext(ctx, "No pattern match in rendered document, trying element fallback", "url", pageURL)

	price, text, found := extractFromElement(html)
	if !found {
		return models.FailedOutcome(models.StatusNotFound, "price element not found")
	}

	return models.SuccessOutcome(price, text)
}

// extractFromElement looks for the first element whose text mentions
// the currency keyword and parses its digits directly, without the
// plausibility filter. Buttons are scanned before container divs: a
// wrapper div inherits the keyword from its children together with any
// unrelated digits in sibling nodes, so the price button inside it must
// win.
func extractFromElement(html string) (int64, string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, "", false
	}

	for _, selector := range []string{"button", "div"} {
		if price, text, found := firstPricedElement(doc, selector); found {
			return price, text, true
		}
	}

	return 0, "", false
}

// firstPricedElement returns the parsed price of the first matching
// element whose text carries the currency keyword and any digits.
func firstPricedElement(doc *goquery.Document, selector string) (int64, string, bool) {
	var (
		price int64
		text  string
		found bool
	)
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		elementText := strings.TrimSpace(sel.Text())
		if !strings.Contains(elementText, currencyKeyword) {
			return true
		}
		if p, ok := ParsePrice(elementText); ok {
			price = p
			text = elementText
			found = true
			return false
		}
		return true
	})

	return price, text, found
}
