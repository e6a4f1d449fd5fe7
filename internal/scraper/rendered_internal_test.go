package scraper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkarimov/pricewatch/internal/models"
)

// fakeRenderedFetcher returns canned markup instead of driving a browser.
type fakeRenderedFetcher struct {
	html  string
	err   error
	calls int
}

func (f *fakeRenderedFetcher) FetchRendered(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.html, f.err
}

func TestRenderedScraper_Scrape(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name           string
		html           string
		err            error
		expectedStatus models.Status
		expectedPrice  int64
	}{
		{
			name:           "Price in rendered document",
			html:           `<html><body><span>۶۳٬۶۰۰٬۰۰۰ تومان</span></body></html>`,
			expectedStatus: models.StatusSuccess,
			expectedPrice:  63600000,
		},
		{
			name:           "Looser threshold admits rendered-only price",
			html:           `<html><body><span>۴۵٬۰۰۰ تومان</span></body></html>`,
			expectedStatus: models.StatusSuccess,
			expectedPrice:  45000,
		},
		{
			// No pattern match (digits and keyword live in separate
			// nodes), but a button element carries both.
			name:           "Element fallback on pattern miss",
			html:           `<html><body><button>افزودن به سبد — ۶۳٬۶۰۰٬۰۰۰<i></i> تومان</button></body></html>`,
			expectedStatus: models.StatusSuccess,
			expectedPrice:  63600000,
		},
		{
			name:           "No price anywhere",
			html:           `<html><body><p>ناموجود</p></body></html>`,
			expectedStatus: models.StatusNotFound,
		},
		{
			name:           "Rendering timeout",
			err:            context.DeadlineExceeded,
			expectedStatus: models.StatusTimeout,
		},
		{
			name:           "Browser launch failure",
			err:            errors.New("chrome failed to start"),
			expectedStatus: models.StatusError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &fakeRenderedFetcher{html: tc.html, err: tc.err}
			scraper := NewRenderedScraper(logger, fetcher)

			outcome := scraper.Scrape(t.Context(), "https://techsiro.com/products/1/test")

			assert.Equal(t, tc.expectedStatus, outcome.Status)
			assert.Equal(t, 1, fetcher.calls)

			if tc.expectedStatus == models.StatusSuccess {
				require.NotNil(t, outcome.Price)
				assert.Equal(t, tc.expectedPrice, *outcome.Price)
			} else {
				assert.Nil(t, outcome.Price)
				assert.NotEmpty(t, outcome.Error)
			}
		})
	}
}

func TestRenderedScraper_WrappedDeadline(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// The fetcher wraps the deadline error the way ChromeFetcher does.
	fetcher := &fakeRenderedFetcher{err: errors.Join(errors.New("failed to render"), context.DeadlineExceeded)}
	scraper := NewRenderedScraper(logger, fetcher)

	outcome := scraper.Scrape(t.Context(), "https://techsiro.com/products/1/test")

	assert.Equal(t, models.StatusTimeout, outcome.Status)
}

func TestExtractFromElement(t *testing.T) {
	testCases := []struct {
		name          string
		html          string
		expectedPrice int64
		found         bool
	}{
		{
			name:          "Button with currency text",
			html:          `<div><button>۱۲۵٬۰۰۰ تومان</button></div>`,
			expectedPrice: 125000,
			found:         true,
		},
		{
			name:          "Container div",
			html:          `<div class="price-box">قیمت ۹۹٬۰۰۰ تومان</div>`,
			expectedPrice: 99000,
			found:         true,
		},
		{
			// The wrapper div's text contains the keyword plus the sibling
			// div's digits; concatenating them would yield a bogus number.
			// The price button inside must win.
			name:          "Button beats enclosing wrapper div",
			html:          `<div id="app"><button>۱۲۵٬۰۰۰<i></i> تومان</button><div>کد 2024</div></div>`,
			expectedPrice: 125000,
			found:         true,
		},
		{
			name:  "Keyword without digits",
			html:  `<div>تومان</div>`,
			found: false,
		},
		{
			name:  "No matching element",
			html:  `<p>۱۲۵٬۰۰۰ تومان</p>`,
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, text, found := extractFromElement(tc.html)

			require.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.expectedPrice, price)
				assert.NotEmpty(t, text)
			}
		})
	}
}
