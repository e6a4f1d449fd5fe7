package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyKeyword is the Toman suffix that marks a price on the target
// site. Its presence next to a number is the only structural contract
// the extractor relies on.
const currencyKeyword = "تومان"

// Plausibility thresholds: matches at or below these values are noise
// (shipping fees, per-installment amounts). The rendered DOM is cleaner
// than raw markup, so its floor is looser.
const (
	DirectThreshold   int64 = 100000
	RenderedThreshold int64 = 10000
)

var (
	// pricePattern matches digit runs (Persian or ASCII, optionally
	// grouped with ٬ or ,) followed by the currency keyword.
	pricePattern = regexp.MustCompile(`[\d۰-۹٬,]+\s*` + currencyKeyword)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

// ParsePrice extracts the integer value from a localized price string.
// It reports false when the string carries no digits at all.
func ParsePrice(text string) (int64, bool) {
	digits := nonDigits.ReplaceAllString(NormalizeDigits(text), "")
	if digits == "" {
		return 0, false
	}
	price, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// Extract scans raw page text for currency-suffixed numbers and selects
// the best surviving candidate. It returns the parsed price, the matched
// substring exactly as it appears in the input (Persian glyphs kept for
// display) and whether anything plausible was found; absence of a match
// is a normal outcome, not a fault.
//
// The primary product price on the target site is reliably the largest
// Toman figure on the page, so the maximum candidate above minPrice
// wins. This is an empirical heuristic: a warranty or insurance add-on
// priced above the product itself would be selected instead.
func Extract(text string, minPrice int64) (int64, string, bool) {
	var (
		bestPrice int64
		bestText  string
		found     bool
	)
	for _, match := range pricePattern.FindAllString(text, -1) {
		price, ok := ParsePrice(match)
		if !ok || price <= minPrice {
			continue
		}
		if !found || price > bestPrice {
			bestPrice = price
			bestText = strings.TrimSpace(match)
			found = true
		}
	}

	return bestPrice, bestText, found
}
