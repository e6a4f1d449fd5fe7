package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDigits(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "All Persian digits",
			input:    "۰۱۲۳۴۵۶۷۸۹",
			expected: "0123456789",
		},
		{
			name:     "Digits interleaved with punctuation",
			input:    "۶۳٬۶۰۰٬۰۰۰",
			expected: "63٬600٬000",
		},
		{
			name:     "Mixed text",
			input:    "قیمت: ۱۲۵ تومان",
			expected: "قیمت: 125 تومان",
		},
		{
			name:     "ASCII passthrough",
			input:    "price 12,500",
			expected: "price 12,500",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeDigits(tc.input))
		})
	}
}

// Positions and rune count must be preserved: every Persian digit maps
// to a single ASCII digit, everything else is untouched.
func TestNormalizeDigits_PreservesPositions(t *testing.T) {
	input := "۱۲,۳۴.۵۶-۷۸:۹۰"

	output := NormalizeDigits(input)

	inputRunes := []rune(input)
	outputRunes := []rune(output)
	require.Len(t, outputRunes, len(inputRunes))

	for i, r := range outputRunes {
		if r >= '0' && r <= '9' {
			continue
		}
		assert.Equal(t, inputRunes[i], r, "non-digit rune at position %d changed", i)
	}
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
		found    bool
	}{
		{
			name:     "Persian price with separators",
			input:    "۶۳٬۶۰۰٬۰۰۰ تومان",
			expected: 63600000,
			found:    true,
		},
		{
			name:     "ASCII price with commas",
			input:    "1,250,000 تومان",
			expected: 1250000,
			found:    true,
		},
		{
			name:  "No digits at all",
			input: "تومان",
			found: false,
		},
		{
			name:  "Empty string",
			input: "",
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, found := ParsePrice(tc.input)

			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.expected, price)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	// Shipping, main price and warranty: the largest above-threshold
	// candidate must win.
	multiCandidate := "ارسال ۱۲۰٬۰۰۰ تومان قیمت ۸۵٬۰۰۰٬۰۰۰ تومان گارانتی ۹۹٬۰۰۰ تومان"

	testCases := []struct {
		name          string
		input         string
		minPrice      int64
		expectedPrice int64
		expectedText  string
		found         bool
	}{
		{
			name:          "Largest candidate above threshold wins",
			input:         multiCandidate,
			minPrice:      100000,
			expectedPrice: 85000000,
			expectedText:  "۸۵٬۰۰۰٬۰۰۰ تومان",
			found:         true,
		},
		{
			name:     "Only sub-threshold candidates",
			input:    "ارسال ۴۵٬۰۰۰ تومان بیمه ۹۹٬۰۰۰ تومان",
			minPrice: 100000,
			found:    false,
		},
		{
			name:          "Looser threshold admits smaller candidates",
			input:         "اقساط ۴۵٬۰۰۰ تومان",
			minPrice:      10000,
			expectedPrice: 45000,
			found:         true,
		},
		{
			name:          "ASCII digits in markup",
			input:         `<span>12,500,000 تومان</span>`,
			minPrice:      100000,
			expectedPrice: 12500000,
			found:         true,
		},
		{
			name:     "No currency keyword",
			input:    "۸۵٬۰۰۰٬۰۰۰ ریال",
			minPrice: 100000,
			found:    false,
		},
		{
			name:     "Empty input",
			input:    "",
			minPrice: 100000,
			found:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, text, found := Extract(tc.input, tc.minPrice)

			require.Equal(t, tc.found, found)
			if !tc.found {
				return
			}
			assert.Equal(t, tc.expectedPrice, price)
			assert.True(t, strings.Contains(text, currencyKeyword), "matched text %q lacks currency suffix", text)
			if tc.expectedText != "" {
				assert.Equal(t, tc.expectedText, text)
			}
		})
	}
}

// The matched substring is display text: Persian glyphs must come back
// exactly as they appear on the page, not normalized to ASCII.
func TestExtract_KeepsOriginalGlyphs(t *testing.T) {
	price, text, found := Extract("قیمت ۸۵٬۰۰۰٬۰۰۰ تومان", 100000)

	require.True(t, found)
	assert.Equal(t, int64(85000000), price)
	assert.Equal(t, "۸۵٬۰۰۰٬۰۰۰ تومان", text)
}

// Identical input must always yield identical output.
func TestExtract_Deterministic(t *testing.T) {
	input := "ارسال ۱۲۰٬۰۰۰ تومان قیمت ۸۵٬۰۰۰٬۰۰۰ تومان گارانتی ۹۹٬۰۰۰ تومان"

	firstPrice, firstText, firstFound := Extract(input, 100000)
	require.True(t, firstFound)

	for i := 0; i < 50; i++ {
		price, text, found := Extract(input, 100000)
		require.True(t, found, "iteration %d", i)
		require.Equal(t, firstPrice, price, "iteration %d", i)
		require.Equal(t, firstText, text, "iteration %d", i)
	}
}

// Two equal above-threshold candidates: the selection must still be
// stable (first occurrence wins).
func TestExtract_TiedCandidates(t *testing.T) {
	input := fmt.Sprintf("اول ۵۰۰٬۰۰۰ %s دوم ۵۰۰٬۰۰۰ %s", currencyKeyword, currencyKeyword)

	price, _, found := Extract(input, 100000)

	require.True(t, found)
	assert.Equal(t, int64(500000), price)
}
