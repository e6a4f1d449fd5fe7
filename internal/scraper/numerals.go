package scraper

import "strings"

// persianDigits maps Persian digit glyphs to their ASCII equivalents.
var persianDigits = map[rune]rune{
	'۰': '0',
	'۱': '1',
	'۲': '2',
	'۳': '3',
	'۴': '4',
	'۵': '5',
	'۶': '6',
	'۷': '7',
	'۸': '8',
	'۹': '9',
}

// NormalizeDigits replaces every Persian digit glyph in s with its
// ASCII equivalent. All other runes pass through unchanged.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := persianDigits[r]; ok {
			return d
		}
		return r
	}, s)
}
