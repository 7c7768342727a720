package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceMatch is one monetary value recovered from a line. Text is the full
// matched substring (number plus any currency marker), kept so the item
// parser can strip it from the product name.
type PriceMatch struct {
	Value float64
	Text  string
	Rule  string
}

type priceRule struct {
	name string
	re   *regexp.Regexp
}

// priceRules is an ordered priority list. Earlier rules are more structured
// and therefore more trustworthy; the last rule is a bare numeric scan that
// only runs when nothing else produced an in-bounds value. The order is part
// of the extraction contract.
var priceRules = []priceRule{
	{"decimal-currency", regexp.MustCompile(`(\d+[.,]\d{1,2})\s*(?:₪|ש"ח|ש״ח|שח|(?i:nis|ils)|$)`)},
	{"currency-decimal", regexp.MustCompile(`(?:₪|ש"ח|ש״ח|שח|(?i:nis|ils))\s*(\d+[.,]\d{1,2})`)},
	{"bare-decimal", regexp.MustCompile(`(?:^|\s)(\d+[.,]\d{1,2})(?:\s|$)`)},
	{"labeled-amount", regexp.MustCompile(`(?:מחיר|סכום|(?i:price|amount))\s*[:=]?\s*(\d+[.,]\d{1,2})`)},
	{"any-decimal", regexp.MustCompile(`(\d+[.,]\d{1,2})`)},
}

// ExtractPrice returns the most plausible monetary value in the line, trying
// each pattern rule in priority order and each match in document order. The
// first parsed value inside [minPrice, maxPrice] wins. A false return means
// "cannot extract", never a zero price.
func ExtractPrice(line string, minPrice, maxPrice float64) (PriceMatch, bool) {
	for _, rule := range priceRules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(line, -1) {
			value, ok := parseMoney(line[m[2]:m[3]])
			if !ok {
				continue
			}
			if value < minPrice || value > maxPrice {
				continue
			}
			return PriceMatch{
				Value: value,
				Text:  strings.TrimSpace(line[m[0]:m[1]]),
				Rule:  rule.name,
			}, true
		}
	}
	return PriceMatch{}, false
}

// parseMoney normalizes a comma decimal separator and parses the token.
// Malformed tokens are reported as not-ok and never propagate.
func parseMoney(token string) (float64, bool) {
	normalized := strings.Replace(token, ",", ".", 1)
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
