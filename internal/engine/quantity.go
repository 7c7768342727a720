package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// QuantityMatch is a unit count recovered from a line, independent of price.
type QuantityMatch struct {
	Count int
	Text  string
	Rule  string
}

type quantityRule struct {
	name string
	re   *regexp.Regexp
}

// quantityRules is checked in order: explicit multipliers first ("2x", "x2"),
// then a labeled quantity, then a count followed by a unit abbreviation.
var quantityRules = []quantityRule{
	{"multiplier-suffix", regexp.MustCompile(`(?:^|\s)(\d{1,2})\s*[xX×]`)},
	{"multiplier-prefix", regexp.MustCompile(`[xX×]\s*(\d{1,2})`)},
	{"labeled-quantity", regexp.MustCompile(`(?:כמות|(?i:qty|quantity))\s*[:=]?\s*(\d{1,2})`)},
	{"unit-count", regexp.MustCompile(`(\d{1,2})\s*(?:יחידות|יח'|יח׳|יח|ק"ג|ק״ג|קג|ליטר|(?i:units?|pcs|pieces|kg|liter|litre))(?:\s|$|[.,])`)},
}

// ExtractQuantity returns an integer multiplier embedded in the line.
// Only 1..maxQuantity is accepted; out-of-range matches are discarded and the
// scan continues. A false return means no quantity was found — the caller
// applies the default of 1, not this function.
func ExtractQuantity(line string, maxQuantity int) (QuantityMatch, bool) {
	for _, rule := range quantityRules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(line, -1) {
			count, err := strconv.Atoi(line[m[2]:m[3]])
			if err != nil {
				continue
			}
			if count < 1 || count > maxQuantity {
				continue
			}
			return QuantityMatch{
				Count: count,
				Text:  strings.TrimSpace(line[m[0]:m[1]]),
				Rule:  rule.name,
			}, true
		}
	}
	return QuantityMatch{}, false
}
