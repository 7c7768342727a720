package engine

import "regexp"

// totalPatterns match an explicitly labeled grand total: a total keyword
// (with the OCR-mangled quote variants of סה"כ) next to a number, in either
// order. Keyword and number may be separated by ":"/"=" and a currency mark.
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:סה[\s"'״׳]*כ|סך\s*הכל|לתשלום|(?i:total|sum|amount\s*due|to\s*pay))\s*[:=]?\s*₪?\s*(\d+(?:[.,]\d{1,2})?)`),
	regexp.MustCompile(`(\d+[.,]\d{1,2})\s*₪?\s*(?:סה[\s"'״׳]*כ|סך\s*הכל|לתשלום|(?i:total))`),
}

// ExtractTotal scans the last tailLines lines in reverse so the physically
// last total marker wins — on a real receipt that is the grand total, while
// earlier matches tend to be subtotals. Returns 0 when no labeled total is
// found; callers may then fall back to summing item prices.
func ExtractTotal(lines []string, tailLines int) float64 {
	start := len(lines) - tailLines
	if start < 0 {
		start = 0
	}
	for i := len(lines) - 1; i >= start; i-- {
		for _, re := range totalPatterns {
			m := re.FindStringSubmatch(lines[i])
			if m == nil {
				continue
			}
			if value, ok := parseMoney(m[1]); ok && value > 0 {
				return value
			}
		}
	}
	return 0
}
