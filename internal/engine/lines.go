package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FilterMode selects how hard the preprocessor filters candidate lines.
type FilterMode int

const (
	// FilterStrict drops noise, separators and metadata lines. Used by the
	// primary extraction pass.
	FilterStrict FilterMode = iota
	// FilterRelaxed drops only empty lines and pure separator runs. Used by
	// the aggressive fallback pass and the raw-lines debug passthrough.
	FilterRelaxed
)

var (
	reSeparatorRun  = regexp.MustCompile(`^[*\-_=.]{5,}$`)
	reDigitsSymbols = regexp.MustCompile(`^[\d\s.,:;*#/\\|()\-_=+₪$%&]+$`)
	reLonePrice     = regexp.MustCompile(`^₪?\s*\d+[.,]\d{1,2}\s*₪?$`)
)

// skipPrefixes marks lines that start with receipt metadata rather than a
// purchased item: date/time stamps, register and cashier markers, business
// registration numbers, barcodes, reference numbers, payment and total lines.
// Compared lowercased. Applied in strict mode only.
var skipPrefixes = []string{
	"תאריך", "שעה", "קופה", "קופאי", "עוסק", "ח.פ", `ח"פ`, "ע.מ", `מע"מ`, "מעמ",
	"ברקוד", "מס קבלה", "מס' קבלה", "קבלה", "חשבונית", "אשראי", "מזומן", "עודף",
	"שולם", "כרטיס", "טלפון", "טל'", "טל:", "פקס", "תודה",
	`סה"כ`, "סה״כ", "סהכ", "סך הכל", "לתשלום",
	"date", "time", "cashier", "invoice", "receipt", "barcode", "ref",
	"tel", "phone", "fax", "vat", "total", "subtotal", "change", "cash",
	"credit", "thank",
}

// SplitLines breaks a raw OCR blob into trimmed, non-empty candidate lines,
// discarding structurally irrelevant ones according to the filter mode.
func SplitLines(raw string, mode FilterMode) []string {
	out := make([]string, 0, 32)
	for _, line := range strings.Split(normalizeText(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if keepLine(line, mode) {
			out = append(out, line)
		}
	}
	return out
}

func keepLine(line string, mode FilterMode) bool {
	if reSeparatorRun.MatchString(line) {
		return false
	}
	if mode == FilterRelaxed {
		return true
	}
	if utf8.RuneCountInString(line) >= 4 {
		if reDigitsSymbols.MatchString(line) {
			return false
		}
		if reLonePrice.MatchString(line) {
			return false
		}
	}
	lowered := strings.ToLower(line)
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return false
		}
	}
	return true
}
