package engine

import (
	"regexp"
	"strconv"
	"time"
)

// reDate matches day-first numeric dates as printed on Israeli receipts:
// 02/01/2024, 02.01.24, 2-1-2024.
var reDate = regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})[./-](\d{2,4})`)

// ExtractDate scans the raw text for a purchase date. It runs on the
// unfiltered text because bare date lines look like numeric noise to the
// line filter. The first calendar-valid match wins; a false return means
// the caller should stamp the receipt with the processing time instead.
func ExtractDate(text string) (time.Time, bool) {
	for _, m := range reDate.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		if year < 2000 || year > 2100 {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
