package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/benshabbat/receipt-scanner/internal/categorize"
	"github.com/benshabbat/receipt-scanner/internal/entity"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reAllDigits = regexp.MustCompile(`^\d+$`)
)

// nameTrimCutset is stripped from the edges of a candidate name after the
// price and quantity substrings are removed. "%" and apostrophes stay: they
// are part of real product names (חלב 3%, קוטג').
const nameTrimCutset = " \t.,:;|*#/\\-_=+~^&@!?()[]{}<>₪"

// ItemParser turns one candidate line into a receipt item, delegating the
// numeric work to the price and quantity extractors.
type ItemParser struct {
	categorizer *categorize.Categorizer
	maxQuantity int
}

func NewItemParser(c *categorize.Categorizer, maxQuantity int) *ItemParser {
	return &ItemParser{categorizer: c, maxQuantity: maxQuantity}
}

// Parse attempts to produce one item from a line. When the line itself holds
// no price, the immediate successor line is tried — receipts sometimes place
// the price on the following line. A line with no recoverable price is not
// an item. The stored price is the unit price; quantity is kept separately.
func (p *ItemParser) Parse(line, next string, minPrice, maxPrice float64) (entity.Item, bool) {
	price, priceOnLine := ExtractPrice(line, minPrice, maxPrice)
	found := priceOnLine
	if !found && next != "" {
		price, found = nextLinePrice(next, minPrice, maxPrice)
	}
	if !found {
		return entity.Item{}, false
	}

	qty, hasQty := ExtractQuantity(line, p.maxQuantity)

	name := line
	if priceOnLine {
		name = strings.Replace(name, price.Text, " ", 1)
	}
	if hasQty {
		name = strings.Replace(name, qty.Text, " ", 1)
	}
	name = cleanName(name)
	if !validName(name) {
		return entity.Item{}, false
	}

	quantity := 1
	if hasQty {
		quantity = qty.Count
	}
	return entity.Item{
		Name:     name,
		Price:    price.Value,
		Quantity: quantity,
		Category: p.categorizer.Categorize(name),
	}, true
}

// nextLinePrice recovers a price from the successor line only when that line
// carries nothing but the price token. Otherwise a priceless heading line
// (store name, address) would steal the price of the item line below it.
func nextLinePrice(next string, minPrice, maxPrice float64) (PriceMatch, bool) {
	price, ok := ExtractPrice(next, minPrice, maxPrice)
	if !ok {
		return PriceMatch{}, false
	}
	leftover := cleanName(strings.Replace(next, price.Text, " ", 1))
	if utf8.RuneCountInString(leftover) >= 2 {
		return PriceMatch{}, false
	}
	return price, true
}

func cleanName(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.Trim(s, nameTrimCutset)
}

// validName rejects names shorter than two runes and bare number strings.
func validName(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	return !reAllDigits.MatchString(s)
}
