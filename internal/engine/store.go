package engine

import (
	"strings"
	"unicode"

	"github.com/benshabbat/receipt-scanner/internal/catalog"
)

// UnknownStore is the sentinel store name when no catalog alias matches the
// heading lines.
const UnknownStore = "לא זוהה"

type storePattern struct {
	name    string
	aliases []string
}

// StoreIdentifier resolves the retailer from the heading lines of a receipt.
type StoreIdentifier struct {
	lookahead int
	patterns  []storePattern
}

// NewStoreIdentifier compiles the alias catalog into its normalized matching
// form. Catalog order is preserved: when two aliases both appear in the
// heading, the one listed first in the catalog wins.
func NewStoreIdentifier(patterns []catalog.StorePattern, lookahead int) *StoreIdentifier {
	compiled := make([]storePattern, 0, len(patterns))
	for _, p := range patterns {
		aliases := make([]string, 0, len(p.Aliases))
		for _, a := range p.Aliases {
			if n := normalizeStoreText(a); n != "" {
				aliases = append(aliases, n)
			}
		}
		if len(aliases) == 0 {
			continue
		}
		compiled = append(compiled, storePattern{name: p.Name, aliases: aliases})
	}
	return &StoreIdentifier{lookahead: lookahead, patterns: compiled}
}

// Identify scans the first lookahead lines for a known store alias and
// returns the canonical store name, or UnknownStore. Lines beyond the
// lookahead window are never inspected.
func (s *StoreIdentifier) Identify(lines []string) string {
	limit := len(lines)
	if limit > s.lookahead {
		limit = s.lookahead
	}
	for _, line := range lines[:limit] {
		normalized := normalizeStoreText(line)
		if normalized == "" {
			continue
		}
		for _, p := range s.patterns {
			for _, alias := range p.aliases {
				if strings.Contains(normalized, alias) {
					return p.name
				}
			}
		}
	}
	return UnknownStore
}

// normalizeStoreText lowercases and strips everything that is not a letter
// or digit, so OCR spacing and punctuation noise cannot break containment.
func normalizeStoreText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
