// Package categorize maps cleaned product names to shopping categories via
// ordered keyword matching. It is a pure, stateless lookup: no learning and
// no frequency weighting happen here.
package categorize

import (
	"strings"

	"github.com/benshabbat/receipt-scanner/constants"
	"github.com/benshabbat/receipt-scanner/internal/catalog"
)

// Uncategorized is returned when no keyword matches the product name.
const Uncategorized = string(constants.Other)

type rule struct {
	category string
	keywords []string
}

// Categorizer resolves product names against an ordered keyword table.
// The first rule whose keyword is a substring of the name wins.
type Categorizer struct {
	rules []rule
}

// New builds a Categorizer from catalog rules. Keywords are lowercased once
// here so Categorize does no per-call allocation beyond lowering the name.
func New(rules []catalog.CategoryRule) *Categorizer {
	out := make([]rule, 0, len(rules))
	for _, r := range rules {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		if len(kws) == 0 {
			continue
		}
		out = append(out, rule{category: r.Category, keywords: kws})
	}
	return &Categorizer{rules: out}
}

// Categorize returns the category for a cleaned product name, or
// Uncategorized when nothing matches.
func (c *Categorizer) Categorize(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return Uncategorized
	}
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.category
			}
		}
	}
	return Uncategorized
}
