// Package engine reconstructs a structured purchase record from raw, noisy
// Hebrew/English OCR output of a photographed store receipt. It is a pure,
// synchronous transformation: one text blob in, one Receipt out, no I/O and
// no shared mutable state beyond the read-only catalogs, so a single Engine
// is safe for concurrent use.
package engine

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/benshabbat/receipt-scanner/internal/catalog"
	"github.com/benshabbat/receipt-scanner/internal/categorize"
	"github.com/benshabbat/receipt-scanner/internal/common"
	"github.com/benshabbat/receipt-scanner/internal/entity"
)

// ErrTextTooShort is returned when the OCR text is too sparse to be a
// receipt. This is the only failure mode; all other degraded conditions
// resolve to documented defaults instead of errors.
var ErrTextTooShort = common.NewAppError("TEXT_TOO_SHORT", "recognition too sparse", common.ErrInvalidInput)

// Config holds the engine's bounds and windows. Zero values fall back to the
// defaults applied in New.
type Config struct {
	MinPrice           float64 // default 0.1
	StrictMaxPrice     float64 // default 500
	AggressiveMaxPrice float64 // default 2000
	MaxQuantity        int     // default 20
	StoreLookahead     int     // default 8
	TotalTailLines     int     // default 15
	MinTextLength      int     // default 15, in runes
}

func (c Config) withDefaults() Config {
	if c.MinPrice <= 0 {
		c.MinPrice = 0.1
	}
	if c.StrictMaxPrice <= 0 {
		c.StrictMaxPrice = 500
	}
	if c.AggressiveMaxPrice <= 0 {
		c.AggressiveMaxPrice = 2000
	}
	if c.MaxQuantity <= 0 {
		c.MaxQuantity = 20
	}
	if c.StoreLookahead <= 0 {
		c.StoreLookahead = 8
	}
	if c.TotalTailLines <= 0 {
		c.TotalTailLines = 15
	}
	if c.MinTextLength <= 0 {
		c.MinTextLength = 15
	}
	return c
}

// Engine is the top-level receipt assembler.
type Engine struct {
	Logger *slog.Logger
	Cfg    Config

	// Now supplies the receipt date when none is recoverable from the text.
	// Injectable so parses are reproducible under test.
	Now func() time.Time

	stores *StoreIdentifier
	items  *ItemParser
}

// New builds an Engine over the given catalog. A nil catalog uses the
// built-in defaults; a nil logger uses slog.Default().
func New(cfg Config, cat *catalog.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	cfg = cfg.withDefaults()
	return &Engine{
		Logger: logger,
		Cfg:    cfg,
		Now:    time.Now,
		stores: NewStoreIdentifier(cat.Stores, cfg.StoreLookahead),
		items:  NewItemParser(categorize.New(cat.Categories), cfg.MaxQuantity),
	}
}

// Parse runs the full extraction over one OCR text blob using the configured
// price bounds.
func (e *Engine) Parse(text string) (*entity.Receipt, error) {
	return e.ParseWithBounds(text, 0)
}

// ParseWithBounds is Parse with a caller-supplied per-item price ceiling;
// maxPrice <= 0 keeps the configured bounds. Store and total detection run
// independently over the line set; item extraction runs a strict pass and
// falls back to an aggressive pass only when the strict pass finds nothing.
func (e *Engine) ParseWithBounds(text string, maxPrice float64) (*entity.Receipt, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < e.Cfg.MinTextLength {
		return nil, ErrTextTooShort
	}

	relaxed := SplitLines(text, FilterRelaxed)
	strict := SplitLines(text, FilterStrict)

	store := e.stores.Identify(relaxed)
	total := ExtractTotal(relaxed, e.Cfg.TotalTailLines)

	strictMax := e.Cfg.StrictMaxPrice
	aggressiveMax := e.Cfg.AggressiveMaxPrice
	if maxPrice > 0 {
		strictMax = maxPrice
		if maxPrice > aggressiveMax {
			aggressiveMax = maxPrice
		}
	}

	mode := "strict"
	items := e.extractItems(strict, strictMax)
	if len(items) == 0 {
		mode = "aggressive"
		items = e.extractItems(relaxed, aggressiveMax)
	}
	items = dedupeItems(items)

	date, dated := ExtractDate(text)
	if !dated {
		date = e.Now().UTC()
	}

	e.Logger.Debug("receipt.parse",
		"store", store,
		"items", len(items),
		"total", total,
		"mode", mode,
		"lines", len(relaxed),
	)

	return &entity.Receipt{
		StoreName:   store,
		Items:       items,
		TotalAmount: total,
		Date:        date,
	}, nil
}

// Lines returns the preprocessed line list without item extraction. The UI
// uses it to show the raw recognized text for debugging.
func (e *Engine) Lines(text string) []string {
	return SplitLines(text, FilterRelaxed)
}

func (e *Engine) extractItems(lines []string, maxPrice float64) []entity.Item {
	items := make([]entity.Item, 0, len(lines))
	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		if item, ok := e.items.Parse(line, next, e.Cfg.MinPrice, maxPrice); ok {
			items = append(items, item)
		}
	}
	return items
}

// dedupeItems keeps the first occurrence per case-insensitive name,
// preserving document order.
func dedupeItems(items []entity.Item) []entity.Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]entity.Item, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
