// Package extract turns short free-form order messages ("2 chai", "bhai ek
// samosa dena") into validated {item, quantity} entries restricted to a
// per-call menu catalog. A cheap regex scan runs first; a Gemini-backed
// extractor covers the phrasings the scan cannot, with the scan as fallback
// when the model is slow, wrong or unreachable.
package extract

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Catalog maps a lowercase item name to its price. It defines the entire
// universe of recognizable items for one call and is never mutated here.
type Catalog map[string]float64

// DefaultCatalog is used when the caller supplies no catalog. Prices are
// placeholders for matching only.
var DefaultCatalog = Catalog{
	"chai":    10,
	"chips":   10,
	"choti":   10,
	"connect": 15,
	"samosa":  15,
}

// Item is one accepted order entry. Quantity is always > 0 after validation.
type Item struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// ErrExhausted is the only error Parse returns: neither the scanner nor the
// model produced a usable item.
var ErrExhausted = errors.New("extract: no known items found in text")

// Internal upstream failures. Absorbed (and logged) by Parse, never surfaced.
var (
	errUpstreamTimeout     = errors.New("extract: model call timed out")
	errUpstreamUnavailable = errors.New("extract: model unavailable")
	errUpstreamMalformed   = errors.New("extract: model output not usable")
)

// Model is a text-completion backend. Complete returns the raw model output
// for a single prompt; the extractor owns prompt construction and response
// validation.
type Model interface {
	Name() string
	GetModel() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config is the explicit knob set for an Extractor. No ambient env lookups
// happen inside the package.
type Config struct {
	// Timeout bounds one model call wall-clock. Zero means DefaultTimeout.
	Timeout time.Duration
}

const DefaultTimeout = 8 * time.Second

// Extractor sequences the scan and model paths. Stateless per call; one
// value is safe for concurrent use.
type Extractor struct {
	cfg   Config
	model Model
}

func New(cfg Config, m Model) *Extractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Extractor{cfg: cfg, model: m}
}

// Parse extracts order items from text. Precedence: a non-empty scan result
// wins outright and the model is never called. Otherwise the model path runs
// under the configured timeout; if it fails or comes back empty, the scanner
// gets one recovery pass before the call fails with ErrExhausted.
func (e *Extractor) Parse(ctx context.Context, text string, catalog Catalog) ([]Item, error) {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}

	if items := Scan(text, catalog); len(items) > 0 {
		return items, nil
	}

	items, err := e.llmExtract(ctx, text, catalog)
	if err != nil {
		log.Printf("extract: model path failed: %v", err)
	} else if len(items) > 0 {
		return items, nil
	}

	// Recovery pass. With the current scanner this repeats the first scan
	// verbatim, but the stage stays so a non-pure fallback can slot in
	// without changing the pipeline.
	if items := Scan(text, catalog); len(items) > 0 {
		return items, nil
	}
	return nil, ErrExhausted
}

// Manager keeps a per-chat Model override with a process-wide default.
type Manager struct {
	def Model
	m   sync.Map // chatID -> Model
}

func NewManager(defaultModel Model) *Manager {
	return &Manager{def: defaultModel}
}

func (m *Manager) Get(chatID int64) Model {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Model)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, mdl Model) {
	m.m.Store(chatID, mdl)
}
