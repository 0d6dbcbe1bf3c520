package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"tally-bot/api/internal/util"
)

// llmExtract runs the model path: build the prompt, call the model under the
// configured wall-clock timeout, pull the first balanced JSON object out of
// whatever came back, and keep only entries that survive validation.
func (e *Extractor) llmExtract(ctx context.Context, text string, catalog Catalog) ([]Item, error) {
	if e.model == nil {
		return nil, errUpstreamUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	out, err := e.model.Complete(ctx, buildPrompt(text, catalog))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w (%s)", errUpstreamTimeout, e.model.Name())
		}
		return nil, fmt.Errorf("%w: %v", errUpstreamUnavailable, err)
	}

	raw, ok := util.FirstJSONObject(util.StripCodeFences(out))
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in output", errUpstreamMalformed)
	}
	return decodeItems([]byte(raw), catalog)
}

// decodeItems parses the model payload and filters it against the catalog.
// The envelope must carry an "items" list; within it, broken elements are
// dropped one by one rather than failing the payload, so a partially junk
// reply still yields its valid entries.
func decodeItems(raw []byte, catalog Catalog) ([]Item, error) {
	var payload struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errUpstreamMalformed, err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("%w: missing items list", errUpstreamMalformed)
	}

	var items []Item
	seen := make(map[string]bool, len(payload.Items))
	for _, el := range payload.Items {
		var entry struct {
			Item     string  `json:"item"`
			Quantity float64 `json:"quantity"`
		}
		if err := json.Unmarshal(el, &entry); err != nil {
			log.Printf("extract: dropping malformed model entry: %v", err)
			continue
		}
		qty := int(entry.Quantity)
		if entry.Item == "" || entry.Quantity <= 0 || qty <= 0 {
			continue
		}
		// No synonym pass here: the prompt makes the model answer in exact
		// menu names, and anything else is untrusted.
		if _, known := catalog[entry.Item]; !known || seen[entry.Item] {
			continue
		}
		seen[entry.Item] = true
		items = append(items, Item{Item: entry.Item, Quantity: qty})
	}
	return items, nil
}
