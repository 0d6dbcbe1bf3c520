package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// scanPatterns are tried in priority order; the first one that matches
// anywhere in the text is used exclusively for that call, even if every one
// of its matches is later thrown out. Reordering changes which quantity
// phrasing gets recognized, so the order is load-bearing.
var scanPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:(-?\d+)\s+)?([A-Za-z]+)`),   // "2 chai" / bare "chai"
	regexp.MustCompile(`(-?\d+)\s*[xX]\s*([A-Za-z]+)`), // "2x chai"
	regexp.MustCompile(`(-?\d+)\s+of\s+([A-Za-z]+)`),   // "2 of chai"
}

// Scan is the deterministic extraction path: a token scan over text keeping
// only catalog-known items. It never fails; item-free text yields nil.
// Rules: first mention of an item wins, repeats are dropped; a missing
// quantity defaults to 1; a captured quantity <= 0 discards the match
// outright.
func Scan(text string, catalog Catalog) []Item {
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}

	var matches [][]string
	for _, re := range scanPatterns {
		if m := re.FindAllStringSubmatch(text, -1); len(m) > 0 {
			matches = m
			break
		}
	}

	var items []Item
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		name := canonical(strings.ToLower(m[2]))
		if _, known := catalog[name]; !known || seen[name] {
			continue
		}
		qty := 1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				continue
			}
			qty = n
		}
		seen[name] = true
		items = append(items, Item{Item: name, Quantity: qty})
	}
	return items
}
