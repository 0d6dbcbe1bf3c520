package extract

import (
	"fmt"
	"sort"
	"strings"
)

// buildPrompt assembles the instruction for the model: menu, extraction
// rules, worked examples, then the raw message verbatim. Menu lines are
// sorted so the same (text, catalog) pair always produces the same prompt.
func buildPrompt(text string, catalog Catalog) string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("You extract canteen orders from short chat messages.\n\n")
	b.WriteString("Menu (the ONLY items that exist):\n")
	for _, n := range names {
		fmt.Fprintf(&b, "- %s: Rs %g\n", n, catalog[n])
	}
	b.WriteString(`
Rules:
- Ignore anything not on the menu.
- If an item is mentioned without a number, its quantity is 1.
- A quantity of 0 means the item was cancelled: omit it.
- Messages mix English and romanized Hindi and contain filler
  ("bhai", "please", "send", "de dena"); look only for menu items.
- Convert number words to digits in both languages
  (one/two/three..., ek/do/teen/char/paanch...).
- Map plurals and common synonyms to the exact menu name
  (tea -> chai, samose -> samosa, cutting -> choti).

Reply with a single JSON object of the form
{"items": [{"item": "<menu name>", "quantity": <number>}]}
and nothing else. No prose, no code fences.

Examples:
Message: "bhai do chai aur ek samosa"
Reply: {"items": [{"item": "chai", "quantity": 2}, {"item": "samosa", "quantity": 1}]}

Message: "send tea for three of us"
Reply: {"items": [{"item": "chai", "quantity": 3}]}

Message: "kuch nahi chahiye"
Reply: {"items": []}

Message: `)
	fmt.Fprintf(&b, "%q\nReply:", text)
	return b.String()
}
