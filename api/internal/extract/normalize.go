package extract

// synonyms maps surface forms (plurals, spellings, cross-language names)
// to canonical menu keys. Fixed data; not derived from any catalog.
var synonyms = map[string]string{
	// chai
	"tea":   "chai",
	"teas":  "chai",
	"chais": "chai",
	"chay":  "chai",
	"chaai": "chai",
	"chaii": "chai",
	// chips
	"chip":    "chips",
	"crisps":  "chips",
	"kurkure": "chips",
	// choti (small chai)
	"chhoti":  "choti",
	"chotis":  "choti",
	"cutting": "choti",
	// connect
	"connects": "connect",
	"sutta":    "connect",
	"suttas":   "connect",
	// samosa
	"samosas": "samosa",
	"samose":  "samosa",
	"samosey": "samosa",
}

// canonical resolves a lowercase token to its menu key, or returns the
// token unchanged when no mapping exists.
func canonical(tok string) string {
	if c, ok := synonyms[tok]; ok {
		return c
	}
	return tok
}
