package util

import "strings"

// FirstJSONObject returns the earliest balanced {...} span in s.
// Models often wrap their JSON in prose or append commentary after it;
// a greedy first-{-to-last-} slice over-captures in that case, so we walk
// the string and track brace depth, skipping braces inside string literals.
func FirstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inStr := false
	esc := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
