package util

import "strings"

func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range []string{"```json", "```JSON", "```"} {
		if strings.HasPrefix(s, p) {
			s = strings.TrimPrefix(s, p)
			break
		}
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
