package pipeline

import "strings"

// Transform strips surrounding whitespace and optionally upper-cases the
// result. strings.ToUpper applies the locale-independent Unicode case
// mapping, so identical input always yields identical output.
func Transform(text string, uppercase bool) string {
	out := strings.TrimSpace(text)
	if uppercase {
		out = strings.ToUpper(out)
	}
	return out
}
