package stringutils

import "strings"

// Truncate shortens s to at most max runes, ending in "..." when cut.
// Newlines are folded to spaces so the result fits on one table row.
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
