package rules

import (
	"strings"
	"unicode/utf8"
)

// contextWindow cuts a snippet of s around [start, end), padded on both
// sides, with newlines flattened to spaces for one-line display. The window
// edges are snapped outward to rune boundaries so the snippet stays valid
// UTF-8.
func contextWindow(s string, start, end, padding int) string {
	cs := start - padding
	if cs < 0 {
		cs = 0
	}
	ce := end + padding
	if ce > len(s) {
		ce = len(s)
	}
	for cs > 0 && !utf8.RuneStart(s[cs]) {
		cs--
	}
	for ce < len(s) && !utf8.RuneStart(s[ce]) {
		ce++
	}
	if cs >= ce {
		return ""
	}
	return strings.ReplaceAll(s[cs:ce], "\n", " ")
}
