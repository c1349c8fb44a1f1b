package lexer

import (
	"strings"

	"quill/internal/source"
)

// Words extracts word tokens from s, scanning left to right without overlap.
// Token spans are offsets into s shifted by base and attributed to file, so
// sentence-local matches can be rebased onto the document in one pass.
//
// A token is a maximal run of ASCII letters and apostrophes that starts and
// ends on a word boundary. Apostrophes only count as word bytes when they sit
// inside such a run ("don't"), never at its edges, which mirrors how the
// tokens read in ordinary prose.
func Words(file source.FileID, s string, base uint32) []Token {
	var out []Token

	c := NewCursor(s)
	for !c.EOF() {
		if !isWordClassByte(c.Peek()) {
			c.Bump()
			continue
		}

		// Maximal run of candidate bytes.
		runStart := c.Mark()
		for !c.EOF() && isWordClassByte(c.Peek()) {
			c.Bump()
		}
		runEnd := int(c.Off())

		tok, next, ok := matchInRun(s, int(runStart), runEnd)
		if !ok {
			continue
		}
		out = append(out, Token{
			Text:  tok,
			Lower: strings.ToLower(tok),
			Span: source.Span{
				File:  file,
				Start: base + uint32(next-len(tok)),
				End:   base + uint32(next),
			},
		})
		c.Reset(Mark(next))
	}
	return out
}

// matchInRun finds the first boundary-bounded token inside the run [lo, hi).
// It returns the token text, the offset just past it, and whether one exists.
func matchInRun(s string, lo, hi int) (string, int, bool) {
	for p := lo; p < hi; p++ {
		if !boundaryAt(s, p) {
			continue
		}
		// Greedy to the run end, then back off until the tail boundary holds.
		for e := hi; e > p; e-- {
			if boundaryAt(s, e) {
				return s[p:e], e, true
			}
		}
	}
	return "", hi, false
}

// CountWordish counts maximal runs of \w runes (letters, digits, underscore)
// in s. Used by the run-on sentence heuristic.
func CountWordish(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if isWordRune(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}
