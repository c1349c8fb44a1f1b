package rules

import (
	"fmt"
	"unicode"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
)

// CheckRepeatedWords flags case-insensitive runs of the same word appearing
// two or more times in a row, separated only by whitespace. One issue per
// run, spanning the whole run; the message names the word as it first
// appeared. A trailing token that re-states the word up to an apostrophe
// ("dog dog's") closes the run at the apostrophe boundary.
func CheckRepeatedWords(r diag.Reporter, file *source.File, sentence source.Span, p Params) {
	text := sliceSpan(file, sentence)
	tokens := lexer.Words(file.ID, text, 0)

	i := 0
	for i < len(tokens) {
		j := i
		for j+1 < len(tokens) &&
			tokens[j+1].Lower == tokens[i].Lower &&
			whitespaceGap(text, tokens[j], tokens[j+1]) {
			j++
		}
		last := j
		end := int(tokens[j].Span.End)
		if j+1 < len(tokens) &&
			apostrophePrefix(tokens[j+1].Lower, tokens[i].Lower) &&
			whitespaceGap(text, tokens[j], tokens[j+1]) {
			last = j + 1
			end = int(tokens[j+1].Span.Start) + len(tokens[i].Lower)
		}
		if last > i {
			start := int(tokens[i].Span.Start)
			sp := source.Span{
				File:  file.ID,
				Start: sentence.Start + uint32(start),
				End:   sentence.Start + uint32(end),
			}
			diag.ReportWarning(r, diag.StyleRepeatedWord, sp,
				fmt.Sprintf("Repeated word '%s'.", tokens[i].Text)).
				WithContext(contextWindow(text, start, end, p.ContextWindow)).
				Emit()
		}
		i = last + 1
	}
}

// apostrophePrefix reports whether next starts with word immediately
// followed by an apostrophe, i.e. the word re-occurs as a whole up to a
// word boundary inside the next token. Tokens are ASCII, so byte slicing
// is exact.
func apostrophePrefix(next, word string) bool {
	return len(next) > len(word) && next[len(word)] == '\'' && next[:len(word)] == word
}

// whitespaceGap reports whether only whitespace, and at least one character
// of it, sits between two tokens.
func whitespaceGap(text string, a, b lexer.Token) bool {
	gap := text[a.Span.End:b.Span.Start]
	if gap == "" {
		return false
	}
	for _, r := range gap {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
