package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"quill/internal/diag"
	"quill/internal/source"
)

// CheckCapitalization flags a sentence whose first alphabetic character is
// lowercase. Sentences that do not open with a letter are skipped.
func CheckCapitalization(r diag.Reporter, file *source.File, sentence source.Span, p Params) {
	text := sliceSpan(file, sentence)
	stripped := strings.TrimLeftFunc(text, unicode.IsSpace)
	if stripped == "" {
		return
	}
	leadingWS := len(text) - len(stripped)

	first, size := utf8.DecodeRuneInString(stripped)
	if !unicode.IsLetter(first) || unicode.IsUpper(first) {
		return
	}

	sp := source.Span{
		File:  file.ID,
		Start: sentence.Start + uint32(leadingWS),
		End:   sentence.Start + uint32(leadingWS+size),
	}
	diag.ReportWarning(r, diag.StyleCapitalization, sp,
		"Sentence should start with a capital letter.").
		WithContext(contextWindow(text, leadingWS, leadingWS+size, p.ContextWindow)).
		Emit()
}
