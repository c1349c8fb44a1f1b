package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"quill/internal/diag"
	"quill/internal/source"
)

// closingMarks are quote/parenthesis characters that may legitimately follow
// the terminal punctuation ("He left."). They are stripped before looking at
// the sentence's substantive last character.
const closingMarks = "\"'”’)"

// CheckPunctuation flags a sentence whose substantive last character is not
// terminal punctuation. The issue span is the last non-whitespace character.
func CheckPunctuation(r diag.Reporter, file *source.File, sentence source.Span, p Params) {
	text := sliceSpan(file, sentence)
	stripped := strings.TrimRightFunc(text, unicode.IsSpace)
	if stripped == "" {
		return
	}

	core := strings.TrimRight(stripped, closingMarks)
	if core == "" {
		return
	}
	last, _ := utf8.DecodeLastRuneInString(core)
	if last == '.' || last == '!' || last == '?' {
		return
	}

	_, lastSize := utf8.DecodeLastRuneInString(stripped)
	end := sentence.Start + uint32(len(stripped))
	sp := source.Span{
		File:  file.ID,
		Start: end - uint32(lastSize),
		End:   end,
	}
	diag.ReportWarning(r, diag.StylePunctuation, sp,
		"Sentence should end with terminal punctuation.").
		WithContext(contextWindow(text, 0, len(stripped), p.ContextWindow)).
		Emit()
}
