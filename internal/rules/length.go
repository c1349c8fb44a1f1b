package rules

import (
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
)

// CheckSentenceLength flags a sentence whose word count exceeds the run-on
// threshold. The issue spans the entire sentence slice.
func CheckSentenceLength(r diag.Reporter, file *source.File, sentence source.Span, p Params) {
	text := sliceSpan(file, sentence)
	if lexer.CountWordish(text) <= p.MaxSentenceWords {
		return
	}
	diag.ReportWarning(r, diag.StyleLongSentence, sentence,
		"Sentence is long and may be a run-on.").
		WithContext(contextWindow(text, 0, len(text), p.ContextWindow)).
		Emit()
}
