// Package rules implements the fixed battery of style checks.
//
// Every check is a pure function over the document (or one sentence span of
// it) that emits zero or more diagnostics through a diag.Reporter. Checks
// never interact with each other and hold no state between invocations; the
// only shared inputs are the immutable closed sets in internal/lexicon and
// the Params knobs.
package rules

import (
	"quill/internal/diag"
	"quill/internal/source"
)

// Params carries the tunable knobs shared by checks.
type Params struct {
	// MaxSentenceWords is the word count above which a sentence is flagged
	// as a possible run-on.
	MaxSentenceWords int
	// ContextWindow is how many bytes of surrounding text are kept on each
	// side of an issue span for display.
	ContextWindow int
}

// DefaultParams returns the stock thresholds.
func DefaultParams() Params {
	return Params{
		MaxSentenceWords: 40,
		ContextWindow:    30,
	}
}

// DocumentCheck runs once against the whole document.
type DocumentCheck struct {
	Code diag.Code
	Run  func(r diag.Reporter, file *source.File, p Params)
}

// SentenceCheck runs once per sentence span.
type SentenceCheck struct {
	Code diag.Code
	Run  func(r diag.Reporter, file *source.File, sentence source.Span, p Params)
}

// DocumentChecks is the fixed set of whole-document checks.
var DocumentChecks = []DocumentCheck{
	{Code: diag.StyleDoubleSpace, Run: CheckDoubleSpaces},
}

// SentenceChecks is the fixed per-sentence pipeline, in invocation order.
// The order is part of the public contract: it decides tie order among
// issues that share a start offset.
var SentenceChecks = []SentenceCheck{
	{Code: diag.StyleCapitalization, Run: CheckCapitalization},
	{Code: diag.StylePunctuation, Run: CheckPunctuation},
	{Code: diag.StyleRepeatedWord, Run: CheckRepeatedWords},
	{Code: diag.StyleLongSentence, Run: CheckSentenceLength},
	{Code: diag.StyleVerbTense, Run: CheckVerbTense},
}

func sliceSpan(file *source.File, sp source.Span) string {
	return string(file.Content[sp.Start:sp.End])
}
