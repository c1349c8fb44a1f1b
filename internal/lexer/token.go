package lexer

import (
	"quill/internal/source"
)

// Token is one word match: a maximal run of ASCII letters and apostrophes,
// bounded by word boundaries on both sides.
type Token struct {
	Text  string // the word as it appeared
	Lower string // lowercased form used by the lexicon
	Span  source.Span
}
