package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"quill/internal/lexer"
	"quill/internal/source"
)

// TokenOutput is the JSON form of a word token.
type TokenOutput struct {
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty lists word tokens with their positions.
func FormatTokensPretty(w io.Writer, tokens []lexer.Token, fs *source.FileSet) {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		fmt.Fprintf(w, "%3d: %-20q at %d:%d-%d:%d\n",
			i+1, tok.Text,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
}

// FormatTokensJSON writes word tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []lexer.Token) error {
	output := make([]TokenOutput, len(tokens))
	for i, tok := range tokens {
		output[i] = TokenOutput{Text: tok.Text, Span: tok.Span}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// SentenceOutput is the JSON form of a sentence span.
type SentenceOutput struct {
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

// FormatSentencesPretty lists sentences with their byte ranges.
func FormatSentencesPretty(w io.Writer, spans []source.Span, fs *source.FileSet) {
	for i, sp := range spans {
		f := fs.Get(sp.File)
		fmt.Fprintf(w, "%3d: [%d-%d] %s\n", i+1, sp.Start, sp.End, f.Slice(sp))
	}
}

// FormatSentencesJSON writes sentence spans as a JSON array.
func FormatSentencesJSON(w io.Writer, spans []source.Span, fs *source.FileSet) error {
	output := make([]SentenceOutput, len(spans))
	for i, sp := range spans {
		f := fs.Get(sp.File)
		output[i] = SentenceOutput{Text: f.Slice(sp), Span: sp}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
