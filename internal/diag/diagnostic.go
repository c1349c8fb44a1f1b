package diag

import (
	"quill/internal/source"
)

// Note is a secondary span with extra context for a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one located issue found in a document.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Context is a snippet of text around the primary span, newlines
	// flattened, kept for display so formatters need no document access.
	Context string
	Notes   []Note
}
