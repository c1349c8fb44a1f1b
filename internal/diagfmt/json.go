package diagfmt

import (
	"encoding/json"
	"io"

	"quill/internal/diag"
	"quill/internal/source"
)

// LocationJSON places an issue inside a document.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is a secondary remark attached to an issue.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// IssueJSON is one issue in JSON form.
type IssueJSON struct {
	Severity string       `json:"severity"`
	Rule     string       `json:"rule"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Context  string       `json:"context,omitempty"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// IssuesOutput is the root structure of the JSON report.
type IssuesOutput struct {
	Issues []IssueJSON `json:"issues"`
	Count  int         `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      displayPath(f, fs, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildIssuesOutput assembles the JSON report structure without serializing it.
func BuildIssuesOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) IssuesOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	issues := make([]IssueJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]
		issue := IssueJSON{
			Severity: d.Severity.String(),
			Rule:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeContext {
			issue.Context = d.Context
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			issue.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				issue.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}
		issues = append(issues, issue)
	}

	return IssuesOutput{Issues: issues, Count: len(issues)}
}

// JSON writes the full machine-readable report.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildIssuesOutput(bag, fs, opts))
}
