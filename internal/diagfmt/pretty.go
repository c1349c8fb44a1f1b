package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/diag"
	"quill/internal/source"
)

// Pretty renders issues in a human-readable form. It walks bag.Items()
// in order (call bag.Sort() beforehand). For each issue it prints
//
//	<path>:<line>:<col>: <SEV> <tag>: <message>
//
// followed by the offending source line with a caret underline, the
// flattened context snippet, and any notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printIssue(w, d, fs, opts)
	}
}

func printIssue(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	head := fmt.Sprintf("%s:%d:%d:", displayPath(f, fs, opts.PathMode), start.Line, start.Col)
	sev := d.Severity.String()
	tag := d.Code.ID()
	if opts.Color {
		head = color.New(color.Bold).Sprint(head)
		sev = severityColor(d.Severity).Sprint(sev)
		tag = color.New(color.FgCyan).Sprint(tag)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", head, sev, tag, d.Message)

	if opts.ShowSource {
		printSourceLine(w, f, d.Primary, start, opts.Color)
	}
	if opts.ShowContext && d.Context != "" {
		fmt.Fprintf(w, "    context: %s\n", d.Context)
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart := f.LineCol(note.Span.Start)
			fmt.Fprintf(w, "    note: %s:%d:%d: %s\n",
				displayPath(f, fs, opts.PathMode), noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

// printSourceLine prints the line holding the span start and underlines the
// covered part. Alignment uses display width so wide runes line up.
func printSourceLine(w io.Writer, f *source.File, sp source.Span, start source.LineCol, colored bool) {
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	before := line[:min(int(start.Col-1), len(line))]
	pad := strings.Repeat(" ", runewidth.StringWidth(before))

	// clamp the underline to the end of the line
	covered := int(sp.End - sp.Start)
	if covered < 1 {
		covered = 1
	}
	if rest := len(line) - len(before); covered > rest {
		covered = rest
	}
	width := runewidth.StringWidth(line[len(before) : len(before)+covered])
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgBlue)
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
