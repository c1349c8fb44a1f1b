package rules

import (
	"quill/internal/diag"
	"quill/internal/source"
)

// CheckDoubleSpaces flags every run of two or more consecutive ASCII spaces
// anywhere in the document, one issue per run.
func CheckDoubleSpaces(r diag.Reporter, file *source.File, p Params) {
	content := file.Content
	i := 0
	for i < len(content) {
		if content[i] != ' ' {
			i++
			continue
		}
		j := i
		for j < len(content) && content[j] == ' ' {
			j++
		}
		if j-i >= 2 {
			sp := source.Span{File: file.ID, Start: uint32(i), End: uint32(j)}
			diag.ReportWarning(r, diag.StyleDoubleSpace, sp,
				"Multiple consecutive spaces detected.").
				WithContext(contextWindow(string(content), i, j, p.ContextWindow)).
				Emit()
		}
		i = j
	}
}
