// Package testkit holds invariant helpers shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"quill/internal/diag"
	"quill/internal/source"
)

// CheckIssueInvariants runs the structural invariants every check result
// must satisfy:
//  1. every primary span points at the checked document and stays within
//     its content bounds (half-open, start <= end)
//  2. issues are sorted non-decreasing by start offset
func CheckIssueInvariants(items []diag.Diagnostic, file *source.File) error {
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevStart uint32
	for i, d := range items {
		sp := d.Primary
		if sp.File != file.ID {
			return fmt.Errorf("issue %d points at file %d, want %d", i, sp.File, file.ID)
		}
		if sp.Start > sp.End {
			return fmt.Errorf("issue %d has inverted span %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("issue %d span %v exceeds content length %d", i, sp, lenContent)
		}
		if i > 0 && sp.Start < prevStart {
			return fmt.Errorf("issue %d start %d precedes issue %d start %d", i, sp.Start, i-1, prevStart)
		}
		prevStart = sp.Start
	}
	return nil
}
