// Package driver runs the checker over files and directories, fans work out
// across workers, and caches per-file results on disk.
package driver

import (
	"quill/internal/checker"
	"quill/internal/diag"
	"quill/internal/observ"
	"quill/internal/source"
)

// Options configures a driver run.
type Options struct {
	Checker checker.Options
	// Jobs bounds worker parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// NoCache skips the disk cache entirely.
	NoCache bool
	// Timings enables per-file phase timing.
	Timings bool
	// Progress, when set, is called after each file finishes. Calls are
	// serialized; the callback must not block for long.
	Progress func(Event)
}

// DefaultOptions returns a run over the default checker with caching on.
func DefaultOptions() Options {
	return Options{Checker: checker.DefaultOptions()}
}

// Event reports one finished file to a progress consumer.
type Event struct {
	Path   string
	Index  int // 0-based position in the file list
	Total  int
	Issues int
	Cached bool
	Err    error
}

// FileResult is the outcome of checking a single file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
	Timing observ.Report
}
