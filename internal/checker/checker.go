// Package checker wires the segmenter and the rule pipeline into the single
// check(text) entry point.
package checker

import (
	"quill/internal/diag"
	"quill/internal/rules"
	"quill/internal/segment"
	"quill/internal/source"
)

// Options configures one Checker. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Params rules.Params
	// Disabled turns individual rules off by code.
	Disabled map[diag.Code]bool
	// MaxIssues caps the bag; further issues are dropped.
	MaxIssues int
}

// DefaultOptions enables every rule with stock thresholds.
func DefaultOptions() Options {
	return Options{
		Params:    rules.DefaultParams(),
		MaxIssues: 1000,
	}
}

// Checker runs the fixed rule battery over documents. It carries no mutable
// state: the same Checker may be used for any number of Check calls, and
// repeated calls over the same content yield identical results.
type Checker struct {
	opts Options
}

// New creates a Checker with the given options.
func New(opts Options) *Checker {
	if opts.MaxIssues <= 0 {
		opts.MaxIssues = DefaultOptions().MaxIssues
	}
	if opts.Params.MaxSentenceWords <= 0 {
		opts.Params.MaxSentenceWords = rules.DefaultParams().MaxSentenceWords
	}
	if opts.Params.ContextWindow <= 0 {
		opts.Params.ContextWindow = rules.DefaultParams().ContextWindow
	}
	return &Checker{opts: opts}
}

// Check inspects one document and returns its issues sorted by start offset,
// ties keeping rule pipeline order. Any input is valid; the result may be
// empty but the call never fails. At most Options.MaxIssues issues are
// collected (default 1000); issues past the cap are dropped, not deferred.
func (c *Checker) Check(file *source.File) *diag.Bag {
	bag := diag.NewBag(c.opts.MaxIssues)
	reporter := diag.BagReporter{Bag: bag}

	for _, chk := range rules.DocumentChecks {
		if c.opts.Disabled[chk.Code] {
			continue
		}
		chk.Run(reporter, file, c.opts.Params)
	}

	for _, sentence := range segment.Sentences(file.ID, file.Content) {
		for _, chk := range rules.SentenceChecks {
			if c.opts.Disabled[chk.Code] {
				continue
			}
			chk.Run(reporter, file, sentence, c.opts.Params)
		}
	}

	bag.Sort()
	return bag
}

// CheckText is the convenience form for in-memory text: it wraps text in a
// virtual document and returns the issue slice directly.
func CheckText(text string) []diag.Diagnostic {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<memory>", []byte(text))
	return New(DefaultOptions()).Check(fs.Get(id)).Items()
}
