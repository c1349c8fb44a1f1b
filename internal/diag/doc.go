// Package diag defines the issue model shared by every check.
//
// Diagnostic is the central record: severity, a stable Code (whose ID is the
// rule tag shown to users, e.g. "repeated-word"), a human message, the
// primary source.Span into the original document, and a pre-cut Context
// snippet so formatters never need the document itself.
//
// Checks emit through the Reporter interface; BagReporter funnels into a Bag,
// which supports a cap, merging, deduplication, and the stable (file, start)
// sort that defines the public issue order. The package performs no
// formatting or IO; rendering lives in internal/diagfmt.
package diag
