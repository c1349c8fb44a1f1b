// Package segment splits a document into sentence spans.
//
// A sentence is a maximal run of bytes that are not terminal punctuation
// (`.`, `!`, `?`), extended through the single terminator that ends it when
// one exists. Each raw run is trimmed of surrounding whitespace; runs that
// collapse to nothing are dropped. Spans therefore keep their own terminator
// but never leading or trailing whitespace, and successive spans never
// overlap. Segmentation holds no state: every call rescans from the start.
package segment

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"quill/internal/source"
)

// IsTerminator reports whether b ends a sentence.
func IsTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// Sentences returns the sentence spans of content in document order.
func Sentences(file source.FileID, content []byte) []source.Span {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var out []source.Span
	i := 0
	for i < len(content) {
		if IsTerminator(content[i]) {
			i++
			continue
		}

		start := i
		for i < len(content) && !IsTerminator(content[i]) {
			i++
		}
		end := i
		if i < len(content) {
			// Keep the terminator inside the raw run.
			end++
			i++
		}

		if sp, ok := trimSpan(file, content, start, end); ok {
			out = append(out, sp)
		}
	}
	return out
}

// trimSpan strips surrounding whitespace from the raw run [start, end).
func trimSpan(file source.FileID, content []byte, start, end int) (source.Span, bool) {
	for start < end {
		r, size := utf8.DecodeRune(content[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRune(content[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if start >= end {
		return source.Span{}, false
	}
	return source.Span{File: file, Start: uint32(start), End: uint32(end)}, true
}
