package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor is a byte position inside a scanned string.
type Cursor struct {
	src string
	off uint32
}

// NewCursor creates a cursor at the start of s.
func NewCursor(s string) Cursor {
	// Validate once so offsets fit uint32 everywhere below.
	if _, err := safecast.Conv[uint32](len(s)); err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{src: s}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.src)
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Bump advances one byte and returns the byte read, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Mark remembers a position so a span can be cut later.
type Mark uint32

// Mark returns the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// Reset moves the cursor back to a mark.
func (c *Cursor) Reset(m Mark) {
	c.off = uint32(m)
}

// Off returns the current byte offset.
func (c *Cursor) Off() uint32 {
	return c.off
}
