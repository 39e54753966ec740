// Package scan contains the character cursor both parsers are built on and
// the error kinds they report.
//
// A cursor never backtracks. Grammar rules choose between alternatives by
// looking at Next before they consume anything. The primitives raise parse
// errors by panicking with an *Error; the parser entry points convert them
// back with Recover so that a parse call either returns a complete tree or an
// error.
package scan

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor is a read position in an immutable source string.
type Cursor struct {
	input string
	pos   int
}

// New returns a cursor at the start of input.
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// EOF reports whether all input has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.input)
}

// Next returns the current character without consuming it.
func (c *Cursor) Next() rune {
	if c.EOF() {
		c.Fail(ErrEndOfInput, "")
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r
}

// Consume returns the current character and advances past it. Multi-byte
// characters are skipped as a whole.
func (c *Cursor) Consume() rune {
	if c.EOF() {
		c.Fail(ErrEndOfInput, "")
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r
}

// ConsumeWhile consumes the longest run of characters for which test returns
// true. The result may be empty.
func (c *Cursor) ConsumeWhile(test func(rune) bool) string {
	start := c.pos
	for !c.EOF() {
		r, size := utf8.DecodeRuneInString(c.input[c.pos:])
		if !test(r) {
			break
		}
		c.pos += size
	}
	return c.input[start:c.pos]
}

// ConsumeWhitespace discards a run of white space.
func (c *Cursor) ConsumeWhitespace() {
	c.ConsumeWhile(unicode.IsSpace)
}

// Since returns the input consumed from offset start up to the cursor.
func (c *Cursor) Since(start int) string {
	return c.input[start:c.pos]
}

// StartsWith reports whether the unconsumed input begins with s.
func (c *Cursor) StartsWith(s string) bool {
	return strings.HasPrefix(c.input[c.pos:], s)
}

// Expect consumes one character and fails with ErrMismatch unless it is want.
func (c *Cursor) Expect(want rune) {
	at := c.pos
	if got := c.Consume(); got != want {
		c.failAt(at, ErrMismatch, "expected %q, found %q", want, got)
	}
}

// Take consumes exactly n bytes. It fails with ErrEndOfInput if fewer are left.
func (c *Cursor) Take(n int) string {
	if c.pos+n > len(c.input) {
		c.Fail(ErrEndOfInput, "need %d more bytes, have %d", n, len(c.input)-c.pos)
	}
	s := c.input[c.pos : c.pos+n]
	c.pos += n
	return s
}

// Fail aborts the current parse at the cursor position.
func (c *Cursor) Fail(kind error, format string, a ...any) {
	c.failAt(c.pos, kind, format, a...)
}

// FailAt aborts the current parse, reporting the given offset.
func (c *Cursor) FailAt(offset int, kind error, format string, a ...any) {
	c.failAt(offset, kind, format, a...)
}

func (c *Cursor) failAt(offset int, kind error, format string, a ...any) {
	e := &Error{Kind: kind, Offset: offset}
	if format != "" {
		e.Msg = fmt.Sprintf(format, a...)
	}
	panic(e)
}
