package parsec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// source is the immutable input text shared by all cursors of a parse.
type source struct {
	text     string
	maxDepth int
}

var emptySource = &source{maxDepth: DefaultMaxDepth}

// Cursor is an immutable position within an input text. Advancing a cursor
// creates a new one; the underlying text is never modified, so a cursor may
// always be kept around to backtrack to.
//
// The zero value is a cursor over the empty input.
type Cursor struct {
	src   *source
	pos   int // byte offset into src.text, 0 <= pos <= len(src.text)
	depth int // nesting depth of Lazy parsers
}

// Option configures the input of a parse.
type Option func(*options)

type options struct {
	maxDepth int
	form     *norm.Form
}

// WithMaxDepth limits the nesting depth of Lazy parsers. A value of 0 disables
// the limit.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxDepth = n
	}
}

// WithNormalization normalizes the input text to the given Unicode
// normalization form before parsing. This makes literals match regardless of
// whether the input uses pre-composed or decomposed characters.
func WithNormalization(form norm.Form) Option {
	return func(o *options) {
		o.form = &form
	}
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input string, opts ...Option) Cursor {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.form != nil {
		input = o.form.String(input)
	}
	return Cursor{src: &source{text: input, maxDepth: o.maxDepth}}
}

func (c Cursor) source() *source {
	if c.src == nil {
		return emptySource
	}
	return c.src
}

// Remaining returns the input text not yet consumed.
func (c Cursor) Remaining() string {
	return c.source().text[c.pos:]
}

// Offset returns the byte offset of the cursor within the input text.
func (c Cursor) Offset() int {
	return c.pos
}

// AtEnd is true if there is no input left.
func (c Cursor) AtEnd() bool {
	return c.pos >= len(c.source().text)
}

// Peek decodes the next character without consuming it. It returns the
// character and its length in bytes, or (utf8.RuneError, 0) at the end of input.
func (c Cursor) Peek() (rune, int) {
	if c.AtEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.Remaining())
}

// HasPrefix is true if the remaining input starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.Remaining(), s)
}

// Depth returns the current nesting depth of Lazy parsers.
func (c Cursor) Depth() int {
	return c.depth
}

// Advance returns a cursor moved n bytes forward. It is clamped to the end of
// the input, so a cursor never points beyond its text.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 {
		panic("parsec: cursor cannot move backwards")
	}
	rest := len(c.source().text) - c.pos
	if n > rest {
		n = rest
	}
	c.pos += n
	return c
}

// Consumed returns the text between c and a later cursor to.
func (c Cursor) Consumed(to Cursor) string {
	if to.pos < c.pos {
		return ""
	}
	return c.source().text[c.pos:to.pos]
}

func (c Cursor) withDepth(d int) Cursor {
	c.depth = d
	return c
}

func (c Cursor) String() string {
	rest := c.Remaining()
	if len(rest) > 16 {
		rest = rest[:16] + "…"
	}
	return fmt.Sprintf("[%d %q]", c.pos, rest)
}
