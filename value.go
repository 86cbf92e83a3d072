package parsec

import (
	"strconv"
	"strings"
)

// Value is the semantic payload of a successful parse. It is one of
// Number, Char, Text, List or Unit.
type Value interface {
	String() string
	isValue()
}

// Number is an integer value.
type Number int64

// Char is a single character.
type Char rune

// Text is a string value, as produced by Literal or Recognize.
type Text string

// List is an ordered sequence of values. Lists nest.
type List []Value

// Unit is the value of parsers which consume and discard input.
type Unit struct{}

func (Number) isValue() {}
func (Char) isValue()   {}
func (Text) isValue()   {}
func (List) isValue()   {}
func (Unit) isValue()   {}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

func (t Text) String() string {
	return strconv.Quote(string(t))
}

func (Unit) String() string {
	return "()"
}

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		if v == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Flatten returns all non-list values of l in depth-first order.
func (l List) Flatten() []Value {
	var flat []Value
	for _, v := range l {
		if sub, ok := v.(List); ok {
			flat = append(flat, sub.Flatten()...)
		} else {
			flat = append(flat, v)
		}
	}
	return flat
}
