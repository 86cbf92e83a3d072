package parsec

import (
	"strconv"
	"unicode"
)

// Literal matches the string s. Its value is Text(s).
//
//    Literal("hello") on "hello world"  =>  "hello", remaining " world"
//
func Literal(s string) Parser {
	return func(c Cursor) Result {
		if c.HasPrefix(s) {
			return success(Text(s), c.Advance(len(s)))
		}
		return failure(expected(s, c), c)
	}
}

// Rune matches the single character r. Its value is Char(r).
func Rune(r rune) Parser {
	tok := string(r)
	return func(c Cursor) Result {
		if ch, n := c.Peek(); n > 0 && ch == r {
			return success(Char(r), c.Advance(n))
		}
		return failure(expected(tok, c), c)
	}
}

// AnyChar matches a single character, whatever it is. It fails only at the
// end of input.
func AnyChar(c Cursor) Result {
	r, n := c.Peek()
	if n == 0 {
		return failure(&Error{Kind: EndOfInput, At: c}, c)
	}
	return success(Char(r), c.Advance(n))
}

// Satisfy matches a single character for which pred returns true.
func Satisfy(pred func(rune) bool) Parser {
	return func(c Cursor) Result {
		res := AnyChar(c)
		if !res.OK() {
			return res
		}
		if !pred(rune(res.Value.(Char))) {
			// report the rejected character, but do not consume it
			return failure(&Error{Kind: PredicateRejected, At: c}, c)
		}
		return res
	}
}

// Integer matches a decimal integer without leading zeros:
//
//    integer ::= '0' | onenine { digit }
//
// It consumes the longest run of digits consistent with this rule, thus a
// leading '0' is a complete integer by itself: on input "042" Integer
// yields 0, leaving "42".
func Integer(c Cursor) Result {
	rest := c.Remaining()
	if len(rest) == 0 || !isDigit(rest[0]) {
		return failure(expected("integer", c), c)
	}
	if rest[0] == '0' {
		return success(Number(0), c.Advance(1))
	}
	n := 1
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	i, err := strconv.ParseInt(rest[:n], 10, 64)
	if err != nil {
		e := expected("integer", c)
		e.Cause = err
		return failure(e, c)
	}
	return success(Number(i), c.Advance(n))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// TakeWhile consumes characters as long as pred holds. It never fails; its
// value is the consumed text, which may be empty.
func TakeWhile(pred func(rune) bool) Parser {
	return func(c Cursor) Result {
		end := c
		for {
			r, n := end.Peek()
			if n == 0 || !pred(r) {
				break
			}
			end = end.Advance(n)
		}
		return success(Text(c.Consumed(end)), end)
	}
}

// Whitespace skips white space, if any. Its value is Unit.
func Whitespace(c Cursor) Result {
	res := TakeWhile(unicode.IsSpace)(c)
	return success(Unit{}, res.Remaining)
}

// EOF succeeds at the end of input only.
func EOF(c Cursor) Result {
	if c.AtEnd() {
		return success(Unit{}, c)
	}
	return failure(expected("end of input", c), c)
}
