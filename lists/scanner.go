package lists

import (
	"fmt"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/parsec"
)

// Token values for the Earley grammar.
const (
	tokLBracket = iota + 1
	tokRBracket
	tokComma
	tokInteger
	tokLetter
)

var punctuation = parsec.Alternation(
	parsec.Literal("["),
	parsec.Literal("]"),
	parsec.Literal(", "),
)

var punctuationTokens = map[parsec.Text]int{
	"[":  tokLBracket,
	"]":  tokRBracket,
	", ": tokComma,
}

// Scanner implements the scanner.Tokenizer interface for list input.
// It reads the input with the same primitives as the combinator grammars do,
// i.e., the tokens "[", "]", ", " and leaves.
type Scanner struct {
	cursor  parsec.Cursor // read position
	leaf    parsec.Parser // parser for leaves
	leafTok int           // token value for leaves
	handler func(error)   // error handler, may be nil
	err     error         // first error encountered
}

// NewScanner creates a scanner for list input with leaves of the given kind.
// Options are applied to the input as for parsec.NewCursor, e.g., for
// normalization.
func NewScanner(input string, kind Kind, opts ...parsec.Option) *Scanner {
	sc := &Scanner{
		cursor:  parsec.NewCursor(input, opts...),
		leaf:    Leaf(kind),
		leafTok: tokInteger,
	}
	if kind == Letters {
		sc.leafTok = tokLetter
	}
	return sc
}

// NextToken reads the next token from the input.
//
// The token's value will be set to the parsed value (parsec.Text for
// punctuation, parsec.Number or parsec.Char for leaves).
// Illegal input is reported to the error handler and ends the token stream,
// i.e., the scanner will return EOF. Clients should check Err after parsing.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	pos := uint64(sc.cursor.Offset())
	if sc.cursor.AtEnd() {
		return scanner.EOF, "", pos, 0
	}
	if res := punctuation(sc.cursor); res.OK() {
		return sc.accept(punctuationTokens[res.Value.(parsec.Text)], res)
	}
	res := sc.leaf(sc.cursor)
	if res.OK() {
		return sc.accept(sc.leafTok, res)
	}
	err := fmt.Errorf("illegal list input: %w", res.Err)
	if sc.err == nil {
		sc.err = err
	}
	if sc.handler != nil {
		sc.handler(err)
	}
	T().Debugf("scanner stopped at offset %d", pos)
	sc.cursor = sc.cursor.Advance(len(sc.cursor.Remaining()))
	return scanner.EOF, "", pos, 0
}

func (sc *Scanner) accept(tok int, res parsec.Result) (int, interface{}, uint64, uint64) {
	pos := uint64(sc.cursor.Offset())
	length := uint64(res.Remaining.Offset()) - pos
	sc.cursor = res.Remaining
	T().Debugf("scanned token %d = %v at %d", tok, res.Value, pos)
	return tok, res.Value, pos, length
}

// SetErrorHandler sets an error handler function, which receives errors for
// illegal input.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.handler = h
}

// Err returns the first error the scanner encountered, if any.
func (sc *Scanner) Err() error {
	return sc.err
}
