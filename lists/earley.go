package lists

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
	"github.com/npillmayer/parsec"
)

var analyses [2]*lr.LRAnalysis

var initAnalyses sync.Once

func getParser(kind Kind) *earley.Parser {
	initAnalyses.Do(func() {
		analyses[Integers] = NewListGrammar(Integers)
		analyses[Letters] = NewListGrammar(Letters)
	})
	parser := earley.NewParser(analyses[kind], earley.StoreTokens(true))
	if parser == nil {
		panic("Could not create list grammar parser")
	}
	return parser
}

// NewListGrammar creates a context-free grammar for lists with leaves of the
// given kind, suitable for LR-style parsers:
//
//   List    ➞ [ ]  |  [ Items ]
//   Items   ➞ Element  |  Items , Element
//   Element ➞ List  |  leaf
//
// It is usually not called by clients directly, but rather used transparently
// with a call to Recognize.
func NewListGrammar(kind Kind) *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("Lists of " + kind.String())
	b.LHS("List").T("lbracket", tokLBracket).T("rbracket", tokRBracket).End()
	b.LHS("List").T("lbracket", tokLBracket).N("Items").T("rbracket", tokRBracket).End()
	b.LHS("Items").N("Element").End()
	b.LHS("Items").N("Items").T("comma", tokComma).N("Element").End()
	b.LHS("Element").N("List").End()
	if kind == Letters {
		b.LHS("Element").T("letter", tokLetter).End()
	} else {
		b.LHS("Element").T("integer", tokInteger).End()
	}
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

// Recognize checks if input is a valid list with leaves of the given kind,
// using an Earley parser. It accepts exactly the inputs Parse accepts.
// Options apply to the input text as they do for Parse.
func Recognize(input string, kind Kind, opts ...parsec.Option) (bool, error) {
	if kind != Integers && kind != Letters {
		return false, fmt.Errorf("lists: no grammar for %v", kind)
	}
	sc := NewScanner(input, kind, opts...)
	parser := getParser(kind)
	accept, err := parser.Parse(sc, nil)
	T().Debugf("Earley parser: accept=%v for %q", accept, abbrev(input))
	if lexErr := sc.Err(); lexErr != nil {
		return false, lexErr
	}
	if err != nil {
		return false, err
	}
	return accept, nil
}

// ErrMismatch is returned by CrossCheck if the combinator grammar and the
// Earley parser disagree about an input.
var ErrMismatch = errors.New("lists: combinator grammar and Earley parser disagree")

// CrossCheck parses input with both the combinator grammar and the Earley
// recognizer, both with the same options. It returns the combinator grammar's
// result, or ErrMismatch if the two disagree. The mismatch error includes the
// error of the side which rejected the input.
func CrossCheck(input string, kind Kind, opts ...parsec.Option) (bool, error) {
	_, perr := Parse(input, kind, opts...)
	accept, rerr := Recognize(input, kind, opts...)
	if accept != (perr == nil) {
		T().Errorf("cross-check failed for %q: combinators=%v, Earley=%v", abbrev(input), perr, rerr)
		cause := perr
		if perr == nil {
			cause = rerr
		}
		if cause == nil {
			cause = errors.New("rejected by Earley parser")
		}
		return false, fmt.Errorf("%w: %q: %v", ErrMismatch, abbrev(input), cause)
	}
	return accept, perr
}

// abbrev shortens input for messages.
func abbrev(input string) string {
	if len(input) > 16 {
		return input[:16] + "…"
	}
	return input
}
