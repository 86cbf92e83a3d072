package parsec

import (
	"fmt"
)

// ErrorKind classifies parse failures.
//
// ErrorKind implements the error interface, which lets clients check for a
// kind of failure with errors.Is:
//
//    if errors.Is(err, parsec.EndOfInput) { … }
//
type ErrorKind int8

// Kinds of parse failures.
const (
	Expected             ErrorKind = iota + 1 // a literal or structural token was required
	EndOfInput                                // input exhausted where a character was required
	PredicateRejected                         // a character failed a semantic check
	NoAlternativeMatched                      // every branch of an alternation failed
	DepthExceeded                             // input nests deeper than allowed
)

func (k ErrorKind) String() string {
	switch k {
	case Expected:
		return "expected"
	case EndOfInput:
		return "end of input"
	case PredicateRejected:
		return "predicate rejected"
	case NoAlternativeMatched:
		return "no alternative matched"
	case DepthExceeded:
		return "nesting depth exceeded"
	}
	return fmt.Sprintf("ErrorKind(%d)", int8(k))
}

func (k ErrorKind) Error() string {
	return k.String()
}

// Error is a parse failure.
//
// At is the position where the failure has been detected, which may be well
// behind the position the failing top-level parser has been called with.
// Token is set for failures of kind Expected and names what was expected.
// Cause optionally holds the failure which provoked this one, e.g., the error
// of the last branch of an alternation.
type Error struct {
	Kind  ErrorKind
	Token string
	At    Cursor
	Cause error
}

func (e *Error) Error() string {
	var msg string
	if e.Kind == Expected {
		msg = fmt.Sprintf("expected %q at offset %d", e.Token, e.At.Offset())
	} else {
		msg = fmt.Sprintf("%s at offset %d", e.Kind, e.At.Offset())
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the cause of e, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e's ErrorKind.
func (e *Error) Is(target error) bool {
	if k, ok := target.(ErrorKind); ok {
		return e.Kind == k
	}
	return false
}

// Innermost follows the chain of causes as long as they are parse errors and
// returns the last one. For a failed alternation this is the failure of the
// deepest last branch.
func (e *Error) Innermost() *Error {
	inner := e
	for {
		next, ok := inner.Cause.(*Error)
		if !ok || next == nil {
			return inner
		}
		inner = next
	}
}

// fatal errors are not subject to backtracking.
func (e *Error) fatal() bool {
	return e != nil && e.Kind == DepthExceeded
}

func expected(token string, at Cursor) *Error {
	return &Error{Kind: Expected, Token: token, At: at}
}
