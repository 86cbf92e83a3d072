package parsec

// Parser is a function from an input cursor to a parse result.
//
// Parsers must not have side effects besides returning a Result. On success,
// the remaining cursor is a suffix of the input cursor. On failure, the
// remaining cursor is the input cursor, untouched.
type Parser func(Cursor) Result

// Result is the outcome of applying a parser.
//
// A successful result has Err == nil and carries a Value and the cursor
// positioned after the consumed input. A failed result carries an Err and
// the cursor the parser has been called with.
type Result struct {
	Value     Value
	Remaining Cursor
	Err       *Error
}

// OK is true for successful results.
func (r Result) OK() bool {
	return r.Err == nil
}

// Leftover returns the input not consumed by the parser.
func (r Result) Leftover() string {
	return r.Remaining.Remaining()
}

func success(v Value, rest Cursor) Result {
	return Result{Value: v, Remaining: rest}
}

func failure(err *Error, at Cursor) Result {
	return Result{Remaining: at, Err: err}
}

// Parse applies p to input.
func Parse(p Parser, input string, opts ...Option) Result {
	return p(NewCursor(input, opts...))
}

// ParseAll applies p to input and requires p to consume all of it.
// Leftover input is reported as an error of kind Expected.
func ParseAll(p Parser, input string, opts ...Option) (Value, error) {
	res := Parse(p, input, opts...)
	if !res.OK() {
		return nil, res.Err
	}
	if !res.Remaining.AtEnd() {
		return nil, expected("end of input", res.Remaining)
	}
	return res.Value, nil
}
