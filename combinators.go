package parsec

// Sequence applies parsers left to right, each one starting where the previous
// one stopped. It succeeds if all of them succeed; its value is the List of
// their values.
//
// If any of the parsers fails, Sequence fails with that parser's error and
// returns the cursor it has been called with. Clients never observe input
// consumed by the parsers preceding the failing one.
func Sequence(parsers ...Parser) Parser {
	return func(c Cursor) Result {
		values := make(List, 0, len(parsers))
		cur := c
		for _, p := range parsers {
			res := p(cur)
			if !res.OK() {
				return failure(res.Err, c)
			}
			values = append(values, res.Value)
			cur = res.Remaining
		}
		return success(values, cur)
	}
}

// Alternation is an ordered choice: it tries the parsers in turn, each one on
// the input Alternation has been called with, and returns the result of the
// first one which succeeds.
//
// If none of the parsers succeeds, Alternation fails with NoAlternativeMatched.
// The error of the last alternative is available as the Cause.
//
// A failure of kind DepthExceeded is not subject to backtracking and is
// returned immediately.
//
// There is no longest-match semantics. Grammars have to list a more specific
// alternative before a more general one which would shadow it.
func Alternation(parsers ...Parser) Parser {
	return func(c Cursor) Result {
		var last error
		for _, p := range parsers {
			res := p(c)
			if res.OK() || res.Err.fatal() {
				return res
			}
			last = res.Err
		}
		return failure(&Error{Kind: NoAlternativeMatched, At: c, Cause: last}, c)
	}
}

// Delimited matches open, inner and close in sequence and keeps the value of
// inner only.
//
//    Delimited(Literal("("), Integer, Literal(")")) on "(7)"  =>  7
//
func Delimited(open, inner, close Parser) Parser {
	seq := Sequence(open, inner, close)
	return func(c Cursor) Result {
		res := seq(c)
		if !res.OK() {
			return res
		}
		return success(res.Value.(List)[1], res.Remaining)
	}
}

// Preceded matches prefix and p in sequence and keeps the value of p.
func Preceded(prefix, p Parser) Parser {
	seq := Sequence(prefix, p)
	return func(c Cursor) Result {
		res := seq(c)
		if !res.OK() {
			return res
		}
		return success(res.Value.(List)[1], res.Remaining)
	}
}

// Terminated matches p and suffix in sequence and keeps the value of p.
func Terminated(p, suffix Parser) Parser {
	seq := Sequence(p, suffix)
	return func(c Cursor) Result {
		res := seq(c)
		if !res.OK() {
			return res
		}
		return success(res.Value.(List)[0], res.Remaining)
	}
}

// SeparatedPair matches first, sep and second in sequence. Its value is a
// List of two elements, the values of first and second.
func SeparatedPair(first, sep, second Parser) Parser {
	seq := Sequence(first, sep, second)
	return func(c Cursor) Result {
		res := seq(c)
		if !res.OK() {
			return res
		}
		v := res.Value.(List)
		return success(List{v[0], v[2]}, res.Remaining)
	}
}

// Optional matches p or nothing. If p fails, Optional succeeds with value
// Unit without consuming input.
func Optional(p Parser) Parser {
	return func(c Cursor) Result {
		if res := p(c); res.OK() || res.Err.fatal() {
			return res
		}
		return success(Unit{}, c)
	}
}

// Map transforms the value of a successful parse.
func Map(p Parser, f func(Value) Value) Parser {
	return func(c Cursor) Result {
		res := p(c)
		if !res.OK() {
			return res
		}
		return success(f(res.Value), res.Remaining)
	}
}

// Recognize applies p and replaces its value by the text p has consumed.
func Recognize(p Parser) Parser {
	return func(c Cursor) Result {
		res := p(c)
		if !res.OK() {
			return res
		}
		return success(Text(c.Consumed(res.Remaining)), res.Remaining)
	}
}

// Token matches p surrounded by optional white space.
func Token(p Parser) Parser {
	return Delimited(Whitespace, p, Whitespace)
}

// Trace wraps p and traces every invocation to the syntax tracer, at
// debug level.
func Trace(name string, p Parser) Parser {
	return func(c Cursor) Result {
		T().Debugf("%s ? %v", name, c)
		res := p(c)
		if res.OK() {
			T().Debugf("%s = %v, remaining %v", name, res.Value, res.Remaining)
		} else {
			T().Debugf("%s failed: %v", name, res.Err)
		}
		return res
	}
}
