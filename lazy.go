package parsec

import "sync"

// Lazy creates a parser which calls bind on its first invocation to get the
// parser to delegate to. This is the way to express recursive grammar rules,
// which refer to parsers not yet constructed:
//
//    var list parsec.Parser
//    element := parsec.Alternation(parsec.Lazy(func() parsec.Parser { return list }), parsec.Integer)
//    list = parsec.Delimited(parsec.Literal("["), parsec.SeparatedList(element, parsec.Literal(", ")), parsec.Literal("]"))
//
// Every invocation of a Lazy parser counts as one level of nesting. If the
// nesting depth exceeds the limit of the input (see WithMaxDepth), the parser
// fails with DepthExceeded.
//
// bind is called at most once; it must not return nil.
func Lazy(bind func() Parser) Parser {
	var once sync.Once
	var p Parser
	return func(c Cursor) Result {
		once.Do(func() {
			p = bind()
		})
		if p == nil {
			panic("parsec: Lazy bound to nil parser")
		}
		if max := c.source().maxDepth; max > 0 && c.depth >= max {
			T().Errorf("parsec: nesting depth %d exceeded at offset %d", max, c.Offset())
			return failure(&Error{Kind: DepthExceeded, At: c}, c)
		}
		res := p(c.withDepth(c.depth + 1))
		res.Remaining = res.Remaining.withDepth(c.depth)
		return res
	}
}
