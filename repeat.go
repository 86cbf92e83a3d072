package parsec

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	pool "github.com/jolestar/go-commons-pool"
)

// Repetitions collect their values in short-lived lists. The pool lets
// invocations reuse arraylist instances instead of allocating a new one each
// time. It does not make a single repetition faster: borrowing and returning
// take a lock, and the values are copied out of the collector.
type collectorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalCollectorPool *collectorPool

func init() {
	globalCollectorPool = &collectorPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return arraylist.New(), nil
		})
	globalCollectorPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalCollectorPool.opool = pool.NewObjectPool(globalCollectorPool.ctx, factory, config)
}

func borrowCollector() *arraylist.List {
	o, err := globalCollectorPool.opool.BorrowObject(globalCollectorPool.ctx)
	if err != nil {
		return arraylist.New()
	}
	return o.(*arraylist.List)
}

// Clears the collector and puts it back into the pool.
func releaseCollector(l *arraylist.List) {
	l.Clear()
	_ = globalCollectorPool.opool.ReturnObject(globalCollectorPool.ctx, l)
}

// collected copies the values of a collector, as the collector will be reused.
func collected(l *arraylist.List) List {
	values := make(List, l.Size())
	for i, v := range l.Values() {
		values[i] = v.(Value)
	}
	return values
}

// mustAdvance guards repetitions against parsers which succeed without
// consuming input. Repeating such a parser would loop forever.
func mustAdvance(from, to Cursor, combinator string) {
	if to.Offset() <= from.Offset() {
		panic(fmt.Sprintf("parsec: %s: repeated parser did not consume input at offset %d",
			combinator, from.Offset()))
	}
}

// ZeroOrMore applies p as often as possible, collecting its values in a
// List. It stops at the first failure of p, discarding the failed attempt.
// If p does not match at all, its value is the empty List and no input is
// consumed. The only failure ZeroOrMore reports is DepthExceeded.
//
// p must consume input whenever it succeeds. ZeroOrMore panics otherwise,
// as it would never terminate.
func ZeroOrMore(p Parser) Parser {
	return func(c Cursor) Result {
		coll := borrowCollector()
		defer releaseCollector(coll)
		cur := c
		for {
			res := p(cur)
			if !res.OK() {
				if res.Err.fatal() {
					return failure(res.Err, c)
				}
				break
			}
			mustAdvance(cur, res.Remaining, "ZeroOrMore")
			coll.Add(res.Value)
			cur = res.Remaining
		}
		return success(collected(coll), cur)
	}
}

// OneOrMore is like ZeroOrMore, but requires p to match at least once.
func OneOrMore(p Parser) Parser {
	more := ZeroOrMore(p)
	return func(c Cursor) Result {
		first := p(c)
		if !first.OK() {
			return failure(first.Err, c)
		}
		mustAdvance(c, first.Remaining, "OneOrMore")
		rest := more(first.Remaining)
		if !rest.OK() {
			return failure(rest.Err, c)
		}
		values := make(List, 0, len(rest.Value.(List))+1)
		values = append(values, first.Value)
		values = append(values, rest.Value.(List)...)
		return success(values, rest.Remaining)
	}
}

// SeparatedList matches zero or more occurrences of item, separated by sep.
// A trailing separator is not part of the list. Its value is the List of
// item values.
//
// If item does not match at all, SeparatedList succeeds with an empty List
// without consuming input. If a separator is not followed by an item, the
// separator is left unconsumed and the list ends before it. See
// SeparatedListStrict for a variant which treats this as an error.
func SeparatedList(item, sep Parser) Parser {
	return separatedList(item, sep, false)
}

// SeparatedListStrict is like SeparatedList, but fails if a separator is not
// followed by an item. It fails with the error of item.
func SeparatedListStrict(item, sep Parser) Parser {
	return separatedList(item, sep, true)
}

func separatedList(item, sep Parser, strict bool) Parser {
	return func(c Cursor) Result {
		first := item(c)
		if !first.OK() {
			if first.Err.fatal() {
				return failure(first.Err, c)
			}
			return success(List{}, c)
		}
		coll := borrowCollector()
		defer releaseCollector(coll)
		coll.Add(first.Value)
		cur := first.Remaining
		for {
			s := sep(cur)
			if !s.OK() {
				if s.Err.fatal() {
					return failure(s.Err, c)
				}
				break
			}
			next := item(s.Remaining)
			if !next.OK() {
				if strict || next.Err.fatal() {
					return failure(next.Err, c)
				}
				break // back off to before the separator
			}
			mustAdvance(cur, next.Remaining, "SeparatedList")
			coll.Add(next.Value)
			cur = next.Remaining
		}
		return success(collected(coll), cur)
	}
}
