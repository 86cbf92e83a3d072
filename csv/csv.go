/*
Package csv implements a grammar for comma separated lines of integers.

	csv  ::= { line }
	line ::= int { "," int } [ "\n" ]

Contrary to the grammars of package lists, which are composed from the
combinators of package parsec, this grammar uses primitives of its own. They
operate on parsec.Cursor and produce parsec.Result values, but bypass the
shared combinator set.

The integers of this grammar are any non-empty run of ASCII digits, including
leading zeros. This is a looser rule than the one of parsec.Integer: "007"
is a valid CSV field, but not a valid list element.

A blank line results in an empty record.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package csv

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

func expected(token string, at parsec.Cursor) *parsec.Error {
	return &parsec.Error{Kind: parsec.Expected, Token: token, At: at}
}

// Int matches a run of decimal digits, leading zeros allowed. Its value is a
// parsec.Number.
func Int(c parsec.Cursor) parsec.Result {
	rest := c.Remaining()
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return parsec.Result{Remaining: c, Err: expected("integer", c)}
	}
	i, err := strconv.ParseInt(rest[:n], 10, 64)
	if err != nil {
		e := expected("integer", c)
		e.Cause = err
		return parsec.Result{Remaining: c, Err: e}
	}
	return parsec.Result{Value: parsec.Number(i), Remaining: c.Advance(n)}
}

// Line matches a single line of comma separated integers, including an
// optional terminating newline. Its value is the parsec.List of the integers.
// A lone newline is an empty line.
func Line(c parsec.Cursor) parsec.Result {
	if c.HasPrefix("\n") {
		return parsec.Result{Value: parsec.List{}, Remaining: c.Advance(1)}
	}
	first := Int(c)
	if !first.OK() {
		return first
	}
	record := parsec.List{first.Value}
	cur := first.Remaining
	for cur.HasPrefix(",") {
		field := Int(cur.Advance(1))
		if !field.OK() {
			return parsec.Result{Remaining: c, Err: field.Err}
		}
		record = append(record, field.Value)
		cur = field.Remaining
	}
	if cur.HasPrefix("\n") {
		cur = cur.Advance(1)
	}
	return parsec.Result{Value: record, Remaining: cur}
}

// Grammar matches a sequence of lines. Its value is a parsec.List of records,
// each being a parsec.List of parsec.Number values.
//
// Grammar stops at the first line which does not start with a digit or a
// newline. It fails if a line is malformed after its first field, e.g. if a
// comma is not followed by an integer, or if any field overflows int64.
func Grammar(c parsec.Cursor) parsec.Result {
	records := parsec.List{}
	cur := c
	for !cur.AtEnd() {
		res := Line(cur)
		if !res.OK() {
			if res.Err.At.Offset() > cur.Offset() || res.Err.Cause != nil {
				return parsec.Result{Remaining: c, Err: res.Err}
			}
			break
		}
		if res.Remaining.Offset() == cur.Offset() { // no progress
			break
		}
		records = append(records, res.Value)
		cur = res.Remaining
	}
	return parsec.Result{Value: records, Remaining: cur}
}

// Parse parses input as CSV. The complete input has to be consumed; leftover
// input is reported as an error of kind parsec.Expected.
func Parse(input string, opts ...parsec.Option) (parsec.List, error) {
	res := Grammar(parsec.NewCursor(input, opts...))
	if !res.OK() {
		T().Debugf("csv: %v", res.Err)
		return nil, res.Err
	}
	if !res.Remaining.AtEnd() {
		return nil, expected("integer", res.Remaining)
	}
	return res.Value.(parsec.List), nil
}

// Records parses input as CSV and returns the records as slices of int64.
func Records(input string, opts ...parsec.Option) ([][]int64, error) {
	l, err := Parse(input, opts...)
	if err != nil {
		return nil, err
	}
	records := make([][]int64, len(l))
	for i, rec := range l {
		fields := rec.(parsec.List)
		records[i] = make([]int64, len(fields))
		for j, f := range fields {
			records[i][j] = int64(f.(parsec.Number))
		}
	}
	return records, nil
}

// Read reads all of r and parses it as CSV.
func Read(r io.Reader, opts ...parsec.Option) ([][]int64, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csv: cannot read input: %w", err)
	}
	return Records(string(input), opts...)
}
