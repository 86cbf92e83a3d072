/*
Package parsec is a small library of parser combinators.

Description

A parser is a function from an input position (a Cursor) to a Result. A Result
either carries a parsed value together with the remaining input, or a typed
failure. Parsers are plain values: they are built once by calling combinator
functions with other parsers as arguments, and may then be applied to any number
of inputs, from any number of goroutines.

   list := parsec.Delimited(
       parsec.Literal("["),
       parsec.SeparatedList(parsec.Integer, parsec.Literal(", ")),
       parsec.Literal("]"))
   res := parsec.Parse(list, "[1, 2, 3]")
   if res.OK() {
       fmt.Println(res.Value) // [1, 2, 3]
   }

Grammars are evaluated by recursive descent with unbounded backtracking. There is
no memoization and no ambiguity resolution besides "first match wins" for
alternations: grammars have to list a more specific alternative before a more
general one which would otherwise shadow it.

Backtracking

No parser ever consumes input when it fails. A failing Sequence returns the cursor
it has been called with, not the cursor of the failing sub-parser, and so does
every other combinator. Alternation and the repetition combinators rely on this:
they simply retry from the cursor they were given.

Values

Parsers produce values of type Value, a small closed set of types: Number, Char,
Text, List and Unit. Sequences and repetitions produce a List, possibly nested.
Every value has a canonical string representation, which is what the example
grammars and the command line driver print.

Recursion

Mutually recursive grammar rules are expressed with Lazy, which defers binding a
parser until it is first invoked. Lazy also tracks the nesting depth of the
parse and fails with DepthExceeded if an input nests deeper than the configured
maximum (see WithMaxDepth), rather than exhausting the goroutine's stack.

Repetition of a parser which succeeds without consuming input will never
terminate. ZeroOrMore and friends detect this and panic, as this is always an
error in the grammar, not in the input.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package parsec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// DefaultMaxDepth is the maximum nesting depth of Lazy parsers, if not
// configured otherwise with WithMaxDepth.
const DefaultMaxDepth = 10000
