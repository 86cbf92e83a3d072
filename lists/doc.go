/*
Package lists implements grammars for bracketed, nested lists.

Grammar

Lists contain elements, separated by a comma and a single space. An element is
either a leaf or a list by itself:

   list    ::= "[" [ element { ", " element } ] "]"
   element ::= list | leaf

Two kinds of leaves are supported: integers without leading zeros (see
parsec.Integer) and single letters. Thus

   [1, 2, [3, 4], [[727]]]
   [a, b, [c, d], [], [[e]]]

are valid lists of the respective kinds. The grammars are assembled from the
combinators of package parsec only.

Cross-Checking

Package lists additionally contains a recognizer for the same language which
uses an Earley parser instead of recursive descent (see Recognize). It serves
to cross-check the combinator grammars.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lists

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
