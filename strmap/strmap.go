/*
Package strmap implements a grammar for maps of quoted strings, like

	{"name": "parsec", "motto": "small \"and\" sweet"}

The grammar is

	map    ::= "{" [ pair { "," pair } ] "}"
	pair   ::= string ":" string
	string ::= '"' { plain | escape } '"'
	escape ::= '\' ( "n" | "r" | "t" | '\' | '"' )

White space is allowed around all the tokens, but not inside strings, where
it is part of the string's value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package strmap

import (
	"strings"
	"sync"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

var escapes = map[parsec.Char]string{
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'\\': "\\",
	'"':  "\"",
}

func plain(r rune) bool {
	return r != '"' && r != '\\'
}

func escaped(r rune) bool {
	_, ok := escapes[parsec.Char(r)]
	return ok
}

// String matches a quoted string with escapes. Its value is the unquoted
// string as parsec.Text.
var String = parsec.Map(
	parsec.Delimited(
		parsec.Rune('"'),
		parsec.ZeroOrMore(parsec.Alternation(
			parsec.Recognize(parsec.OneOrMore(parsec.Satisfy(plain))),
			parsec.Map(parsec.Preceded(parsec.Rune('\\'), parsec.Satisfy(escaped)),
				func(v parsec.Value) parsec.Value {
					return parsec.Text(escapes[v.(parsec.Char)])
				}),
		)),
		parsec.Rune('"'),
	),
	func(v parsec.Value) parsec.Value {
		var b strings.Builder
		for _, chunk := range v.(parsec.List) {
			b.WriteString(string(chunk.(parsec.Text)))
		}
		return parsec.Text(b.String())
	},
)

var grammar parsec.Parser

var initGrammar sync.Once

// Grammar returns the map grammar. Its value is a parsec.List of pairs in
// input order, each pair being a parsec.List of key and value.
func Grammar() parsec.Parser {
	initGrammar.Do(func() {
		pair := parsec.SeparatedPair(
			parsec.Token(String),
			parsec.Rune(':'),
			parsec.Token(String),
		)
		grammar = parsec.Delimited(
			parsec.Token(parsec.Rune('{')),
			parsec.SeparatedListStrict(pair, parsec.Rune(',')),
			parsec.Token(parsec.Rune('}')),
		)
		T().Infof("strmap: grammar initialized")
	})
	return grammar
}

// Parse parses input as a map and returns the list of its pairs.
// The complete input has to be consumed.
func Parse(input string, opts ...parsec.Option) (parsec.List, error) {
	v, err := parsec.ParseAll(Grammar(), input, opts...)
	if err != nil {
		return nil, err
	}
	return v.(parsec.List), nil
}

// Decode parses input as a map and returns it as a Go map. If a key occurs
// more than once, the last one wins.
func Decode(input string, opts ...parsec.Option) (map[string]string, error) {
	pairs, err := Parse(input, opts...)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		kv := p.(parsec.List)
		m[string(kv[0].(parsec.Text))] = string(kv[1].(parsec.Text))
	}
	return m, nil
}
