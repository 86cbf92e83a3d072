package lists

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/npillmayer/parsec"
)

// Kind selects the leaves of a list grammar.
type Kind int8

// Kinds of list leaves.
const (
	Integers Kind = iota // leaves are integers without leading zeros
	Letters              // leaves are single letters
)

func (k Kind) String() string {
	switch k {
	case Integers:
		return "integers"
	case Letters:
		return "letters"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Letter matches a single letter.
var Letter = parsec.Satisfy(unicode.IsLetter)

// New creates a list grammar with the given leaf parser.
//
// The grammar's rules for list and element are mutually recursive. The
// reference from element to list is resolved by a lazy parser.
func New(leaf parsec.Parser) parsec.Parser {
	var list parsec.Parser
	element := parsec.Alternation(
		parsec.Lazy(func() parsec.Parser { return list }),
		leaf,
	)
	list = parsec.Delimited(
		parsec.Literal("["),
		parsec.SeparatedList(element, parsec.Literal(", ")),
		parsec.Literal("]"),
	)
	return list
}

var grammars [2]parsec.Parser

var initGrammars sync.Once

// Grammar returns the shared list grammar for a kind of leaves.
func Grammar(kind Kind) parsec.Parser {
	initGrammars.Do(func() {
		grammars[Integers] = New(parsec.Integer)
		grammars[Letters] = New(Letter)
		T().Infof("lists: grammars initialized")
	})
	if kind != Integers && kind != Letters {
		panic(fmt.Sprintf("lists: no grammar for %v", kind))
	}
	return grammars[kind]
}

// Leaf returns the leaf parser for a kind of leaves.
func Leaf(kind Kind) parsec.Parser {
	if kind == Letters {
		return Letter
	}
	return parsec.Integer
}

// Parse parses input as a list. The complete input has to be consumed.
func Parse(input string, kind Kind, opts ...parsec.Option) (parsec.List, error) {
	v, err := parsec.ParseAll(Grammar(kind), input, opts...)
	if err != nil {
		return nil, err
	}
	return v.(parsec.List), nil
}
