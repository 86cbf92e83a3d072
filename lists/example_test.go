package lists_test

import (
	"fmt"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/lists"
)

func ExampleNew() {
	digits := parsec.Recognize(parsec.OneOrMore(parsec.Satisfy(func(r rune) bool {
		return r >= '0' && r <= '9'
	})))
	list := lists.New(digits)
	v, err := parsec.ParseAll(list, "[007, [42]]")
	fmt.Println(v, err)
	// Output: ["007", ["42"]] <nil>
}

func ExampleParse() {
	l, err := lists.Parse("[a, b, [c, d], [], [[e]]]", lists.Letters)
	fmt.Println(l, err)
	_, err = lists.Parse("[1, 2", lists.Integers)
	fmt.Println(err)
	// Output:
	// ['a', 'b', ['c', 'd'], [], [['e']]] <nil>
	// expected "]" at offset 5
}
