package lists

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/norm"
)

func TestIntegerLists(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	l, err := Parse("[1, 2, [3, 4], [[727]]]", Integers)
	if err != nil {
		t.Fatalf("expected list to parse, failed: %v", err)
	}
	if l.String() != "[1, 2, [3, 4], [[727]]]" {
		t.Errorf("unexpected list value %v", l)
	}
	if len(l) != 4 {
		t.Errorf("expected 4 top-level elements, have %d", len(l))
	}
	if n, ok := l[0].(parsec.Number); !ok || n != 1 {
		t.Errorf("expected first element to be number 1, is %#v", l[0])
	}
}

func TestLetterLists(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, err := Parse("[a, b, [c, d], [], [[e]]]", Letters)
	if err != nil {
		t.Fatalf("expected list to parse, failed: %v", err)
	}
	if l.String() != "['a', 'b', ['c', 'd'], [], [['e']]]" {
		t.Errorf("unexpected list value %v", l)
	}
	if _, err := Parse("[1]", Letters); err == nil {
		t.Errorf("expected integers to be rejected in a list of letters")
	}
}

func TestMalformedLists(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	_, err := Parse("[1, 2", Integers)
	if err == nil {
		t.Fatalf("expected unterminated list to fail")
	}
	var perr *parsec.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a parse error, have %T", err)
	}
	if perr.Kind != parsec.Expected || perr.Token != "]" || perr.At.Offset() != 5 {
		t.Errorf("expected failure 'expected \"]\"' at offset 5, is %v", perr)
	}
	for _, input := range []string{"", "[", "1", "[1,2]", "[1, ]", "[01]", "[1] ", "[[1]"} {
		if _, err := Parse(input, Integers); err == nil {
			t.Errorf("expected %q to be rejected", input)
		}
	}
}

func TestEmptyList(t *testing.T) {
	l, err := Parse("[]", Integers)
	if err != nil {
		t.Fatalf("expected empty list to parse, failed: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("expected an empty, non-nil list, have %#v", l)
	}
}

func TestListDepthLimit(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	input := "[[[[[[1]]]]]]"
	if _, err := Parse(input, Integers, parsec.WithMaxDepth(3)); !errors.Is(err, parsec.DepthExceeded) {
		t.Errorf("expected depth limit to be exceeded, have %v", err)
	}
	if _, err := Parse(input, Integers); err != nil {
		t.Errorf("expected list to parse with the default depth limit, failed: %v", err)
	}
}

func TestRecognize(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	accept, err := Recognize("[1, 2, [3, 4], [[727]]]", Integers)
	if err != nil || !accept {
		t.Errorf("expected Earley parser to accept list, have %v / %v", accept, err)
	}
	accept, err = Recognize("[1,2]", Integers)
	if accept || err == nil {
		t.Errorf("expected Earley parser to reject illegal input with an error")
	}
}

func TestCrossCheck(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		input string
		kind  Kind
		ok    bool
	}{
		{"[]", Integers, true},
		{"[0]", Integers, true},
		{"[1, 2, [3, 4], [[727]]]", Integers, true},
		{"[[], [[]], []]", Integers, true},
		{"[01]", Integers, false},
		{"[1, 2", Integers, false},
		{"[1, ]", Integers, false},
		{"[1]]", Integers, false},
		{"[a, b, [c, d], [], [[e]]]", Letters, true},
		{"[ab]", Letters, false},
		{"[a, 1]", Letters, false},
		{"", Letters, false},
	}
	for i, test := range tests {
		ok, err := CrossCheck(test.input, test.kind)
		if errors.Is(err, ErrMismatch) {
			t.Errorf("test #%d: %v", i, err)
			continue
		}
		if ok != test.ok {
			t.Errorf("test #%d: expected %q to be accepted=%v, is %v", i, test.input, test.ok, ok)
		}
	}
}

func TestKindString(t *testing.T) {
	if Letters.String() != "letters" || Kind(7).String() != "Kind(7)" {
		t.Errorf("unexpected kind names %v, %v", Letters, Kind(7))
	}
}

func TestCrossCheckOptions(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	decomposed := "[e\u0301, b]" // e + combining acute accent
	if _, err := CrossCheck(decomposed, Letters); errors.Is(err, ErrMismatch) {
		t.Errorf("expected decomposed input to be rejected by both parsers, have %v", err)
	}
	ok, err := CrossCheck(decomposed, Letters, parsec.WithNormalization(norm.NFC))
	if !ok || err != nil {
		t.Errorf("expected NFC normalized input to be accepted by both parsers, have %v / %v", ok, err)
	}
	accept, err := Recognize(decomposed, Letters, parsec.WithNormalization(norm.NFC))
	if !accept || err != nil {
		t.Errorf("expected Earley parser to scan the normalized input, have %v / %v", accept, err)
	}
	deep := strings.Repeat("[", 6) + "1" + strings.Repeat("]", 6)
	if ok, err := CrossCheck(deep, Integers, parsec.WithMaxDepth(0)); !ok || err != nil {
		t.Errorf("expected unlimited depth to be passed to the combinator grammar, have %v / %v", ok, err)
	}
}

func TestMismatchMessage(t *testing.T) {
	gtrace.SyntaxTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelError)
	//
	// a depth limit is known to the combinator grammar only
	deep := strings.Repeat("[", 20) + "1" + strings.Repeat("]", 20)
	_, err := CrossCheck(deep, Integers, parsec.WithMaxDepth(3))
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected parsers to disagree, have %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, parsec.DepthExceeded.Error()) {
		t.Errorf("expected mismatch error to include the rejecting parser's error, is %q", msg)
	}
	if strings.Contains(msg, deep) || !strings.Contains(msg, "…") {
		t.Errorf("expected input to be abbreviated in mismatch error, is %q", msg)
	}
}
