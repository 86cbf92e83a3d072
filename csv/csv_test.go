package csv

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/schuko/testconfig"
)

func TestRecords(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	l, err := Parse("1,2,3\n4,5,6\n")
	if err != nil {
		t.Fatalf("expected CSV to parse, failed: %v", err)
	}
	if l.String() != "[[1, 2, 3], [4, 5, 6]]" {
		t.Errorf("unexpected CSV value %v", l)
	}
	records, err := Records("1,2,3\n4,5,6")
	if err != nil {
		t.Fatalf("expected CSV without final newline to parse, failed: %v", err)
	}
	if len(records) != 2 || records[1][2] != 6 {
		t.Errorf("unexpected records %v", records)
	}
}

func TestPermissiveInt(t *testing.T) {
	res := Int(parsec.NewCursor("007,1"))
	if !res.OK() || res.Value != parsec.Number(7) || res.Leftover() != ",1" {
		t.Errorf("expected leading zeros to be accepted, have %v / %q", res.Value, res.Leftover())
	}
	res = Int(parsec.NewCursor("x"))
	if res.OK() || res.Err.Token != "integer" {
		t.Errorf("expected Int to fail on a non-digit, have %v", res.Value)
	}
	res = Int(parsec.NewCursor("99999999999999999999"))
	if res.OK() || res.Err.Cause == nil {
		t.Errorf("expected Int to fail on overflow with a cause")
	}
}

func TestBlankLines(t *testing.T) {
	records, err := Records("1\n\n2,3\n")
	if err != nil {
		t.Fatalf("expected CSV with blank line to parse, failed: %v", err)
	}
	if len(records) != 3 || len(records[1]) != 0 {
		t.Errorf("expected blank line to be an empty record, have %v", records)
	}
	records, err = Records("")
	if err != nil || len(records) != 0 {
		t.Errorf("expected empty input to yield no records, have %v / %v", records, err)
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"1,2,\n", 4},
		{"1,x", 2},
		{"1,2\nabc\n", 4},
		{"1;2", 1},
		{" 1", 0},
	}
	for i, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("test #%d: expected %q to fail", i, test.input)
			continue
		}
		if !errors.Is(err, parsec.Expected) {
			t.Errorf("test #%d: expected error of kind 'expected', is %v", i, err)
		}
		var perr *parsec.Error
		if errors.As(err, &perr) && (perr.Token != "integer" || perr.At.Offset() != test.offset) {
			t.Errorf("test #%d: expected 'integer' at offset %d, is %v", i, test.offset, perr)
		}
	}
}

func TestGrammarStopsAtForeignInput(t *testing.T) {
	res := Grammar(parsec.NewCursor("1,2\n---"))
	if !res.OK() {
		t.Fatalf("expected grammar to stop before foreign input, failed: %v", res.Err)
	}
	if res.Leftover() != "---" || res.Value.String() != "[[1, 2]]" {
		t.Errorf("unexpected result %v / %q", res.Value, res.Leftover())
	}
	res = Grammar(parsec.NewCursor("1,\n"))
	if res.OK() || res.Remaining.Offset() != 0 {
		t.Errorf("expected failed grammar to return the original cursor")
	}
}

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader("10,20\n30\n"))
	if err != nil {
		t.Fatalf("expected reader input to parse, failed: %v", err)
	}
	if len(records) != 2 || records[0][1] != 20 || records[1][0] != 30 {
		t.Errorf("unexpected records %v", records)
	}
}

func TestOverflowInFirstField(t *testing.T) {
	for _, input := range []string{"99999999999999999999\n", "1,2\n99999999999999999999,3\n"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("expected overflow in %q to fail", input)
			continue
		}
		if !errors.Is(err, strconv.ErrRange) {
			t.Errorf("expected overflow in %q to report a range error, is %v", input, err)
		}
	}
}
