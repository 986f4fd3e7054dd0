package driver

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/mds/money"
	"github.com/fulldump/mds/store"
)

// recorder keeps the results in memory.
type recorder struct {
	results []*Result
	summary *Summary
}

func (r *recorder) Write(result *Result) error {
	r.results = append(r.results, result)
	return nil
}

func (r *recorder) Summary(s *Summary) error {
	r.summary = s
	return nil
}

func (r *recorder) values() []any {
	values := []any{}
	for _, result := range r.results {
		values = append(values, result.Value)
	}
	return values
}

const input = `
# products
Insert 1 5.0 9 0
Insert 2 15.0 9 4 0
Insert 3 25.0 9 0
Insert 2 16.0 0
Find 2
FindMinPrice 9
FindMaxPrice 9
FindPriceRange 9 10.0 20.0
PriceHike 1 1 33
Find 1
RemoveNames 2 4 4 7 0
FindProductIdsInRange 2 3
Delete 3
Delete 3
End
Find 1
`

func TestRun(t *testing.T) {

	r := &recorder{}
	d := New(store.New(), r)

	err := d.Run(strings.NewReader(input))
	biff.AssertNil(err)

	biff.AssertEqual(r.values(), []any{
		int64(1),
		int64(1),
		int64(1),
		int64(0),
		money.New(16, 0),
		money.New(5, 0),
		money.New(25, 0),
		int64(1),
		money.New(1, 65),
		money.New(6, 65),
		int64(4),
		[]int64{2, 3},
		int64(9),
		int64(0),
	})

	biff.AssertEqual(r.results[0].Line, 3)
	biff.AssertEqual(r.results[0].Command, "Insert")
	biff.AssertEqual(r.summary.Commands, 14)

	// 3 inserts + 1600 + 500 + 2500 + 1 + 165 + 665 + 4 + 2 + 9
	biff.AssertEqual(r.summary.Checksum, int64(5449))
	biff.AssertEqual(d.Checksum(), int64(5449))
}

func TestRun_Errors(t *testing.T) {

	cases := map[string]string{
		"Insert 1 abc 0":    "line 1: Insert",
		"Find x":            "line 1: Find",
		"Launch 1":          "unknown command",
		"Insert 1 5.0 3 4":  "unexpected EOF",
		"PriceHike 1 2 3,5": "rate",
	}

	for in, expected := range cases {
		d := New(store.New(), &recorder{})
		err := d.Run(strings.NewReader(in))
		if err == nil || !strings.Contains(err.Error(), expected) {
			t.Errorf("input %q: expected error containing %q, got %v", in, expected, err)
		}
	}

	d := New(store.New(), &recorder{})
	err := d.Run(strings.NewReader("Insert 1 5.0 0\nInsert 2\n7.x 0"))
	biff.AssertTrue(errors.Is(err, money.ErrMalformed))
	biff.AssertTrue(strings.HasPrefix(err.Error(), "line 2: Insert: "))
	biff.AssertEqual(strings.Count(err.Error(), "line "), 1)

	d = New(store.New(), &recorder{})
	err = d.Run(strings.NewReader("Insert 1 5.0 0\nFind"))
	biff.AssertTrue(errors.Is(err, io.ErrUnexpectedEOF))
	biff.AssertTrue(strings.HasPrefix(err.Error(), "line 2: Find"))
}

func TestTextWriter(t *testing.T) {

	out := &bytes.Buffer{}
	d := New(store.New(), &TextWriter{W: out})

	err := d.Run(strings.NewReader("Insert 4 5.3 1 0\nInsert 7 1.0 0\nFind 4\nFindProductIdsInRange 0 10\n"))
	biff.AssertNil(err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	biff.AssertEqual(lines[:4], []string{"1", "1", "5.3", "4 7"})
	biff.AssertTrue(strings.HasPrefix(lines[4], "commands=4 checksum=507 elapsed="))
}

func TestJSONWriter(t *testing.T) {

	out := &bytes.Buffer{}
	d := New(store.New(), &JSONWriter{W: out})

	err := d.Run(strings.NewReader("Insert 4 5.3 1 0\nFind 4\nFindProductIdsInRange 0 10\n"))
	biff.AssertNil(err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	biff.AssertEqual(lines[:3], []string{
		`{"line":1,"command":"Insert","value":1}`,
		`{"line":2,"command":"Find","value":"5.3"}`,
		`{"line":3,"command":"FindProductIdsInRange","value":[4]}`,
	})
	biff.AssertTrue(strings.HasPrefix(lines[3], `{"summary":{"commands":3,"checksum":505,`))
}

func TestNewWriter(t *testing.T) {
	w, err := NewWriter("json", io.Discard)
	biff.AssertNil(err)
	_, ok := w.(*JSONWriter)
	biff.AssertTrue(ok)

	w, err = NewWriter("", io.Discard)
	biff.AssertNil(err)
	_, ok = w.(*TextWriter)
	biff.AssertTrue(ok)

	_, err = NewWriter("xml", io.Discard)
	biff.AssertNotNil(err)
}
