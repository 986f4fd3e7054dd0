package money

import (
	"errors"
	"math"
	"testing"

	"github.com/fulldump/biff"
)

func TestParse(t *testing.T) {

	cases := []struct {
		input    string
		expected Money
	}{
		{"5.3", New(5, 3)},
		{"5.30", New(5, 30)},
		{"10", New(10, 0)},
		{"0.0", Zero},
		{"19.97", New(19, 97)},
		{"-1.50", FromCents(-150)},
		{" 7.1 ", New(7, 1)},
	}

	for _, c := range cases {
		m, err := Parse(c.input)
		biff.AssertNil(err)
		biff.AssertEqual(m, c.expected)
	}
}

func TestParse_Malformed(t *testing.T) {

	inputs := []string{"", "-", "abc", "1.2.3", "1.x", "x.1", "1.-2", "+1"}
	for _, input := range inputs {
		_, err := Parse(input)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q): expected ErrMalformed, got %v", input, err)
		}
	}
}

func TestParse_Overflow(t *testing.T) {
	_, err := Parse("92233720368547758.99")
	biff.AssertTrue(errors.Is(err, ErrOverflow))
}

func TestString(t *testing.T) {
	biff.AssertEqual(New(5, 3).String(), "5.3")
	biff.AssertEqual(Zero.String(), "0.0")
	biff.AssertEqual(New(13, 30).String(), "13.30")
	biff.AssertEqual(FromCents(-3).String(), "-0.3")
	biff.AssertEqual(FromCents(math.MinInt64).String(), "-92233720368547758.8")
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"5.3", "0.0", "13.30", "100.99", "-0.3", "-12.5"} {
		biff.AssertEqual(Must(s).String(), s)
	}
}

func TestNormalization(t *testing.T) {
	m := New(5, 150)
	biff.AssertEqual(m, New(6, 50))
	biff.AssertEqual(m.Dollars(), int64(6))
	biff.AssertEqual(m.Cents(), int64(50))
	biff.AssertEqual(Must("5.150"), New(6, 50))
}

func TestCompare(t *testing.T) {
	biff.AssertEqual(New(1, 99).Compare(New(2, 0)), -1)
	biff.AssertEqual(New(2, 0).Compare(New(1, 99)), 1)
	biff.AssertEqual(New(2, 5).Compare(Must("2.5")), 0)
	biff.AssertTrue(New(1, 0).Less(New(1, 1)))
	biff.AssertFalse(New(1, 1).Less(New(1, 1)))
}

func TestAdd(t *testing.T) {
	sum, err := New(1, 50).Add(New(2, 75))
	biff.AssertNil(err)
	biff.AssertEqual(sum, New(4, 25))

	_, err = FromCents(math.MaxInt64).Add(New(0, 1))
	biff.AssertTrue(errors.Is(err, ErrOverflow))
}

func TestText(t *testing.T) {
	b, err := New(5, 3).MarshalText()
	biff.AssertNil(err)
	biff.AssertEqual(string(b), "5.3")

	m := Money{}
	biff.AssertNil(m.UnmarshalText([]byte("13.30")))
	biff.AssertEqual(m, New(13, 30))

	biff.AssertNotNil(m.UnmarshalText([]byte("1..2")))
}

func TestArith(t *testing.T) {
	_, ok := AddInt64(math.MaxInt64, 1)
	biff.AssertFalse(ok)
	_, ok = AddInt64(math.MinInt64, -1)
	biff.AssertFalse(ok)
	v, ok := AddInt64(-5, 3)
	biff.AssertTrue(ok)
	biff.AssertEqual(v, int64(-2))

	_, ok = MulInt64(math.MaxInt64, 2)
	biff.AssertFalse(ok)
	_, ok = MulInt64(math.MinInt64, -1)
	biff.AssertFalse(ok)
	v, ok = MulInt64(-7, 6)
	biff.AssertTrue(ok)
	biff.AssertEqual(v, int64(-42))
}
