// Package money implements exact dollars and cents values.
//
// A Money is normalized on construction and kept as a total count of cents,
// so New(5, 150) and New(6, 50) are the same value.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformed = errors.New("malformed money")
	ErrOverflow  = errors.New("money overflow")
)

type Money struct {
	total int64
}

// Zero is the "not found" sentinel returned by lookups.
var Zero = Money{}

func New(dollars, cents int64) Money {
	return Money{total: dollars*100 + cents}
}

func FromCents(total int64) Money {
	return Money{total: total}
}

func (m Money) TotalCents() int64 {
	return m.total
}

func (m Money) Dollars() int64 {
	return m.total / 100
}

func (m Money) Cents() int64 {
	return m.total % 100
}

func (m Money) IsZero() bool {
	return m.total == 0
}

func (m Money) Compare(other Money) int {
	switch {
	case m.total < other.total:
		return -1
	case m.total > other.total:
		return 1
	}
	return 0
}

func (m Money) Less(other Money) bool {
	return m.total < other.total
}

// Add returns m+other, failing with ErrOverflow instead of wrapping.
func (m Money) Add(other Money) (Money, error) {
	sum, ok := AddInt64(m.total, other.total)
	if !ok {
		return m, fmt.Errorf("add %s and %s: %w", m, other, ErrOverflow)
	}
	return Money{total: sum}, nil
}

// String renders the canonical form "<dollars>.<cents>" without padding.
func (m Money) String() string {
	if m.total < 0 {
		if m.total == -m.total { // math.MinInt64
			return "-" + strconv.FormatUint(uint64(m.total)/100, 10) + "." + strconv.FormatUint(uint64(m.total)%100, 10)
		}
		return "-" + Money{total: -m.total}.String()
	}
	return strconv.FormatInt(m.Dollars(), 10) + "." + strconv.FormatInt(m.Cents(), 10)
}

// Parse reads "D.C" or "D". The cents part is an integer count of cents:
// "5.3" is five dollars and three cents.
func Parse(s string) (Money, error) {

	text := strings.TrimSpace(s)
	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	if text == "" {
		return Zero, fmt.Errorf("%w: empty value %q", ErrMalformed, s)
	}

	parts := strings.Split(text, ".")
	if len(parts) > 2 {
		return Zero, fmt.Errorf("%w: too many decimal points in %q", ErrMalformed, s)
	}

	dollars, err := parseUnsigned(parts[0])
	if err != nil {
		return Zero, fmt.Errorf("%w: dollars in %q: %w", ErrMalformed, s, err)
	}

	var cents int64
	if len(parts) == 2 {
		cents, err = parseUnsigned(parts[1])
		if err != nil {
			return Zero, fmt.Errorf("%w: cents in %q: %w", ErrMalformed, s, err)
		}
	}

	total, ok := MulInt64(dollars, 100)
	if ok {
		total, ok = AddInt64(total, cents)
	}
	if !ok {
		return Zero, fmt.Errorf("parse %q: %w", s, ErrOverflow)
	}

	if negative {
		total = -total
	}

	return Money{total: total}, nil
}

func parseUnsigned(s string) (int64, error) {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("unexpected sign in %q", s)
	}
	return strconv.ParseInt(s, 10, 64)
}

// Must is like Parse but panics on error.
func Must(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
