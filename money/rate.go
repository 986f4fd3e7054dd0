package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	minCents = decimal.NewFromInt(math.MinInt64)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// Rate is a decimal percentage: Percent(33) is 33%, ParseRate("7.5") is 7.5%.
type Rate struct {
	percent decimal.Decimal
}

func Percent(p int64) Rate {
	return Rate{percent: decimal.NewFromInt(p)}
}

// ParseRate reads a decimal percentage such as "33", "7.5" or "-2.25".
// Unlike money, the fractional part is a decimal fraction.
func ParseRate(s string) (Rate, error) {
	p, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Rate{}, fmt.Errorf("%w: rate %q: %w", ErrMalformed, s, err)
	}
	return Rate{percent: p}, nil
}

// Apply returns the increase of totalCents at this rate. Fractional pennies
// are discarded (truncation toward zero). Fails only when the increase does
// not fit in an int64.
func (r Rate) Apply(totalCents int64) (int64, error) {
	hike := decimal.NewFromInt(totalCents).Mul(r.percent).Shift(-2).Truncate(0)
	if hike.LessThan(minCents) || hike.GreaterThan(maxCents) {
		return 0, fmt.Errorf("apply %s to %d cents: %w", r, totalCents, ErrOverflow)
	}
	return hike.IntPart(), nil
}

func (r Rate) Equal(other Rate) bool {
	return r.percent.Equal(other.percent)
}

func (r Rate) String() string {
	return r.percent.String() + "%"
}
