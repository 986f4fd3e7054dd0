package money

import "math"

// AddInt64 returns a+b and false when the sum does not fit in an int64.
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return c, false
	}
	return c, true
}

// MulInt64 returns a*b and false when the product does not fit in an int64.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return c, false
	}
	if c/b != a {
		return c, false
	}
	return c, true
}
