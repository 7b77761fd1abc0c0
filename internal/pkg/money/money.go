package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// BasisPoints expresses a rate; 100 bps = 1%.
type BasisPoints int64

const (
	minorPerMajor       = 100
	basisPointsPerWhole = 10000
	DefaultCurrency     = "GBP"
)

// Money is an amount in minor units (pence for GBP).
type Money struct {
	minor int64
}

func FromMinor(minor int64) Money {
	return Money{minor: minor}
}

func FromMajor(major int64) Money {
	return Money{minor: major * minorPerMajor}
}

// Parse reads a decimal string with at most two fraction digits, e.g. "87.5" or "150.00".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	minor := w*minorPerMajor + f
	if neg {
		minor = -minor
	}
	return Money{minor: minor}, nil
}

func (m Money) Minor() int64      { return m.minor }
func (m Money) IsZero() bool      { return m.minor == 0 }
func (m Money) IsNegative() bool  { return m.minor < 0 }
func (m Money) Add(o Money) Money { return Money{minor: m.minor + o.minor} }
func (m Money) Sub(o Money) Money { return Money{minor: m.minor - o.minor} }

// Percent returns m * rate rounded half-up to the minor unit.
func (m Money) Percent(rate BasisPoints) Money {
	return Money{minor: divRoundHalfUp(m.minor*int64(rate), basisPointsPerWhole)}
}

// DivRound splits m into n parts rounded half-up. n must be positive.
func (m Money) DivRound(n int) Money {
	if n <= 0 {
		panic("money: division by non-positive count")
	}
	return Money{minor: divRoundHalfUp(m.minor, int64(n))}
}

// divRoundHalfUp rounds halves away from zero.
func divRoundHalfUp(num, den int64) int64 {
	if num < 0 {
		return -((-num*2 + den) / (2 * den))
	}
	return (num*2 + den) / (2 * den)
}

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func (m Money) String() string {
	sign := ""
	minor := m.minor
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/minorPerMajor, minor%minorPerMajor)
}

// MarshalJSON writes a JSON number with exactly two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	parsed, err := Parse(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
