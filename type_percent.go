package fortune

import (
	"github.com/shopspring/decimal"
)

// Percent is an exact percentage: P(10) is ten percent.
type Percent struct {
	value decimal.Decimal
}

// P returns a Percent of 'value' percentage points.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: D(value)}
}

// ParsePercent parses a percentage like "7.5" or "7.5%".
func ParsePercent(s string) (Percent, error) {
	if n := len(s); n > 0 && s[n-1] == '%' {
		s = s[:n-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, err
	}
	return Percent{value: d}, nil
}

// Of returns exactly p percent of d.
func (p Percent) Of(d decimal.Decimal) decimal.Decimal {
	return d.Mul(p.Fraction())
}

// Fraction returns p as a fraction: P(10).Fraction() is 0.1.
func (p Percent) Fraction() decimal.Decimal {
	return p.value.Shift(-2)
}

// Value returns the percentage points: P(10).Value() is 10.
func (p Percent) Value() decimal.Decimal { return p.value }

// Equal reports whether p and q are the same percentage.
func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }

// IsZero reports whether p is zero percent.
func (p Percent) IsZero() bool { return p.value.IsZero() }

// String returns p with two decimals and a percent sign, like "7.50%".
func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

// MarshalJSON writes the percentage points as a JSON number.
func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON reads percentage points from a JSON number or string.
func (p *Percent) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}
