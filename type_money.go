package fortune

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a given currency, used to present projection values.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: D(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to the
// currency fraction.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Abbrev returns a compact representation for chart axis: values of ten
// thousand and more are expressed in 万 (10 000) units.
func (m Money) Abbrev() string {
	if m.value.Abs().GreaterThanOrEqual(tenThousand) {
		return m.value.Div(tenThousand).Round(1).String() + "万"
	}
	return m.value.Round(0).String()
}

var tenThousand = decimal.NewFromInt(10000)

func (m Money) Currency() string         { return m.cur }
func (m Money) Value() decimal.Decimal   { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) AsFloat() float64         { return m.value.InexactFloat64() }

// Fixed returns the plain value with a fixed number of decimals, no currency.
func (m Money) Fixed(places int32) string {
	return m.value.StringFixed(places)
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
