package bankroll

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value.
//
// Bankrolls are never converted, so the currency is mostly informative. An
// empty currency is weak and adopts the currency of the other operand.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a number and an ISO-4217 currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// ParseMoney parses a user provided amount like "1234.50" or "1234,50".
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(normalizeAmount(s))
	if err != nil {
		return Money{}, err
	}
	return M(d, currency), nil
}

// currency returns the money's currency
func (m Money) currency() *money.Currency {
	// money.New never returns a nil currency, even for unknown codes.
	return money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, using the
// currency's own formatting (e.g. "R$1.234,50" or "€1,234.50").
func (m Money) String() string {
	if m.cur == "" || money.GetCurrency(m.cur) == nil {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Fixed formats the amount with exactly n decimals and no currency symbol.
func (m Money) Fixed(n int32) string { return m.value.StringFixed(n) }

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// In returns the same amount expressed in currency c.
func (m Money) In(c string) Money { return Money{value: m.value, cur: c} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	return A.cur
}

// Ratio returns m / base * 100 as a Percent.
//
// It returns 0 whenever base is not strictly positive, so that no NaN or
// Infinity ever reaches a view.
func (m Money) Ratio(base Money) Percent {
	if !base.value.IsPositive() {
		return 0
	}
	p, _ := m.value.Mul(decimal.NewFromInt(100)).DivRound(base.value, 8).Float64()
	return Percent(p)
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the amount as a bare number, rounded to the currency fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	fraction := int32(2)
	if money.GetCurrency(m.cur) != nil {
		fraction = int32(m.currency().Fraction)
	}
	return m.value.Round(fraction).MarshalJSON()
}

// UnmarshalJSON reads a bare number (or a quoted one), the currency is left empty.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money{value: d}
	return nil
}

// normalizeAmount accepts both "1234.5" and "1234,5" decimal separators.
func normalizeAmount(s string) string {
	var b []rune
	for _, r := range s {
		switch r {
		case ' ', '_':
			continue
		case ',':
			b = append(b, '.')
		default:
			b = append(b, r)
		}
	}
	return string(b)
}
