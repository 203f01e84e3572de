package unicorns

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a value in major unit and a currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$140.00".
// The value is rounded to the currency's minor unit.
func (m Money) String() string {
	cur := m.currency()
	f := cur.Formatter()
	minor := m.value.Round(int32(f.Fraction)).Shift(int32(f.Fraction))
	if minor.BigInt().IsInt64() {
		return f.Format(minor.IntPart())
	}
	return formatLarge(f, m.value)
}

// formatLarge applies the formatter layout to a value whose minor units do
// not fit in an int64.
func formatLarge(f *money.Formatter, value decimal.Decimal) string {
	digits, fraction, _ := strings.Cut(value.Abs().StringFixed(int32(f.Fraction)), ".")
	if f.Thousand != "" {
		for i := len(digits) - 3; i > 0; i -= 3 {
			digits = digits[:i] + f.Thousand + digits[i:]
		}
	}
	if f.Fraction > 0 {
		digits += f.Decimal + fraction
	}
	s := strings.Replace(f.Template, "1", digits, 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if value.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) Cmp(n Money) int  { return m.value.Cmp(n.value) }
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// ParseValuation reads a valuation in billions like "$140.00" or "$1,200.5".
// The dollar sign, thousands separators and surrounding spaces are ignored.
func ParseValuation(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid valuation %q: %w", s, err)
	}
	return d, nil
}

// Millions converts an amount in millions as returned by TotalFunding into a
// Money in the given currency. NaN and infinite amounts are reported as false.
func Millions(amount float64, currency string) (Money, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, false
	}
	return M(amount, currency), true
}
