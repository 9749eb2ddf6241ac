package partlog

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Price represents a listing price: a decimal amount in a single currency.
type Price struct {
	value decimal.Decimal
	cur   string
}

// currency symbols accepted as a price prefix.
var currencySymbols = []struct {
	symbol string
	code   string
}{
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
}

// DefaultCurrency is assumed when a price carries no symbol prefix.
const DefaultCurrency = "USD"

// ParsePrice parses a textual currency-prefixed price like "$449.99".
//
// A recognized currency symbol prefix selects the currency, a bare number
// defaults to [DefaultCurrency]. Thousands separators are tolerated.
func ParsePrice(s string) (Price, error) {
	txt := strings.TrimSpace(s)
	if txt == "" {
		return Price{}, fmt.Errorf("empty price")
	}
	cur := DefaultCurrency
	for _, c := range currencySymbols {
		if rest, ok := strings.CutPrefix(txt, c.symbol); ok {
			cur = c.code
			txt = strings.TrimSpace(rest)
			break
		}
	}
	txt = strings.ReplaceAll(txt, ",", "")
	value, err := decimal.NewFromString(txt)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: value, cur: cur}, nil
}

// P returns a Price from a raw amount and currency code. Mostly useful in tests.
func P[T float32 | float64 | int | int64 | decimal.Decimal](value T, currency string) Price {
	return Price{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		panic("unreachable")
	}
}

// currency returns the price's currency metadata, never nil.
func (p Price) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, p.cur).Currency()
}

// String returns the symbol-prefixed fixed two-decimal rendering, e.g. "$449.99".
func (p Price) String() string {
	cur := p.currency()
	dec := p.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (p Price) Currency() string         { return p.cur }
func (p Price) Amount() decimal.Decimal  { return p.value }
func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) && p.cur == q.cur }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) LessThan(q Price) bool    { return p.value.LessThan(q.value) }
func (p Price) GreaterThan(q Price) bool { return p.value.GreaterThan(q.value) }

// LessThanOrEqual reports whether p is at most q.
func (p Price) LessThanOrEqual(q Price) bool { return p.value.LessThanOrEqual(q.value) }

// SameCurrency reports whether p and q can take part in the same arithmetic.
// The zero Price's empty currency is compatible with anything.
func (p Price) SameCurrency(q Price) bool {
	return p.cur == "" || q.cur == "" || p.cur == q.cur
}

// Add returns the sum of both prices. Callers must check [Price.SameCurrency]
// first; adding two distinct currencies panics.
func (p Price) Add(q Price) Price { return Price{value: p.value.Add(q.value), cur: cur(p, q)} }

// makes the "" currency totally weak.
func cur(a, b Price) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
