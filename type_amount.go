package saldo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	default:
		panic("unsupported type")
	}
}

// Amount is a signed monetary value, kept exact.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a constant.
func A[T float64 | int](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// String returns the amount with exactly two decimals, e.g. "-50.00".
func (a Amount) String() string { return a.value.StringFixed(2) }

// IsAmount reports whether s is accepted as an amount argument.
//
// After trimming spaces, s is accepted if it starts with a minus sign, or if it
// is made only of ASCII digits. Anything else (decimal point, leading plus,
// currency symbols) is rejected.
func IsAmount(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return true
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// numberRegex is the only notation converted to a decimal: digits with an
// optional fraction. Exponents are refused, "-1e2000000000" would expand to
// billions of digits.
var numberRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseAmount validates s with IsAmount and converts it.
//
// A minus prefixed string that is not a plain number ("-", "-abc", "-1e5")
// passes IsAmount but fails here.
func ParseAmount(s string) (Amount, error) {
	if !IsAmount(s) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	s = strings.TrimSpace(s)
	if !numberRegex.MatchString(s) {
		return Amount{}, fmt.Errorf("%w: %q is not a plain number", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	return Amount{value: d}, nil
}
