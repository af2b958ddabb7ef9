package input

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Type converts trimmed raw input into a T. Name appears in conversion
// diagnostics; Equal decides membership in an allowed set.
type Type[T any] struct {
	Name  string
	Parse func(raw string) (T, error)
	Equal func(a, b T) bool
}

// Text accepts any non-empty input unchanged.
var Text = Type[string]{
	Name:  "text",
	Parse: func(raw string) (string, error) { return raw, nil },
	Equal: func(a, b string) bool { return a == b },
}

// Integer accepts base-10 integers.
var Integer = Type[int]{
	Name:  "integer",
	Parse: strconv.Atoi,
	Equal: func(a, b int) bool { return a == b },
}

// Decimal accepts exact decimal numbers such as "100", "99.99" or "-5".
var Decimal = Type[decimal.Decimal]{
	Name:  "number",
	Parse: parseDecimal,
	Equal: func(a, b decimal.Decimal) bool { return a.Equal(b) },
}

// maxDecimalExponent bounds the base-10 exponent Decimal accepts. Arithmetic on
// a value like 1e-400000000 rescales to that exponent and would not finish.
const maxDecimalExponent = 18

// ErrDecimalOutOfRange reports a number whose exponent is beyond ±maxDecimalExponent.
var ErrDecimalOutOfRange = errors.New("number is out of range")

func parseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if exp := d.Exponent(); exp < -maxDecimalExponent || exp > maxDecimalExponent {
		return decimal.Decimal{}, ErrDecimalOutOfRange
	}
	return d, nil
}
