package checkout

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	maxAmountLength = 32
	maxExponent     = 20
)

var (
	hundred     = decimal.NewFromInt(100)
	maxMinorInt = decimal.NewFromInt(math.MaxInt64)
)

// toMinorUnits converts a decimal amount such as "19.995" into the provider's
// integer minor units, rounding half away from zero (1999.5 -> 2000).
// Length and exponent are bounded before any arithmetic: rescaling a decimal
// costs time proportional to its exponent.
func toMinorUnits(amount string) (decimal.Decimal, int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, 0, fmt.Errorf("amount is missing")
	}
	if len(amount) > maxAmountLength {
		return decimal.Zero, 0, fmt.Errorf("amount of %d characters is too long", len(amount))
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("amount '%s' is not a number", amount)
	}
	if d.Exponent() > maxExponent || d.Exponent() < -maxExponent {
		return decimal.Zero, 0, fmt.Errorf("amount '%s' is out of range", amount)
	}

	minor := d.Mul(hundred).Round(0)
	if minor.Abs().GreaterThan(maxMinorInt) {
		return decimal.Zero, 0, fmt.Errorf("amount '%s' is too large", amount)
	}

	return d, minor.IntPart(), nil
}
