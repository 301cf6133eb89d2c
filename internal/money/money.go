// Package money converts between the engine's minor-unit int64 amounts and
// the major-unit decimal strings used in files and reports.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToMinor converts a major-unit amount to minor units. Amounts with more
// than 2 decimal places, or past int64 range, are rejected.
func ToMinor(d decimal.Decimal) (int64, error) {
	minor := d.Mul(hundred)
	if !minor.Equal(minor.Floor()) {
		return 0, fmt.Errorf("amount %s has more than 2 decimal places", d)
	}
	if !minor.Equal(decimal.NewFromInt(minor.IntPart())) {
		return 0, fmt.Errorf("amount %s out of range", d)
	}
	return minor.IntPart(), nil
}

// ToDecimal converts minor units to a major-unit decimal.
func ToDecimal(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(hundred)
}

// String renders minor units as a fixed 2-decimal major-unit string.
func String(minor int64) string {
	return ToDecimal(minor).StringFixed(2)
}
