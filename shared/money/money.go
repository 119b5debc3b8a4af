package money

import (
	"fmt"
	"math"

	"frontdesk/shared/constant"
)

// Cents converts an amount to whole cents, rounding half-up. Every monetary
// value displayed by the console goes through this single rounding point.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Format renders an amount as the currency symbol followed by exactly two
// fractional digits, e.g. 199.5 -> "$199.50".
func Format(amount float64) string {
	cents := Cents(amount)

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%s%d.%02d", sign, constant.CurrencySymbol, cents/100, cents%100)
}

// Sum adds up a series of amounts. Rounding is applied once at formatting
// time, not per element.
func Sum(amounts []float64) float64 {
	total := 0.0
	for _, amount := range amounts {
		total += amount
	}

	return total
}
