// README: Common money value object used across modules (amounts in minor units).
package types

import (
	"fmt"
	"math"
	"strconv"
)

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Cents converts a decimal amount to minor units, rounding half away from zero.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// Float returns the amount in major units.
func (m Money) Float() float64 {
	return float64(m.Amount) / 100
}

// Fixed renders the amount with exactly two decimals, e.g. "65.75".
func (m Money) Fixed() string {
	return fmt.Sprintf("%.2f", m.Float())
}

// Short renders the amount without trailing zeros, e.g. "2" or "2.63".
func (m Money) Short() string {
	return strconv.FormatFloat(m.Float(), 'f', -1, 64)
}

func (m Money) String() string {
	return m.Fixed() + " " + m.Currency
}
