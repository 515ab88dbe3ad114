package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCharge parses a charge cell as an exact decimal.
// Unparseable or empty text yields zero rather than an error.
func ParseCharge(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ChargeToCents converts a decimal charge to integer cents, rounding half
// away from zero.
func ChargeToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FormatCharge renders a charge with exactly two decimals.
func FormatCharge(d decimal.Decimal) string {
	return d.StringFixed(2)
}
