package quote

import (
	"strings"

	"github.com/noah-isme/cart-total/internal/pricing"
)

// CalculationErrorMessage is shown instead of a negative total.
const CalculationErrorMessage = "Error in calculation!"

// Message formats total for display.
func Message(total pricing.Money) string {
	if total.IsNegative() {
		return CalculationErrorMessage
	}
	return "The total price is: $" + formatAmount(total)
}

// formatAmount rounds half to even at two places and drops trailing zeros,
// keeping at least one fractional digit (1093.5, 1000.0, 882.54).
func formatAmount(v pricing.Money) string {
	s := v.RoundBank(2).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
