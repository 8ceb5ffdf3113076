package decimal

import (
	"strings"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

// formatDecimal implements the shared DecimalFormatter contract: given a
// sign, an unsigned scaled magnitude, and a scale, it produces the canonical
// textual form with at most scale fractional digits, trailing fractional
// zeros stripped, and the decimal point omitted entirely when nothing
// remains of the fractional part. Zero always formats as "0".
func formatDecimal(neg bool, mag wideint.Uint, scale int) string {
	if mag.IsZero() {
		return "0"
	}

	digits := mag.String()

	var intDigits, fracDigits string
	if len(digits) > scale {
		intDigits = digits[:len(digits)-scale]
		fracDigits = digits[len(digits)-scale:]
	} else {
		intDigits = "0"
		fracDigits = strings.Repeat("0", scale-len(digits)) + digits
	}
	fracDigits = strings.TrimRight(fracDigits, "0")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intDigits)
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	return b.String()
}
