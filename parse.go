package decimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

// parseDecimal implements the shared DecimalParser contract: given a textual
// number, a target scale, and the limb width of the caller's value type, it
// returns the sign and scaled unsigned magnitude. Both ParseNumeric and
// ParseBigNumeric call this with their own width/scale.
//
// Grammar: [ws] [sign] [digits] ['.' digits] [('e'|'E') [sign] digits] [ws]
func parseDecimal(op string, width, targetScale int, s string) (neg bool, mag wideint.Uint, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false, wideint.Uint{}, newError(InvalidArgument, op, "empty input")
	}

	neg = false
	switch trimmed[0] {
	case '-':
		neg = true
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}

	mantissa, expStr, hasExp := splitExponent(trimmed)

	intPart, fracPart, ok := splitFraction(mantissa)
	if !ok {
		return false, wideint.Uint{}, newError(InvalidArgument, op, "malformed mantissa: "+s)
	}
	if intPart == "" && fracPart == "" {
		return false, wideint.Uint{}, newError(InvalidArgument, op, "no digits: "+s)
	}

	var exp int64
	if hasExp {
		exp, err = parseExponent(op, expStr)
		if err != nil {
			return false, wideint.Uint{}, err
		}
	}

	effectiveExp, overflowed := addInt64(exp, int64(targetScale))
	if overflowed {
		return false, wideint.Uint{}, newError(OutOfRange, op, "exponent overflow: "+s)
	}

	netShift := subInt64Saturating(effectiveExp, int64(len(fracPart)))
	combined := intPart + fracPart

	maxSafeExp := int64(width) * 19

	switch {
	case netShift >= 0:
		if netShift > maxSafeExp {
			return false, wideint.Uint{}, newError(OutOfRange, op, "magnitude too large: "+s)
		}
		magVal, ok := wideint.ParseUint(width, combined)
		if !ok {
			return false, wideint.Uint{}, newError(OutOfRange, op, "magnitude too large: "+s)
		}
		pow := wideint.Pow10(width, int(netShift))
		result, mulOverflow := magVal.Mul(pow)
		if mulOverflow {
			return false, wideint.Uint{}, newError(OutOfRange, op, "magnitude too large: "+s)
		}
		return neg, result, nil

	default:
		n := int64(len(combined))
		// Compare against -n (safe: n is tiny and positive) rather than negating
		// netShift first: netShift can be the saturated math.MinInt64 (a valid
		// input per §4.2 step 5, e.g. an extreme negative exponent), and -netShift
		// would itself overflow back to a negative number, corrupting every bound
		// check below it.
		if netShift <= -n {
			if netShift == -n && n > 0 && combined[0] >= '5' {
				return neg, wideint.UintFromUint64(width, 1), nil
			}
			return false, wideint.NewUint(width), nil
		}
		dropCount := -netShift // safe here: -n < netShift < 0, so 0 < dropCount < n
		keepLen := int(n - dropCount)
		keepStr := combined[:keepLen]
		roundDigit := combined[keepLen]
		magVal, ok := wideint.ParseUint(width, keepStr)
		if !ok {
			return false, wideint.Uint{}, newError(OutOfRange, op, "magnitude too large: "+s)
		}
		if roundDigit >= '5' {
			var roundOverflow bool
			magVal, roundOverflow = magVal.Add(wideint.UintFromUint64(width, 1))
			if roundOverflow {
				return false, wideint.Uint{}, newError(OutOfRange, op, "magnitude too large: "+s)
			}
		}
		return neg, magVal, nil
	}
}

// splitExponent finds the rightmost 'e'/'E' marker and splits the string
// around it.
func splitExponent(s string) (mantissa, exp string, hasExp bool) {
	idx := strings.LastIndexAny(s, "eE")
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// splitFraction splits on the first '.' and validates both halves contain
// only ASCII digits.
func splitFraction(s string) (intPart, fracPart string, ok bool) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		intPart = s
	} else {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return "", "", false
	}
	return intPart, fracPart, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseExponent(op, s string) (int64, error) {
	if s == "" {
		return 0, newError(InvalidArgument, op, "empty exponent")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if !isDigits(s) || s == "" {
		return 0, newError(InvalidArgument, op, "malformed exponent")
	}
	mag, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if neg {
			return math.MinInt64, nil
		}
		return 0, newError(OutOfRange, op, "exponent overflow")
	}
	if neg {
		if mag > uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		return -int64(mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, newError(OutOfRange, op, "exponent overflow")
	}
	return int64(mag), nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, true
	}
	return sum, false
}

// subInt64Saturating computes a-b, saturating to MinInt64/MaxInt64 rather
// than wrapping.
func subInt64Saturating(a, b int64) int64 {
	if b > 0 && a < math.MinInt64+b {
		return math.MinInt64
	}
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	return a - b
}
