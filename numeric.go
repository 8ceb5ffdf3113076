package decimal

import (
	"math"
	"strconv"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

const (
	numericScale = 9
	numericWidth = 2 // 128 bits
)

// numericMaxMag is 10^38 - 1, the symmetric range bound for both the
// largest and (negated) smallest representable Numeric.
var numericMaxMag = func() wideint.Uint {
	m := wideint.Pow10(numericWidth, 38)
	m, _ = m.Sub(wideint.UintFromUint64(numericWidth, 1))
	return m
}()

// Numeric is a signed 128-bit fixed-point decimal with 9 fractional digits
// (precision 38, scale 9). Its zero value is the decimal zero.
type Numeric struct {
	neg  bool
	coef [numericWidth]uint64 // raw integer = value * 10^9, little-endian limbs
}

func (x Numeric) mag() wideint.Uint { return wideint.UintFromLimbs(x.coef[:]) }

func numericFromMag(neg bool, m wideint.Uint) Numeric {
	var out Numeric
	copy(out.coef[:], m.Limbs())
	out.neg = neg && !m.IsZero()
	return out
}

func numericCheckRange(op string, neg bool, m wideint.Uint) (Numeric, error) {
	if m.Cmp(numericMaxMag) > 0 {
		return Numeric{}, newError(OutOfRange, op, "magnitude exceeds NUMERIC range")
	}
	return numericFromMag(neg, m), nil
}

// ZeroNumeric returns the Numeric zero. Equivalent to the zero value.
func ZeroNumeric() Numeric { return Numeric{} }

// OneNumeric returns the Numeric value 1.
func OneNumeric() Numeric {
	return numericFromMag(false, wideint.Pow10(numericWidth, numericScale))
}

// NewNumeric returns the Numeric value of the given whole number.
func NewNumeric(i int64) Numeric {
	neg := i < 0
	mag := wideint.UintFromUint64(numericWidth, absInt64(i))
	scaled, _ := mag.Mul(wideint.Pow10(numericWidth, numericScale))
	return numericFromMag(neg, scaled)
}

func absInt64(i int64) uint64 {
	if i >= 0 {
		return uint64(i)
	}
	return uint64(-(i + 1)) + 1
}

// ParseNumeric parses s into a Numeric using the canonical decimal grammar
// (§4.2): [ws][sign]digits['.'digits][('e'|'E')[sign]digits][ws].
func ParseNumeric(s string) (Numeric, error) {
	neg, mag, err := parseDecimal("Parse", numericWidth, numericScale, s)
	if err != nil {
		return Numeric{}, err
	}
	return numericCheckRange("Parse", neg, mag)
}

// MustParseNumeric is like ParseNumeric but panics on error. Intended for
// tests and package-level variable initialization with literal values.
func MustParseNumeric(s string) Numeric {
	v, err := ParseNumeric(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical decimal representation of x (§4.3).
func (x Numeric) String() string {
	return formatDecimal(x.neg, x.mag(), numericScale)
}

// MarshalText implements encoding.TextMarshaler.
func (x Numeric) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Numeric) UnmarshalText(text []byte) error {
	v, err := ParseNumeric(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Numeric) IsZero() bool { return x.mag().IsZero() }

// Sign returns -1, 0, or 1.
func (x Numeric) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x Numeric) IsNeg() bool { return x.neg && !x.IsZero() }

// Neg returns -x.
func (x Numeric) Neg() Numeric { return numericFromMag(!x.neg, x.mag()) }

// Abs returns |x|.
func (x Numeric) Abs() Numeric { return numericFromMag(false, x.mag()) }

// Cmp returns -1, 0, or 1 according to whether x<y, x==y, or x>y.
func (x Numeric) Cmp(y Numeric) int {
	xi := wideint.IntFromUint(x.neg, x.mag())
	yi := wideint.IntFromUint(y.neg, y.mag())
	return xi.Cmp(yi)
}

func (x Numeric) Equal(y Numeric) bool { return x.Cmp(y) == 0 }

// Add returns x+y, or an OutOfRange error if the result does not fit.
func (x Numeric) Add(y Numeric) (Numeric, error) {
	xi := wideint.IntFromUint(x.neg, x.mag())
	yi := wideint.IntFromUint(y.neg, y.mag())
	sum, overflow := xi.Add(yi)
	if overflow {
		return Numeric{}, newError(OutOfRange, "Add", "")
	}
	return numericCheckRange("Add", sum.IsNeg(), sum.Abs())
}

// Subtract returns x-y.
func (x Numeric) Subtract(y Numeric) (Numeric, error) { return x.Add(y.Neg()) }

// Multiply returns x*y, rounding the result to scale 9 half-away-from-zero,
// or an OutOfRange error if the result does not fit.
func (x Numeric) Multiply(y Numeric) (Numeric, error) {
	product := x.mag().ExtendAndMultiply(y.mag()) // width 4, exact
	half := wideint.UintFromUint64(4, 500000000)
	rounded, addOverflow := product.Add(half)
	if addOverflow {
		return Numeric{}, newError(OutOfRange, "Multiply", "")
	}
	scaled, _ := rounded.DivModUint32(1_000_000_000)
	result, narrowOverflow := scaled.Narrow(numericWidth)
	if narrowOverflow {
		return Numeric{}, newError(OutOfRange, "Multiply", "")
	}
	neg := x.neg != y.neg
	return numericCheckRange("Multiply", neg, result)
}

// Divide returns x/y rounded half-away-from-zero, or DivisionByZero if y is
// zero, or OutOfRange if the result does not fit.
func (x Numeric) Divide(y Numeric) (Numeric, error) {
	if y.IsZero() {
		return Numeric{}, newError(DivisionByZero, "Divide", "")
	}
	const divWidth = 3
	aScaled, mulOverflow := x.mag().Widen(divWidth).Mul(wideint.Pow10(divWidth, numericScale))
	if mulOverflow {
		return Numeric{}, newError(OutOfRange, "Divide", "")
	}
	bWide := y.mag().Widen(divWidth)
	half := bWide.Shr(1)
	numerator, addOverflow := aScaled.Add(half)
	if addOverflow {
		return Numeric{}, newError(OutOfRange, "Divide", "")
	}
	quotient, _ := numerator.DivMod(bWide)
	result, narrowOverflow := quotient.Narrow(numericWidth)
	if narrowOverflow {
		return Numeric{}, newError(OutOfRange, "Divide", "")
	}
	neg := x.neg != y.neg
	return numericCheckRange("Divide", neg, result)
}

// IntegerDivide returns trunc(x/y) as a whole-number Numeric, or
// DivisionByZero if y is zero, or OutOfRange if the result does not fit.
func (x Numeric) IntegerDivide(y Numeric) (Numeric, error) {
	if y.IsZero() {
		return Numeric{}, newError(DivisionByZero, "IntegerDivide", "")
	}
	quotient, _ := x.mag().DivMod(y.mag())
	const wideWidth = 3
	scaled, mulOverflow := quotient.Widen(wideWidth).Mul(wideint.Pow10(wideWidth, numericScale))
	if mulOverflow {
		return Numeric{}, newError(OutOfRange, "IntegerDivide", "")
	}
	result, narrowOverflow := scaled.Narrow(numericWidth)
	if narrowOverflow {
		return Numeric{}, newError(OutOfRange, "IntegerDivide", "")
	}
	neg := x.neg != y.neg
	return numericCheckRange("IntegerDivide", neg, result)
}

// Mod returns x - IntegerDivide(x,y)*y, or DivisionByZero if y is zero.
func (x Numeric) Mod(y Numeric) (Numeric, error) {
	q, err := x.IntegerDivide(y)
	if err != nil {
		return Numeric{}, err
	}
	prod, err := q.Multiply(y)
	if err != nil {
		return Numeric{}, err
	}
	return x.Subtract(prod)
}

// Round rounds x to the given number of fractional digits. digits may be
// negative to round to a power of ten above the decimal point. Matching the
// source this was distilled from, digits >= 9 leaves x unchanged, and
// digits < -29 always yields zero even when the true rounded value would be
// representable — a deliberately retained quirk of the original algorithm,
// not a bug in this port.
func (x Numeric) Round(digits int32, awayFromZero bool) (Numeric, error) {
	if digits >= numericScale {
		return x, nil
	}
	if digits < -29 {
		return Numeric{}, nil
	}
	truncExp := numericScale - int(digits)
	factor := wideint.Pow10(numericWidth, truncExp)
	work := x.mag()
	if awayFromZero {
		half := factor.Shr(1)
		added, addOverflow := work.Add(half)
		if addOverflow {
			return Numeric{}, newError(OutOfRange, "Round", "")
		}
		work = added
	}
	_, remainder := work.DivMod(factor)
	result, borrow := work.Sub(remainder)
	if borrow {
		return Numeric{}, newError(Internal, "Round", "unexpected borrow")
	}
	return numericCheckRange("Round", x.neg, result)
}

// Trunc truncates x to the given number of fractional digits, toward zero.
func (x Numeric) Trunc(digits int32) (Numeric, error) { return x.Round(digits, false) }

// Floor rounds x toward negative infinity to a whole number.
func (x Numeric) Floor() (Numeric, error) {
	whole, err := x.Trunc(0)
	if err != nil {
		return Numeric{}, err
	}
	if x.neg && !x.Equal(whole) {
		return whole.Subtract(OneNumeric())
	}
	return whole, nil
}

// Ceil rounds x toward positive infinity to a whole number.
func (x Numeric) Ceil() (Numeric, error) {
	whole, err := x.Trunc(0)
	if err != nil {
		return Numeric{}, err
	}
	if !x.neg && !x.Equal(whole) {
		return whole.Add(OneNumeric())
	}
	return whole, nil
}

// Power returns x raised to the (possibly fractional, possibly negative)
// power exp.
//
// The source this was distilled from carries exp through a doubly-scaled
// 192-bit accumulator to avoid compounding rounding error across repeated
// squarings. This port instead repeats the already-correctly-rounded
// Multiply (after inverting x with Divide when the integer part of exp is
// negative), so every intermediate step is rounded to scale 9 and large
// integer exponents carry slightly more rounding error than a single final
// rounding would.
func (x Numeric) Power(exp Numeric) (Numeric, error) {
	if exp.IsZero() {
		return OneNumeric(), nil
	}
	if x.IsZero() {
		if exp.Sign() < 0 {
			return Numeric{}, newError(DivisionByZero, "Power", "zero to a negative power")
		}
		return Numeric{}, nil
	}

	intPart, err := exp.Trunc(0)
	if err != nil {
		return Numeric{}, err
	}
	fracPart, err := exp.Subtract(intPart)
	if err != nil {
		return Numeric{}, err
	}
	if x.neg && !fracPart.IsZero() {
		return Numeric{}, newError(FailedPrecondition, "Power", "negative base raised to a fractional power")
	}

	kFloat, err := intPart.Float64()
	if err != nil {
		return Numeric{}, err
	}
	k := int64(kFloat)

	base := x
	if k < 0 {
		base, err = OneNumeric().Divide(x)
		if err != nil {
			return Numeric{}, err
		}
		k = -k
	}

	result, err := numericIntPow(base, uint64(k))
	if err != nil {
		return Numeric{}, err
	}

	if !fracPart.IsZero() {
		baseF, err := x.Abs().Float64()
		if err != nil {
			return Numeric{}, err
		}
		fracF, err := fracPart.Float64()
		if err != nil {
			return Numeric{}, err
		}
		factorDec, err := NumericFromFloat64(math.Pow(baseF, fracF))
		if err != nil {
			return Numeric{}, err
		}
		result, err = result.Multiply(factorDec)
		if err != nil {
			return Numeric{}, err
		}
	}
	return result, nil
}

func numericIntPow(base Numeric, k uint64) (Numeric, error) {
	result := OneNumeric()
	cur := base
	for k > 0 {
		if k&1 == 1 {
			var err error
			result, err = result.Multiply(cur)
			if err != nil {
				return Numeric{}, err
			}
		}
		k >>= 1
		if k > 0 {
			var err error
			cur, err = cur.Multiply(cur)
			if err != nil {
				return Numeric{}, err
			}
		}
	}
	return result, nil
}

// NumericFromFloat64 converts a float64 to the nearest representable
// Numeric. It rejects NaN and ±Inf with FailedPrecondition.
//
// Unlike the high-precision ToDouble path below, the source's manual
// mantissa/exponent decomposition buys no extra correctness here since a
// float64 only ever carries 53 significant bits to begin with; reusing the
// shortest round-tripping decimal string via strconv and the package's own
// parser is simpler and exactly as precise.
func NumericFromFloat64(f float64) (Numeric, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Numeric{}, newError(FailedPrecondition, "NumericFromFloat64", "non-finite value")
	}
	return ParseNumeric(strconv.FormatFloat(f, 'f', -1, 64))
}

// Float64 converts x to the nearest float64, preserving at least 96
// significant bits of the scaled integer before dividing by the scale
// factor so that the final double rounding is correct (§4.4.1): the
// quotient's low bit is forced to 1 whenever the division had a nonzero
// remainder, which prevents round-to-even from silently picking the wrong
// neighbor at a tie.
func (x Numeric) Float64() (float64, error) {
	if x.IsZero() {
		return 0, nil
	}
	mag := x.mag()
	msb := mag.FindMSBSetNonZero()
	needed := 96 - (msb + 1)
	var shift uint
	switch {
	case needed <= 0:
		shift = 0
	case needed <= 32:
		shift = 32
	case needed <= 64:
		shift = 64
	default:
		shift = 96
	}
	const wide = 4
	shifted := mag.Widen(wide).Shl(shift)
	divisor := wideint.Pow10(wide, numericScale)
	quotient, remainder := shifted.DivMod(divisor)
	if !remainder.IsZero() {
		quotient = quotient.WithLowBitSet()
	}
	f := math.Ldexp(quotient.ToFloat64(), -int(shift))
	if x.neg {
		f = -f
	}
	return f, nil
}

// SerializeBytes returns the little-endian two's-complement byte encoding of
// the raw scaled integer, minimal length, per §6.
func (x Numeric) SerializeBytes() []byte {
	return wideint.IntFromUint(x.neg, x.mag()).SerializeBytes()
}

// DeserializeNumeric is the inverse of Numeric.SerializeBytes.
func DeserializeNumeric(b []byte) (Numeric, error) {
	v, ok := wideint.DeserializeIntBytes(numericWidth, b)
	if !ok {
		return Numeric{}, newError(InvalidArgument, "DeserializeNumeric", "malformed byte encoding")
	}
	return numericCheckRange("DeserializeNumeric", v.IsNeg(), v.Abs())
}
