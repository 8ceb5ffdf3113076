package decimal

import (
	"math"
	"strconv"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

const (
	bigNumericScale = 38
	bigNumericWidth = 4 // 256 bits
)

// bigNumericMaxPos is 2^255 - 1, the largest representable positive
// BigNumeric; bigNumericMaxNeg is 2^255, the magnitude of the most negative
// one. Unlike Numeric, BigNumeric's range is the full asymmetric signed
// 256-bit range rather than a symmetric power-of-ten bound (§3).
var (
	bigNumericMaxPos = func() wideint.Uint {
		m := wideint.UintFromUint64(bigNumericWidth, 1).Shl(255)
		m, _ = m.Sub(wideint.UintFromUint64(bigNumericWidth, 1))
		return m
	}()
	bigNumericMaxNeg = wideint.UintFromUint64(bigNumericWidth, 1).Shl(255)
)

// BigNumeric is a signed 256-bit fixed-point decimal with 38 fractional
// digits. Its zero value is the decimal zero.
type BigNumeric struct {
	neg  bool
	coef [bigNumericWidth]uint64 // raw integer = value * 10^38, little-endian limbs
}

func (x BigNumeric) mag() wideint.Uint { return wideint.UintFromLimbs(x.coef[:]) }

func bigNumericFromMag(neg bool, m wideint.Uint) BigNumeric {
	var out BigNumeric
	copy(out.coef[:], m.Limbs())
	out.neg = neg && !m.IsZero()
	return out
}

func bigNumericCheckRange(op string, neg bool, m wideint.Uint) (BigNumeric, error) {
	limit := bigNumericMaxPos
	if neg {
		limit = bigNumericMaxNeg
	}
	if m.Cmp(limit) > 0 {
		return BigNumeric{}, newError(OutOfRange, op, "magnitude exceeds BIGNUMERIC range")
	}
	return bigNumericFromMag(neg, m), nil
}

// ZeroBigNumeric returns the BigNumeric zero. Equivalent to the zero value.
func ZeroBigNumeric() BigNumeric { return BigNumeric{} }

// OneBigNumeric returns the BigNumeric value 1.
func OneBigNumeric() BigNumeric {
	return bigNumericFromMag(false, wideint.Pow10(bigNumericWidth, bigNumericScale))
}

// NewBigNumeric returns the BigNumeric value of the given whole number.
func NewBigNumeric(i int64) BigNumeric {
	neg := i < 0
	mag := wideint.UintFromUint64(bigNumericWidth, absInt64(i))
	scaled, _ := mag.Mul(wideint.Pow10(bigNumericWidth, bigNumericScale))
	return bigNumericFromMag(neg, scaled)
}

// ParseBigNumeric parses s into a BigNumeric using the canonical decimal
// grammar (§4.2).
func ParseBigNumeric(s string) (BigNumeric, error) {
	neg, mag, err := parseDecimal("Parse", bigNumericWidth, bigNumericScale, s)
	if err != nil {
		return BigNumeric{}, err
	}
	return bigNumericCheckRange("Parse", neg, mag)
}

// MustParseBigNumeric is like ParseBigNumeric but panics on error.
func MustParseBigNumeric(s string) BigNumeric {
	v, err := ParseBigNumeric(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical decimal representation of x (§4.3).
func (x BigNumeric) String() string {
	return formatDecimal(x.neg, x.mag(), bigNumericScale)
}

// MarshalText implements encoding.TextMarshaler.
func (x BigNumeric) MarshalText() ([]byte, error) { return []byte(x.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigNumeric) UnmarshalText(text []byte) error {
	v, err := ParseBigNumeric(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x BigNumeric) IsZero() bool { return x.mag().IsZero() }

// Sign returns -1, 0, or 1.
func (x BigNumeric) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x BigNumeric) IsNeg() bool { return x.neg && !x.IsZero() }

// Neg returns -x.
func (x BigNumeric) Neg() BigNumeric { return bigNumericFromMag(!x.neg, x.mag()) }

// Abs returns |x|.
func (x BigNumeric) Abs() BigNumeric { return bigNumericFromMag(false, x.mag()) }

// Cmp returns -1, 0, or 1 according to whether x<y, x==y, or x>y.
func (x BigNumeric) Cmp(y BigNumeric) int {
	xi := wideint.IntFromUint(x.neg, x.mag())
	yi := wideint.IntFromUint(y.neg, y.mag())
	return xi.Cmp(yi)
}

func (x BigNumeric) Equal(y BigNumeric) bool { return x.Cmp(y) == 0 }

// Add returns x+y, or an OutOfRange error if the result does not fit.
func (x BigNumeric) Add(y BigNumeric) (BigNumeric, error) {
	xi := wideint.IntFromUint(x.neg, x.mag())
	yi := wideint.IntFromUint(y.neg, y.mag())
	sum, overflow := xi.Add(yi)
	if overflow {
		return BigNumeric{}, newError(OutOfRange, "Add", "")
	}
	return bigNumericCheckRange("Add", sum.IsNeg(), sum.Abs())
}

// Subtract returns x-y.
func (x BigNumeric) Subtract(y BigNumeric) (BigNumeric, error) { return x.Add(y.Neg()) }

// Multiply returns x*y, rounding the result to scale 38 half-away-from-zero.
func (x BigNumeric) Multiply(y BigNumeric) (BigNumeric, error) {
	const prodWidth = 2 * bigNumericWidth // 8 limbs, exact for the full product
	product := x.mag().ExtendAndMultiply(y.mag())
	halfScale := wideint.Pow10(prodWidth, bigNumericScale).Shr(1)
	rounded, addOverflow := product.Add(halfScale)
	if addOverflow {
		return BigNumeric{}, newError(OutOfRange, "Multiply", "")
	}
	scaled, _ := rounded.DivMod(wideint.Pow10(prodWidth, bigNumericScale))
	result, narrowOverflow := scaled.Narrow(bigNumericWidth)
	if narrowOverflow {
		return BigNumeric{}, newError(OutOfRange, "Multiply", "")
	}
	neg := x.neg != y.neg
	return bigNumericCheckRange("Multiply", neg, result)
}

// Divide returns x/y rounded half-away-from-zero, or DivisionByZero if y is
// zero.
func (x BigNumeric) Divide(y BigNumeric) (BigNumeric, error) {
	if y.IsZero() {
		return BigNumeric{}, newError(DivisionByZero, "Divide", "")
	}
	const divWidth = bigNumericWidth + 2 // 6 limbs: |a|*10^38 needs ~383 bits
	aScaled, mulOverflow := x.mag().Widen(divWidth).Mul(wideint.Pow10(divWidth, bigNumericScale))
	if mulOverflow {
		return BigNumeric{}, newError(OutOfRange, "Divide", "")
	}
	bWide := y.mag().Widen(divWidth)
	half := bWide.Shr(1)
	numerator, addOverflow := aScaled.Add(half)
	if addOverflow {
		return BigNumeric{}, newError(OutOfRange, "Divide", "")
	}
	quotient, _ := numerator.DivMod(bWide)
	result, narrowOverflow := quotient.Narrow(bigNumericWidth)
	if narrowOverflow {
		return BigNumeric{}, newError(OutOfRange, "Divide", "")
	}
	neg := x.neg != y.neg
	return bigNumericCheckRange("Divide", neg, result)
}

// IntegerDivide returns trunc(x/y) as a whole-number BigNumeric.
func (x BigNumeric) IntegerDivide(y BigNumeric) (BigNumeric, error) {
	if y.IsZero() {
		return BigNumeric{}, newError(DivisionByZero, "IntegerDivide", "")
	}
	quotient, _ := x.mag().DivMod(y.mag())
	const wideWidth = bigNumericWidth + 2
	scaled, mulOverflow := quotient.Widen(wideWidth).Mul(wideint.Pow10(wideWidth, bigNumericScale))
	if mulOverflow {
		return BigNumeric{}, newError(OutOfRange, "IntegerDivide", "")
	}
	result, narrowOverflow := scaled.Narrow(bigNumericWidth)
	if narrowOverflow {
		return BigNumeric{}, newError(OutOfRange, "IntegerDivide", "")
	}
	neg := x.neg != y.neg
	return bigNumericCheckRange("IntegerDivide", neg, result)
}

// Mod returns x - IntegerDivide(x,y)*y, or DivisionByZero if y is zero.
func (x BigNumeric) Mod(y BigNumeric) (BigNumeric, error) {
	q, err := x.IntegerDivide(y)
	if err != nil {
		return BigNumeric{}, err
	}
	prod, err := q.Multiply(y)
	if err != nil {
		return BigNumeric{}, err
	}
	return x.Subtract(prod)
}

// Round rounds x to the given number of fractional digits, with the same
// digits>=scale / digits<-29 quirks described on Numeric.Round.
func (x BigNumeric) Round(digits int32, awayFromZero bool) (BigNumeric, error) {
	if digits >= bigNumericScale {
		return x, nil
	}
	if digits < -29 {
		return BigNumeric{}, nil
	}
	truncExp := bigNumericScale - int(digits)
	factor := wideint.Pow10(bigNumericWidth, truncExp)
	work := x.mag()
	if awayFromZero {
		half := factor.Shr(1)
		added, addOverflow := work.Add(half)
		if addOverflow {
			return BigNumeric{}, newError(OutOfRange, "Round", "")
		}
		work = added
	}
	_, remainder := work.DivMod(factor)
	result, borrow := work.Sub(remainder)
	if borrow {
		return BigNumeric{}, newError(Internal, "Round", "unexpected borrow")
	}
	return bigNumericCheckRange("Round", x.neg, result)
}

// Trunc truncates x to the given number of fractional digits, toward zero.
func (x BigNumeric) Trunc(digits int32) (BigNumeric, error) { return x.Round(digits, false) }

// Floor rounds x toward negative infinity to a whole number.
func (x BigNumeric) Floor() (BigNumeric, error) {
	whole, err := x.Trunc(0)
	if err != nil {
		return BigNumeric{}, err
	}
	if x.neg && !x.Equal(whole) {
		return whole.Subtract(OneBigNumeric())
	}
	return whole, nil
}

// Ceil rounds x toward positive infinity to a whole number.
func (x BigNumeric) Ceil() (BigNumeric, error) {
	whole, err := x.Trunc(0)
	if err != nil {
		return BigNumeric{}, err
	}
	if !x.neg && !x.Equal(whole) {
		return whole.Add(OneBigNumeric())
	}
	return whole, nil
}

// Power returns x raised to the power exp; see Numeric.Power for the
// algorithm and its documented simplification relative to the source.
func (x BigNumeric) Power(exp BigNumeric) (BigNumeric, error) {
	if exp.IsZero() {
		return OneBigNumeric(), nil
	}
	if x.IsZero() {
		if exp.Sign() < 0 {
			return BigNumeric{}, newError(DivisionByZero, "Power", "zero to a negative power")
		}
		return BigNumeric{}, nil
	}

	intPart, err := exp.Trunc(0)
	if err != nil {
		return BigNumeric{}, err
	}
	fracPart, err := exp.Subtract(intPart)
	if err != nil {
		return BigNumeric{}, err
	}
	if x.neg && !fracPart.IsZero() {
		return BigNumeric{}, newError(FailedPrecondition, "Power", "negative base raised to a fractional power")
	}

	kFloat, err := intPart.Float64()
	if err != nil {
		return BigNumeric{}, err
	}
	k := int64(kFloat)

	base := x
	if k < 0 {
		base, err = OneBigNumeric().Divide(x)
		if err != nil {
			return BigNumeric{}, err
		}
		k = -k
	}

	result, err := bigNumericIntPow(base, uint64(k))
	if err != nil {
		return BigNumeric{}, err
	}

	if !fracPart.IsZero() {
		baseF, err := x.Abs().Float64()
		if err != nil {
			return BigNumeric{}, err
		}
		fracF, err := fracPart.Float64()
		if err != nil {
			return BigNumeric{}, err
		}
		factorDec, err := BigNumericFromFloat64(math.Pow(baseF, fracF))
		if err != nil {
			return BigNumeric{}, err
		}
		result, err = result.Multiply(factorDec)
		if err != nil {
			return BigNumeric{}, err
		}
	}
	return result, nil
}

func bigNumericIntPow(base BigNumeric, k uint64) (BigNumeric, error) {
	result := OneBigNumeric()
	cur := base
	for k > 0 {
		if k&1 == 1 {
			var err error
			result, err = result.Multiply(cur)
			if err != nil {
				return BigNumeric{}, err
			}
		}
		k >>= 1
		if k > 0 {
			var err error
			cur, err = cur.Multiply(cur)
			if err != nil {
				return BigNumeric{}, err
			}
		}
	}
	return result, nil
}

// BigNumericFromFloat64 converts a float64 to the nearest representable
// BigNumeric; see NumericFromFloat64 for why this goes through the shortest
// round-tripping decimal string rather than manual mantissa decomposition.
func BigNumericFromFloat64(f float64) (BigNumeric, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigNumeric{}, newError(FailedPrecondition, "BigNumericFromFloat64", "non-finite value")
	}
	return ParseBigNumeric(strconv.FormatFloat(f, 'f', -1, 64))
}

// Float64 converts x to the nearest float64, using the same
// precision-preserving sticky-bit technique as Numeric.Float64 (§4.4.1).
func (x BigNumeric) Float64() (float64, error) {
	if x.IsZero() {
		return 0, nil
	}
	mag := x.mag()
	msb := mag.FindMSBSetNonZero()
	// 10^38 takes 127 bits, so the numerator is brought up to at least
	// 96+127 significant bits to leave a quotient of at least 96 bits.
	var shift uint
	if needed := 96 + 127 - (msb + 1); needed > 0 {
		shift = uint(needed)
	}
	const wide = bigNumericWidth + 2
	shifted := mag.Widen(wide).Shl(shift)
	divisor := wideint.Pow10(wide, bigNumericScale)
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
func (x BigNumeric) SerializeBytes() []byte {
	return wideint.IntFromUint(x.neg, x.mag()).SerializeBytes()
}

// DeserializeBigNumeric is the inverse of BigNumeric.SerializeBytes.
func DeserializeBigNumeric(b []byte) (BigNumeric, error) {
	v, ok := wideint.DeserializeIntBytes(bigNumericWidth, b)
	if !ok {
		return BigNumeric{}, newError(InvalidArgument, "DeserializeBigNumeric", "malformed byte encoding")
	}
	return bigNumericCheckRange("DeserializeBigNumeric", v.IsNeg(), v.Abs())
}
