package wideint

// Uint is an unsigned integer of a fixed number of 64-bit limbs, fixed at
// construction time. The zero value is not usable; construct with NewUint or
// UintFromUint64.
type Uint struct {
	limbs []uint64
}

// NewUint returns the zero value of the given width (number of 64-bit limbs).
func NewUint(width int) Uint {
	return Uint{limbs: make([]uint64, width)}
}

// UintFromUint64 returns a width-limb Uint holding v.
func UintFromUint64(width int, v uint64) Uint {
	u := NewUint(width)
	if width > 0 {
		u.limbs[0] = v
	}
	return u
}

// Width reports the number of 64-bit limbs backing x.
func (x Uint) Width() int { return len(x.limbs) }

// Limbs returns a copy of x's little-endian limbs.
func (x Uint) Limbs() []uint64 { return cloneLimbs(x.limbs) }

// UintFromLimbs builds a Uint directly from little-endian limbs; the slice is
// copied.
func UintFromLimbs(limbs []uint64) Uint {
	return Uint{limbs: cloneLimbs(limbs)}
}

func (x Uint) IsZero() bool { return isZeroLimbs(x.limbs) }

func (x Uint) Cmp(y Uint) int { return cmpLimbs(x.limbs, y.limbs) }

// Add returns x+y and whether the addition overflowed the shared width.
func (x Uint) Add(y Uint) (Uint, bool) {
	out, overflow := addLimbs(x.limbs, y.limbs)
	return Uint{limbs: out}, overflow
}

// Sub returns x-y and whether the subtraction underflowed (x<y).
func (x Uint) Sub(y Uint) (Uint, bool) {
	out, borrow := subLimbs(x.limbs, y.limbs)
	return Uint{limbs: out}, borrow
}

// Mul returns x*y truncated to x's width, and whether any truncated bits were
// nonzero.
func (x Uint) Mul(y Uint) (Uint, bool) {
	out, overflow := mulLimbsTruncate(x.limbs, y.limbs)
	return Uint{limbs: out}, overflow
}

// ExtendAndMultiply returns the exact product of x and y as a Uint of width
// x.Width()+y.Width().
func (x Uint) ExtendAndMultiply(y Uint) Uint {
	return Uint{limbs: mulLimbsExtend(x.limbs, y.limbs)}
}

// Shl returns x shifted left by n bits, truncated to x's width.
func (x Uint) Shl(n uint) Uint { return Uint{limbs: shlLimbs(x.limbs, n)} }

// Shr returns x shifted right (logical) by n bits.
func (x Uint) Shr(n uint) Uint { return Uint{limbs: shrLimbs(x.limbs, n)} }

// FindMSBSetNonZero returns the 0-based index (from the LSB) of the highest
// set bit. x must be nonzero.
func (x Uint) FindMSBSetNonZero() int { return msbSetNonZero(x.limbs) }

// DivModUint32 divides x by a nonzero 32-bit divisor.
func (x Uint) DivModUint32(divisor uint32) (Uint, uint32) {
	q, r := divModUint32Limbs(x.limbs, divisor)
	return Uint{limbs: q}, r
}

// DivMod divides x by a nonzero y of the same width, via long division.
func (x Uint) DivMod(y Uint) (Uint, Uint) {
	q, r := divModLimbs(x.limbs, y.limbs)
	return Uint{limbs: q}, Uint{limbs: r}
}

// AppendDecimal appends the base-10 representation of x (no sign) to buf.
func (x Uint) AppendDecimal(buf []byte) []byte { return appendDecimalLimbs(buf, x.limbs) }

func (x Uint) String() string { return string(x.AppendDecimal(nil)) }

// ParseUint parses a non-empty ASCII digit string into a width-limb
// magnitude. Reports false on a non-digit byte or on overflow.
func ParseUint(width int, s string) (Uint, bool) {
	limbs, ok := parseDigitsLimbs(width, s)
	return Uint{limbs: limbs}, ok
}

// ToFloat64 converts x to the nearest float64 via a limb scan. Adequate for
// conversions that are not on the double-rounding-sensitive ToDouble path;
// see Numeric.Float64 / BigNumeric.Float64 for the precision-preserving
// algorithm.
func (x Uint) ToFloat64() float64 { return toFloat64Limbs(x.limbs) }

// SerializeBytes appends the minimal-length little-endian unsigned byte
// representation of x (always at least one byte).
func (x Uint) SerializeBytes() []byte { return serializeBytesUnsigned(x.limbs) }

// DeserializeUintBytes is the inverse of SerializeBytes for a known width.
func DeserializeUintBytes(width int, b []byte) (Uint, bool) {
	limbs, ok := deserializeBytesUnsigned(width, b)
	return Uint{limbs: limbs}, ok
}

// WithLowBitSet returns x with its least-significant bit forced to 1,
// leaving every other bit unchanged. It is the building block of the
// sticky-remainder trick used by the high-precision ToDouble conversions:
// the caller ORs in "remainder != 0" right before a final narrowing
// division so that later round-to-nearest-even can't silently discard a
// nonzero remainder at a tie.
func (x Uint) WithLowBitSet() Uint {
	out := cloneLimbs(x.limbs)
	if len(out) > 0 {
		out[0] |= 1
	}
	return Uint{limbs: out}
}

// Widen returns x reinterpreted at a larger width, zero-extended.
func (x Uint) Widen(width int) Uint {
	if width < len(x.limbs) {
		panic("wideint: Widen to a narrower width")
	}
	out := make([]uint64, width)
	copy(out, x.limbs)
	return Uint{limbs: out}
}

// Narrow returns x truncated to a smaller width, and whether any of the
// discarded high limbs were nonzero.
func (x Uint) Narrow(width int) (Uint, bool) {
	if width > len(x.limbs) {
		panic("wideint: Narrow to a wider width")
	}
	overflow := !isZeroLimbs(x.limbs[width:])
	return Uint{limbs: cloneLimbs(x.limbs[:width])}, overflow
}
