package wideint

// Int is a fixed-width signed integer, represented internally as an explicit
// sign plus an unsigned magnitude (the Go port's analogue of the source's
// two's-complement word — see the repository's DESIGN.md for the rationale).
// The externally visible byte format produced by SerializeBytes is still
// little-endian two's-complement, exactly as a storage consumer would expect;
// the conversion happens only at the serialize/deserialize boundary.
type Int struct {
	neg bool
	mag Uint
}

// NewInt returns the zero value of the given width.
func NewInt(width int) Int { return Int{mag: NewUint(width)} }

// IntFromInt64 returns a width-limb Int holding v.
func IntFromInt64(width int, v int64) Int {
	if v >= 0 {
		return Int{neg: false, mag: UintFromUint64(width, uint64(v))}
	}
	// avoid overflow on MinInt64 negation by working in uint64 space
	mag := uint64(-(v + 1)) + 1
	return Int{neg: true, mag: UintFromUint64(width, mag)}
}

// IntFromUint returns a signed Int with the given sign and magnitude.
func IntFromUint(neg bool, mag Uint) Int {
	if mag.IsZero() {
		neg = false
	}
	return Int{neg: neg, mag: mag}
}

func (x Int) Width() int   { return x.mag.Width() }
func (x Int) IsZero() bool { return x.mag.IsZero() }
func (x Int) IsNeg() bool  { return x.neg && !x.mag.IsZero() }
func (x Int) Abs() Uint    { return x.mag }

// Sign returns -1, 0, or 1.
func (x Int) Sign() int {
	switch {
	case x.mag.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

func (x Int) Neg() Int {
	if x.mag.IsZero() {
		return x
	}
	return Int{neg: !x.neg, mag: x.mag}
}

func (x Int) Cmp(y Int) int {
	switch {
	case x.Sign() != y.Sign():
		if x.Sign() < y.Sign() {
			return -1
		}
		return 1
	case x.Sign() == 0:
		return 0
	case !x.neg: // both positive
		return x.mag.Cmp(y.mag)
	default: // both negative: larger magnitude is smaller value
		return y.mag.Cmp(x.mag)
	}
}

// Add returns x+y and whether the true mathematical sum does not fit in the
// shared width as a signed value. Internally this is carried out as a
// sign/magnitude add-or-subtract, never a wrapping two's-complement add.
func (x Int) Add(y Int) (Int, bool) {
	if x.neg == y.neg {
		mag, overflow := x.mag.Add(y.mag)
		return Int{neg: x.neg, mag: mag}, overflow
	}
	// different signs: subtract smaller magnitude from larger
	switch x.mag.Cmp(y.mag) {
	case 0:
		return Int{mag: NewUint(x.Width())}, false
	case 1:
		mag, _ := x.mag.Sub(y.mag)
		return Int{neg: x.neg, mag: mag}, false
	default:
		mag, _ := y.mag.Sub(x.mag)
		return Int{neg: y.neg, mag: mag}, false
	}
}

func (x Int) Sub(y Int) (Int, bool) { return x.Add(y.Neg()) }

// Mul returns x*y truncated to x's width, and whether any truncated bits were
// nonzero.
func (x Int) Mul(y Int) (Int, bool) {
	mag, overflow := x.mag.Mul(y.mag)
	return Int{neg: x.neg != y.neg, mag: mag}, overflow
}

// ExtendAndMultiply returns the exact signed product of x and y, at width
// x.Width()+y.Width().
func (x Int) ExtendAndMultiply(y Int) Int {
	mag := x.mag.ExtendAndMultiply(y.mag)
	return IntFromUint(x.neg != y.neg, mag)
}

// DivAndRoundAwayFromZero computes round(x/d) using round-half-away-from-zero
// on the magnitudes; d must be nonzero.
func (x Int) DivAndRoundAwayFromZero(d Int) Int {
	q, r := x.mag.DivMod(d.mag)
	two := UintFromUint64(x.Width(), 2)
	twoRem, _ := r.Mul(two)
	if twoRem.Cmp(d.mag) >= 0 {
		q, _ = q.Add(UintFromUint64(x.Width(), 1))
	}
	return IntFromUint(x.neg != d.neg, q)
}

// Widen returns x reinterpreted at a larger width, sign-extended in value
// (not bitwise — the magnitude is simply zero-extended since this type is
// sign+magnitude, not two's complement).
func (x Int) Widen(width int) Int {
	return Int{neg: x.neg, mag: x.mag.Widen(width)}
}

func (x Int) AppendString(buf []byte) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	return x.mag.AppendDecimal(buf)
}

func (x Int) String() string { return string(x.AppendString(nil)) }

// ParseInt parses an optional leading '-' followed by a non-empty digit
// string.
func ParseInt(width int, s string) (Int, bool) {
	if s == "" {
		return Int{}, false
	}
	neg := false
	if s[0] == '-' || s[0] == '+' {
		neg = s[0] == '-'
		s = s[1:]
	}
	mag, ok := ParseUint(width, s)
	if !ok {
		return Int{}, false
	}
	return IntFromUint(neg, mag), true
}

// ToFloat64 converts x to the nearest float64.
func (x Int) ToFloat64() float64 {
	f := x.mag.ToFloat64()
	if x.neg {
		return -f
	}
	return f
}

// SerializeBytes appends the minimal-length little-endian two's-complement
// representation of x (at least one byte; a single 0x00 for zero).
func (x Int) SerializeBytes() []byte {
	if x.mag.IsZero() {
		return []byte{0x00}
	}
	if !x.neg {
		b := x.mag.SerializeBytes()
		if b[len(b)-1]&0x80 != 0 {
			b = append(b, 0x00) // keep the sign bit clear for a positive value
		}
		return b
	}
	// two's complement of the magnitude: invert all width bytes and add one,
	// then trim redundant 0xFF sign-extension bytes (keeping the sign bit set).
	full := make([]byte, x.mag.Width()*8)
	raw := x.mag.SerializeBytes()
	copy(full, raw)
	for i := range full {
		full[i] = ^full[i]
	}
	carry := byte(1)
	for i := 0; i < len(full) && carry != 0; i++ {
		sum := uint16(full[i]) + uint16(carry)
		full[i] = byte(sum)
		carry = byte(sum >> 8)
	}
	last := len(full) - 1
	for last > 0 && full[last] == 0xFF && full[last-1]&0x80 != 0 {
		last--
	}
	return full[:last+1]
}

// DeserializeIntBytes is the inverse of Int.SerializeBytes for a known width.
func DeserializeIntBytes(width int, b []byte) (Int, bool) {
	if len(b) == 0 || len(b) > width*8 {
		return Int{}, false
	}
	neg := b[len(b)-1]&0x80 != 0
	if !neg {
		mag, ok := DeserializeUintBytes(width, b)
		return IntFromUint(false, mag), ok
	}
	full := make([]byte, width*8)
	for i := range full {
		full[i] = 0xFF
	}
	copy(full, b)
	// undo two's complement: subtract one, then invert
	borrow := byte(1)
	for i := 0; i < len(full) && borrow != 0; i++ {
		if full[i] >= borrow {
			full[i] -= borrow
			borrow = 0
		} else {
			full[i] = full[i] - borrow
			borrow = 1
		}
	}
	for i := range full {
		full[i] = ^full[i]
	}
	mag, ok := DeserializeUintBytes(width, full)
	return IntFromUint(true, mag), ok
}

// IntMax returns the larger of x and y.
func IntMax(x, y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// IntMin returns the smaller of x and y.
func IntMin(x, y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
