// Package wideint implements fixed-width unsigned and signed integers over an
// arbitrary number of 64-bit limbs. It is the wide-integer kernel that the
// Numeric and BigNumeric decimal types are built on: every limb-level
// algorithm (add, subtract, multiply, divide, shift, parse, format,
// serialize) is written once against a []uint64 slice and works for every
// width the kernel needs, from the 2-limb Numeric coefficient up through the
// widest aggregator accumulators.
//
// Limbs are little-endian: limb 0 holds bits [0,64), limb 1 holds [64,128),
// and so on.
package wideint

import (
	"math"
	"math/bits"
)

func cloneLimbs(x []uint64) []uint64 {
	out := make([]uint64, len(x))
	copy(out, x)
	return out
}

func isZeroLimbs(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func cmpLimbs(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// addLimbs computes x+y into a result of the same width, returning the
// carry-out of the top limb.
func addLimbs(x, y []uint64) ([]uint64, bool) {
	out := make([]uint64, len(x))
	var carry uint64
	for i := range x {
		var c uint64
		out[i], c = bits.Add64(x[i], y[i], carry)
		carry = c
	}
	return out, carry != 0
}

// subLimbs computes x-y, returning true if the subtraction borrowed (x<y).
func subLimbs(x, y []uint64) ([]uint64, bool) {
	out := make([]uint64, len(x))
	var borrow uint64
	for i := range x {
		var b uint64
		out[i], b = bits.Sub64(x[i], y[i], borrow)
		borrow = b
	}
	return out, borrow != 0
}

// mulLimbsExtend computes the full (len(x)+len(y))-limb exact product using
// schoolbook long multiplication.
func mulLimbsExtend(x, y []uint64) []uint64 {
	out := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			hi, lo := bits.Mul64(xi, yj)
			lo, c0 := bits.Add64(lo, out[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c0)
			lo, c1 := bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c1)
			out[i+j] = lo
			carry = hi
		}
		addCarryFrom(out, i+len(y), carry)
	}
	return out
}

// addCarryFrom adds carry into out[idx], propagating further carries upward.
func addCarryFrom(out []uint64, idx int, carry uint64) {
	for carry != 0 && idx < len(out) {
		var c uint64
		out[idx], c = bits.Add64(out[idx], carry, 0)
		carry = c
		idx++
	}
}

// mulLimbsTruncate computes x*y truncated (wrapped) to len(x) limbs, and
// reports whether any of the discarded high limbs were nonzero.
func mulLimbsTruncate(x, y []uint64) ([]uint64, bool) {
	full := mulLimbsExtend(x, y)
	out := cloneLimbs(full[:len(x)])
	overflow := !isZeroLimbs(full[len(x):])
	return out, overflow
}

func shlLimbs(x []uint64, n uint) []uint64 {
	out := make([]uint64, len(x))
	if n == 0 {
		copy(out, x)
		return out
	}
	words := int(n / 64)
	bitsN := n % 64
	for i := len(x) - 1; i >= 0; i-- {
		srcIdx := i - words
		if srcIdx < 0 {
			continue
		}
		var v uint64 = x[srcIdx] << bitsN
		if bitsN != 0 && srcIdx-1 >= 0 {
			v |= x[srcIdx-1] >> (64 - bitsN)
		}
		out[i] = v
	}
	return out
}

func shrLimbs(x []uint64, n uint) []uint64 {
	out := make([]uint64, len(x))
	if n == 0 {
		copy(out, x)
		return out
	}
	words := int(n / 64)
	bitsN := n % 64
	for i := 0; i < len(x); i++ {
		srcIdx := i + words
		if srcIdx >= len(x) {
			continue
		}
		var v uint64 = x[srcIdx] >> bitsN
		if bitsN != 0 && srcIdx+1 < len(x) {
			v |= x[srcIdx+1] << (64 - bitsN)
		}
		out[i] = v
	}
	return out
}

// msbSetNonZero returns the index (0-based, from the LSB) of the highest set
// bit. x must be nonzero.
func msbSetNonZero(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i]) - 1
		}
	}
	return -1
}

// divModUint32Limbs divides x by a 32-bit divisor, returning the quotient (same
// width as x) and the remainder. divisor must be nonzero.
func divModUint32Limbs(x []uint64, divisor uint32) ([]uint64, uint32) {
	out := make([]uint64, len(x))
	var rem uint64
	d := uint64(divisor)
	for i := len(x) - 1; i >= 0; i-- {
		hi32 := x[i] >> 32
		cur := (rem << 32) | hi32
		qHi := cur / d
		rem = cur % d
		lo32 := x[i] & 0xFFFFFFFF
		cur = (rem << 32) | lo32
		qLo := cur / d
		rem = cur % d
		out[i] = (qHi << 32) | qLo
	}
	return out, uint32(rem)
}

// divModLimbs performs long division of x by y (both width-len(x)), returning
// quotient and remainder, each of the same width. y must be nonzero.
//
// This is a bit-at-a-time restoring division: simple, limb-count agnostic,
// and fast enough since widths stay in the tens of limbs.
func divModLimbs(x, y []uint64) ([]uint64, []uint64) {
	n := len(x)
	if cmpLimbs(x, y) < 0 {
		return make([]uint64, n), cloneLimbs(x)
	}
	quot := make([]uint64, n)
	rem := make([]uint64, n)
	totalBits := n * 64
	for i := totalBits - 1; i >= 0; i-- {
		rem = shlLimbs(rem, 1)
		if bitAt(x, i) {
			rem[0] |= 1
		}
		if cmpLimbs(rem, y) >= 0 {
			rem, _ = subLimbs(rem, y)
			setBitAt(quot, i)
		}
	}
	return quot, rem
}

func bitAt(x []uint64, i int) bool {
	return x[i/64]&(uint64(1)<<uint(i%64)) != 0
}

func setBitAt(x []uint64, i int) {
	x[i/64] |= uint64(1) << uint(i%64)
}

// appendDecimalLimbs appends the base-10 representation of x (no sign) to buf.
func appendDecimalLimbs(buf []byte, x []uint64) []byte {
	if isZeroLimbs(x) {
		return append(buf, '0')
	}
	cur := cloneLimbs(x)
	var digitsRev []byte
	const chunk = 1_000_000_000 // 10^9, fits safely in uint32 divmod
	for !isZeroLimbs(cur) {
		var rem uint32
		cur, rem = divModUint32Limbs(cur, chunk)
		for i := 0; i < 9; i++ {
			digitsRev = append(digitsRev, byte('0'+rem%10))
			rem /= 10
		}
	}
	for len(digitsRev) > 1 && digitsRev[len(digitsRev)-1] == '0' {
		digitsRev = digitsRev[:len(digitsRev)-1]
	}
	for i := len(digitsRev) - 1; i >= 0; i-- {
		buf = append(buf, digitsRev[i])
	}
	return buf
}

// parseDigitsLimbs parses a non-empty ASCII digit string into a width-limb
// magnitude, reporting false on a non-digit byte or on overflow.
func parseDigitsLimbs(width int, s string) ([]uint64, bool) {
	out := make([]uint64, width)
	if len(s) == 0 {
		return out, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return out, false
		}
		// out = out*10 + digit
		var carry uint64 = uint64(c - '0')
		for j := 0; j < width; j++ {
			hi, lo := bits.Mul64(out[j], 10)
			var c0 uint64
			lo, c0 = bits.Add64(lo, carry, 0)
			carry = hi + c0
			out[j] = lo
		}
		if carry != 0 {
			return out, false
		}
	}
	return out, true
}

// toFloat64Limbs converts a magnitude to the nearest float64 by truncating
// to its top 64 significant bits, OR-ing every discarded lower bit into the
// result's LSB as a sticky flag, and scaling with Ldexp. The final
// uint64->float64 conversion is left to do the only rounding step: its
// hardware round-to-nearest-even already has 64-53=11 bits of guard/round/
// sticky room below the kept mantissa, so folding the discarded bits into
// just the LSB (rather than rounding them away here first) is lossless for
// that step while avoiding double rounding. Rounding here too — as an
// earlier revision did by testing only the single bit below the cutoff —
// would round x to 64 bits and then let the hardware round those 64 bits to
// 53, two roundings in a row that can disagree with the single correctly-
// rounded result and land on the wrong neighbor at a tie. This is also the
// reason the bit forced on by Uint.WithLowBitSet (the division-remainder
// sticky flag threaded in by Numeric.Float64/BigNumeric.Float64) must
// survive intact: it falls among the bits this function ORs together below,
// not at the single pre-cutoff bit the old code alone inspected.
func toFloat64Limbs(x []uint64) float64 {
	if isZeroLimbs(x) {
		return 0
	}
	msb := msbSetNonZero(x)
	if msb < 64 {
		return float64(x[0])
	}
	shift := uint(msb - 63)
	top := shrLimbs(x, shift)
	val := top[0]
	if stickyBelow(x, shift) {
		val |= 1
	}
	return math.Ldexp(float64(val), int(shift))
}

// stickyBelow reports whether any of x's bits below position `shift` (i.e.
// the bits a shrLimbs(x, shift) would discard) are set.
func stickyBelow(x []uint64, shift uint) bool {
	for i := uint(0); i < shift; i++ {
		if bitAt(x, int(i)) {
			return true
		}
	}
	return false
}

// serializeBytesUnsigned appends the little-endian byte representation of x,
// trimmed to the minimal length that still round-trips as unsigned (i.e. no
// trailing 0x00 limbs/bytes beyond the first nonzero one, but always at
// least one byte).
func serializeBytesUnsigned(x []uint64) []byte {
	out := make([]byte, 0, len(x)*8)
	for _, w := range x {
		for i := 0; i < 8; i++ {
			out = append(out, byte(w>>(8*uint(i))))
		}
	}
	last := len(out) - 1
	for last > 0 && out[last] == 0 {
		last--
	}
	return out[:last+1]
}

func deserializeBytesUnsigned(width int, b []byte) ([]uint64, bool) {
	out := make([]uint64, width)
	if len(b) > width*8 {
		return out, false
	}
	for i, v := range b {
		out[i/8] |= uint64(v) << (8 * uint(i%8))
	}
	return out, true
}
