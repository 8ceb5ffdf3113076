package wideint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintAddSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint64
		wantSum  uint64
		overflow bool
	}{
		{"simple", 1, 2, 3, false},
		{"zero", 0, 0, 0, false},
		{"max+1", ^uint64(0), 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := UintFromUint64(1, tt.a)
			b := UintFromUint64(1, tt.b)
			sum, overflow := a.Add(b)
			require.Equal(t, tt.overflow, overflow)
			require.Equal(t, tt.wantSum, sum.Limbs()[0])

			back, borrow := sum.Sub(b)
			if !overflow {
				require.False(t, borrow)
				require.Equal(t, tt.a, back.Limbs()[0])
			}
		})
	}
}

func TestUintMulExtend(t *testing.T) {
	a := UintFromUint64(2, 1<<63)
	b := UintFromUint64(2, 2)
	full := a.ExtendAndMultiply(b)
	require.Equal(t, 4, full.Width())
	require.True(t, full.Limbs()[1] == 1) // 2^64 carried into the second limb
}

func TestUintDivMod(t *testing.T) {
	a, ok := ParseUint(2, "123456789012345678901234567890")
	require.True(t, ok)
	q, r := a.DivModUint32(1_000_000_000)
	require.Equal(t, uint32(234567890), r)
	reconstructed, _ := q.Mul(UintFromUint64(2, 1_000_000_000))
	reconstructed, _ = reconstructed.Add(UintFromUint64(2, uint64(r)))
	require.Equal(t, 0, reconstructed.Cmp(a))
}

func TestUintDivModWide(t *testing.T) {
	a, ok := ParseUint(4, "123456789012345678901234567890123456789")
	require.True(t, ok)
	b, ok := ParseUint(4, "987654321")
	require.True(t, ok)
	q, r := a.DivMod(b)
	reconstructed := q.ExtendAndMultiply(b)
	narrowed, overflow := reconstructed.Narrow(4)
	require.False(t, overflow)
	sum, carry := narrowed.Add(r)
	require.False(t, carry)
	require.Equal(t, 0, sum.Cmp(a))
}

func TestUintParseAppend(t *testing.T) {
	s := "340282366920938463463374607431768211455" // 2^128 - 1
	u, ok := ParseUint(2, s)
	require.True(t, ok)
	require.Equal(t, s, u.String())
}

func TestUintOverflowOnParse(t *testing.T) {
	_, ok := ParseUint(1, "18446744073709551616") // 2^64, one over uint64 max
	require.False(t, ok)
}

func TestUintSerializeRoundTrip(t *testing.T) {
	u, ok := ParseUint(2, "123456789012345678901234567890")
	require.True(t, ok)
	b := u.SerializeBytes()
	back, ok := DeserializeUintBytes(2, b)
	require.True(t, ok)
	require.Equal(t, 0, u.Cmp(back))
}

func TestIntSignedSerializeRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "123456789", "-123456789012345"} {
		x, ok := ParseInt(2, s)
		require.True(t, ok, s)
		b := x.SerializeBytes()
		back, ok := DeserializeIntBytes(2, b)
		require.True(t, ok, s)
		require.Equal(t, 0, x.Cmp(back), s)
	}
}

func TestIntArithmetic(t *testing.T) {
	a, _ := ParseInt(2, "-5")
	b, _ := ParseInt(2, "3")
	sum, overflow := a.Add(b)
	require.False(t, overflow)
	require.Equal(t, "-2", sum.String())

	diff, overflow := a.Sub(b)
	require.False(t, overflow)
	require.Equal(t, "-8", diff.String())

	prod, overflow := a.Mul(b)
	require.False(t, overflow)
	require.Equal(t, "-15", prod.String())
}

func TestIntDivAndRoundAwayFromZero(t *testing.T) {
	a, _ := ParseInt(2, "7")
	d, _ := ParseInt(2, "2")
	got := a.DivAndRoundAwayFromZero(d)
	require.Equal(t, "4", got.String()) // 3.5 rounds away from zero to 4

	a2, _ := ParseInt(2, "-7")
	got2 := a2.DivAndRoundAwayFromZero(d)
	require.Equal(t, "-4", got2.String())
}

func TestPow10(t *testing.T) {
	require.Equal(t, "1000000000", Pow10(2, 9).String())
	require.Equal(t, "10000000000000000000000000000000000000000", Pow10(4, 40).String())
}

func TestFindMSBSetNonZero(t *testing.T) {
	u := UintFromUint64(2, 1)
	require.Equal(t, 0, u.FindMSBSetNonZero())

	u2 := UintFromUint64(2, 1).Shl(65)
	require.Equal(t, 65, u2.FindMSBSetNonZero())
}
