package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

func TestBigNumeric_ZeroValue(t *testing.T) {
	var z BigNumeric
	require.True(t, z.IsZero())
	require.Equal(t, "0", z.String())
}

func TestBigNumeric_ArithmeticRoundTrip(t *testing.T) {
	a := MustParseBigNumeric("123456789012345678901234567890.123456789")
	b := MustParseBigNumeric("1.5")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567891.623456789", sum.String())

	diff, err := sum.Subtract(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a))

	prod, err := MustParseBigNumeric("2").Multiply(MustParseBigNumeric("3"))
	require.NoError(t, err)
	require.Equal(t, "6", prod.String())

	quot, err := MustParseBigNumeric("1").Divide(MustParseBigNumeric("4"))
	require.NoError(t, err)
	require.Equal(t, "0.25", quot.String())
}

func TestBigNumeric_Divide_ByZero(t *testing.T) {
	_, err := MustParseBigNumeric("1").Divide(ZeroBigNumeric())
	require.True(t, errorIsKind(err, DivisionByZero))
}

func TestBigNumeric_Range(t *testing.T) {
	// bigNumericMaxPos (2^255-1) is representable; one past it, as a
	// positive magnitude, is not (the asymmetric range's positive bound).
	_, err := bigNumericCheckRange("test", false, bigNumericMaxPos)
	require.NoError(t, err)

	tooBig, _ := bigNumericMaxPos.Add(wideint.UintFromUint64(bigNumericWidth, 1))
	_, err = bigNumericCheckRange("test", false, tooBig)
	require.True(t, errorIsKind(err, OutOfRange))

	// bigNumericMaxNeg (2^255) is representable as the most negative value.
	_, err = bigNumericCheckRange("test", true, bigNumericMaxNeg)
	require.NoError(t, err)
}

func TestBigNumeric_RoundTruncFloorCeil(t *testing.T) {
	v := MustParseBigNumeric("1.5")
	r, err := v.Round(0, true)
	require.NoError(t, err)
	require.Equal(t, "2", r.String())

	neg := MustParseBigNumeric("-1.5")
	f, err := neg.Floor()
	require.NoError(t, err)
	require.Equal(t, "-2", f.String())

	c, err := neg.Ceil()
	require.NoError(t, err)
	require.Equal(t, "-1", c.String())
}

func TestBigNumeric_Power(t *testing.T) {
	base := MustParseBigNumeric("2")
	exp := MustParseBigNumeric("10")
	got, err := base.Power(exp)
	require.NoError(t, err)
	require.Equal(t, "1024", got.String())
}

func TestBigNumeric_FloatRoundTrip(t *testing.T) {
	tests := []float64{0, 1, -1, 0.5, 123.456}
	for _, f := range tests {
		v, err := BigNumericFromFloat64(f)
		require.NoError(t, err)
		got, err := v.Float64()
		require.NoError(t, err)
		require.InDelta(t, f, got, 1e-6)
	}
}

func TestBigNumeric_FloatRejectsNonFinite(t *testing.T) {
	_, err := BigNumericFromFloat64(math.NaN())
	require.True(t, errorIsKind(err, FailedPrecondition))
}

func TestBigNumeric_SerializeRoundTrip(t *testing.T) {
	tests := []string{"0", "1", "-1", "123.456"}
	for _, s := range tests {
		v := MustParseBigNumeric(s)
		got, err := DeserializeBigNumeric(v.SerializeBytes())
		require.NoError(t, err)
		require.True(t, v.Equal(got))
	}
}
