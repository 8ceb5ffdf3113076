package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumeric_ZeroValue(t *testing.T) {
	var z Numeric
	require.True(t, z.IsZero())
	require.Equal(t, "0", z.String())
	require.Equal(t, 0, z.Sign())
}

func TestNumeric_Add(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1", "2", "3"},
		{"1.5", "2.5", "4"},
		{"-1", "1", "0"},
		{"-1.5", "-2.5", "-4"},
		{"0.1", "0.2", "0.3"},
	}
	for _, tc := range tests {
		t.Run(tc.a+"+"+tc.b, func(t *testing.T) {
			a, b := MustParseNumeric(tc.a), MustParseNumeric(tc.b)
			got, err := a.Add(b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNumeric_Add_Overflow(t *testing.T) {
	max := MustParseNumeric("99999999999999999999999999999.999999999")
	_, err := max.Add(MustParseNumeric("1"))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, OutOfRange, derr.Kind)
}

func TestNumeric_Subtract(t *testing.T) {
	a := MustParseNumeric("5")
	b := MustParseNumeric("3")
	got, err := a.Subtract(b)
	require.NoError(t, err)
	require.Equal(t, "2", got.String())
}

func TestNumeric_Multiply(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"2", "3", "6"},
		{"1.5", "2", "3"},
		{"0.1", "0.1", "0.01"},
		{"-2", "3", "-6"},
		{"-2", "-3", "6"},
	}
	for _, tc := range tests {
		t.Run(tc.a+"*"+tc.b, func(t *testing.T) {
			a, b := MustParseNumeric(tc.a), MustParseNumeric(tc.b)
			got, err := a.Multiply(b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNumeric_Divide(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"6", "3", "2"},
		{"1", "3", "0.333333333"},
		{"1", "4", "0.25"},
		{"-1", "4", "-0.25"},
		{"10", "4", "2.5"},
	}
	for _, tc := range tests {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			a, b := MustParseNumeric(tc.a), MustParseNumeric(tc.b)
			got, err := a.Divide(b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNumeric_Divide_ByZero(t *testing.T) {
	a := MustParseNumeric("1")
	_, err := a.Divide(ZeroNumeric())
	require.Error(t, err)
	require.True(t, errorIsKind(err, DivisionByZero))
}

func TestNumeric_IntegerDivideAndMod(t *testing.T) {
	a := MustParseNumeric("7")
	b := MustParseNumeric("2")
	q, err := a.IntegerDivide(b)
	require.NoError(t, err)
	require.Equal(t, "3", q.String())

	m, err := a.Mod(b)
	require.NoError(t, err)
	require.Equal(t, "1", m.String())
}

func TestNumeric_Round(t *testing.T) {
	v := MustParseNumeric("1.2345")
	tests := []struct {
		digits int32
		want   string
	}{
		{4, "1.2345"},
		{3, "1.235"},
		{2, "1.23"},
		{0, "1"},
		{9, "1.2345"},  // digits >= scale is a no-op
		{-30, "0"},     // retained quirk: digits < -29 always yields zero
	}
	for _, tc := range tests {
		got, err := v.Round(tc.digits, true)
		require.NoError(t, err)
		require.Equal(t, tc.want, got.String())
	}
}

func TestNumeric_TruncFloorCeil(t *testing.T) {
	pos := MustParseNumeric("1.7")
	neg := MustParseNumeric("-1.7")

	gotTrunc, err := pos.Trunc(0)
	require.NoError(t, err)
	require.Equal(t, "1", gotTrunc.String())

	gotFloorPos, err := pos.Floor()
	require.NoError(t, err)
	require.Equal(t, "1", gotFloorPos.String())

	gotCeilPos, err := pos.Ceil()
	require.NoError(t, err)
	require.Equal(t, "2", gotCeilPos.String())

	gotFloorNeg, err := neg.Floor()
	require.NoError(t, err)
	require.Equal(t, "-2", gotFloorNeg.String())

	gotCeilNeg, err := neg.Ceil()
	require.NoError(t, err)
	require.Equal(t, "-1", gotCeilNeg.String())
}

func TestNumeric_Power(t *testing.T) {
	tests := []struct {
		base, exp, want string
	}{
		{"2", "10", "1024"},
		{"2", "0", "1"},
		{"0", "0", "1"},
		{"5", "-1", "0.2"},
	}
	for _, tc := range tests {
		t.Run(tc.base+"^"+tc.exp, func(t *testing.T) {
			base, exp := MustParseNumeric(tc.base), MustParseNumeric(tc.exp)
			got, err := base.Power(exp)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNumeric_Power_NegativeBaseFractionalExp(t *testing.T) {
	base := MustParseNumeric("-2")
	exp := MustParseNumeric("0.5")
	_, err := base.Power(exp)
	require.True(t, errorIsKind(err, FailedPrecondition))
}

func TestNumeric_Power_ZeroToNegative(t *testing.T) {
	_, err := ZeroNumeric().Power(MustParseNumeric("-1"))
	require.True(t, errorIsKind(err, DivisionByZero))
}

func TestNumeric_FloatRoundTrip(t *testing.T) {
	tests := []float64{0, 1, -1, 0.5, 123.456, 1e9, -1e9, 1.0 / 3.0}
	for _, f := range tests {
		v, err := NumericFromFloat64(f)
		require.NoError(t, err)
		got, err := v.Float64()
		require.NoError(t, err)
		require.InDelta(t, f, got, 1e-6)
	}
}

func TestNumeric_FloatRejectsNonFinite(t *testing.T) {
	_, err := NumericFromFloat64(math.NaN())
	require.True(t, errorIsKind(err, FailedPrecondition))
	_, err = NumericFromFloat64(math.Inf(1))
	require.True(t, errorIsKind(err, FailedPrecondition))
}

func TestNumeric_SerializeRoundTrip(t *testing.T) {
	tests := []string{"0", "1", "-1", "123.456", "-99999999999999999999999999999.999999999"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			v := MustParseNumeric(s)
			b := v.SerializeBytes()
			got, err := DeserializeNumeric(b)
			require.NoError(t, err)
			require.True(t, v.Equal(got))
		})
	}
}

func TestNumeric_CmpAndSign(t *testing.T) {
	require.Equal(t, -1, MustParseNumeric("-1").Cmp(MustParseNumeric("1")))
	require.Equal(t, 1, MustParseNumeric("1").Cmp(MustParseNumeric("-1")))
	require.Equal(t, 0, MustParseNumeric("1").Cmp(MustParseNumeric("1.0")))
	require.Equal(t, -1, MustParseNumeric("-5").Sign())
	require.Equal(t, 1, MustParseNumeric("5").Sign())
	require.Equal(t, 0, ZeroNumeric().Sign())
}

func TestNumeric_TextMarshaling(t *testing.T) {
	v := MustParseNumeric("42.5")
	b, err := v.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "42.5", string(b))

	var got Numeric
	require.NoError(t, got.UnmarshalText([]byte("42.5")))
	require.True(t, v.Equal(got))
}

func errorIsKind(err error, kind Kind) bool {
	var derr *Error
	if !(err != nil) {
		return false
	}
	if asErr, ok := err.(*Error); ok {
		derr = asErr
	} else {
		return false
	}
	return derr.Kind == kind
}
