package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"+1", "1"},
		{"1.5", "1.5"},
		{"-1.5", "-1.5"},
		{"1.000000000", "1"},
		{"0.1", "0.1"},
		{"1e2", "100"},
		{"1.23e2", "123"},
		{"1.23456789e-2", "0.012345679"},
		{"  42  ", "42"},
		{"123.0000000004", "123"},    // rounds away the 10th fractional digit
		{"123.0000000005", "123.000000001"}, // half-away-from-zero rounds up
		{".5", "0.5"},
		{"5.", "5"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseNumeric(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, v.String())
		})
	}
}

func TestParseNumeric_Errors(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"", InvalidArgument},
		{"abc", InvalidArgument},
		{"1.2.3", InvalidArgument},
		{"1e", InvalidArgument},
		{"1ee2", InvalidArgument},
		{"99999999999999999999999999999999999999999999999999", OutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseNumeric(tc.in)
			require.Error(t, err)
			var derr *Error
			require.ErrorAs(t, err, &derr)
			require.Equal(t, tc.kind, derr.Kind)
		})
	}
}

func TestParseBigNumeric_RoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"-1",
		"123456789012345678901234567890.12345678901234567890123456789012345678",
		"-123456789012345678901234567890.12345678901234567890123456789012345678",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			v, err := ParseBigNumeric(s)
			require.NoError(t, err)
			require.Equal(t, s, v.String())
		})
	}
}
