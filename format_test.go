package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name  string
		neg   bool
		mag   uint64
		scale int
		want  string
	}{
		{"zero", false, 0, 9, "0"},
		{"whole", false, 5_000_000_000, 9, "5"},
		{"fraction", false, 1_500_000_000, 9, "1.5"},
		{"negative", true, 1_500_000_000, 9, "-1.5"},
		{"leading zero padding", false, 5, 9, "0.000000005"},
		{"trailing zero trim", false, 1_230_000_000, 9, "1.23"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mag := wideint.UintFromUint64(numericWidth, tc.mag)
			got := formatDecimal(tc.neg, mag, tc.scale)
			require.Equal(t, tc.want, got)
		})
	}
}
