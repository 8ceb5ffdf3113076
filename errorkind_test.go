package decimal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	_, err := ParseNumeric("")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidArgument))
	require.False(t, errors.Is(err, ErrOutOfRange))
}

func TestError_Message(t *testing.T) {
	e := &Error{Kind: DivisionByZero, Op: "Divide"}
	require.Equal(t, "decimal: Divide: division by zero", e.Error())

	e2 := &Error{Kind: OutOfRange, Op: "Add", Msg: "overflow"}
	require.Equal(t, "decimal: Add: out of range: overflow", e2.Error())
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		InvalidArgument:    "invalid argument",
		OutOfRange:         "out of range",
		DivisionByZero:     "division by zero",
		FailedPrecondition: "failed precondition",
		Internal:           "internal error",
	}
	for k, want := range tests {
		require.Equal(t, want, k.String())
	}
}
