package decimal

import "fmt"

// Kind classifies the way a decimal operation failed. It is a small closed
// set; callers that need to react differently to different failures should
// switch on Kind rather than parse an error string.
type Kind uint8

const (
	// InvalidArgument means the input could not be parsed or was otherwise
	// malformed (e.g. a byte encoding that does not deserialize).
	InvalidArgument Kind = iota + 1
	// OutOfRange means the exact mathematical result does not fit in the
	// target type's representable range.
	OutOfRange
	// DivisionByZero means a division, modulo, or average was attempted
	// with a zero divisor or zero count.
	DivisionByZero
	// FailedPrecondition means a double conversion was attempted on a
	// non-finite value (NaN or ±Inf), or a negative base was raised to a
	// fractional power.
	FailedPrecondition
	// Internal means an invariant the package itself is responsible for
	// was violated. It should never be observed outside of this package's
	// own tests.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "out of range"
	case DivisionByZero:
		return "division by zero"
	case FailedPrecondition:
		return "failed precondition"
	case Internal:
		return "internal error"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every fallible operation in this
// package. Its Kind field lets callers branch on the failure category
// without parsing Error's message.
type Error struct {
	Kind Kind
	Op   string // operation name, e.g. "Add", "Parse", "Power"
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("decimal: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("decimal: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, decimal.ErrDivisionByZero) works without requiring an exact
// message match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Sentinel errors for use with errors.Is, matching the kind-only comparison
// implemented by (*Error).Is above.
var (
	ErrInvalidArgument    = &Error{Kind: InvalidArgument}
	ErrOutOfRange         = &Error{Kind: OutOfRange}
	ErrDivisionByZero     = &Error{Kind: DivisionByZero}
	ErrFailedPrecondition = &Error{Kind: FailedPrecondition}
	ErrInternal           = &Error{Kind: Internal}
)
