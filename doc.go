/*
Package decimal implements the two fixed-point decimal types used by
SQL-style engines for exact numeric computation: [Numeric] and [BigNumeric].

# Representation

[Numeric] is a signed 128-bit integer scaled by 10^-9 (38 digits of
precision, 9 of them fractional). [BigNumeric] is a signed 256-bit integer
scaled by 10^-38 (76-77 digits of precision, 38 of them fractional). Both
are plain value types: the zero value of each is the decimal zero, and both
are safe to copy, compare with ==, and use as map keys.

The range of each type is:

	| Type       | Scale | Minimum                                             | Maximum                                              |
	| ---------- | ----- | ---------------------------------------------------- | ---------------------------------------------------- |
	| Numeric    | 9     | -99999999999999999999999999999.999999999             | 99999999999999999999999999999.999999999              |
	| BigNumeric | 38    | -578960446186580977117854925043439539266.34992332820282019728792003956564819968 | 578960446186580977117854925043439539266.34992332820282019728792003956564819967 |

Numeric's range is symmetric: the most negative value is the negation of the
most positive one. BigNumeric's range is the full asymmetric signed 256-bit
range, so its most negative value has no positive counterpart.

Neither type supports NaN, infinities, or negative zero: every arithmetic
operation either produces a valid decimal or an error.

# Conversions

  - from/to string: [ParseNumeric], [Numeric.String], and the BigNumeric
    equivalents. Both implement [encoding.TextMarshaler] and
    [encoding.TextUnmarshaler].
  - from/to float64: [NumericFromFloat64], [Numeric.Float64], and the
    BigNumeric equivalents.
  - from int64: [NewNumeric], and the BigNumeric equivalent. There is no
    conversion back to int64.
  - from/to bytes: [Numeric.SerializeBytes], [DeserializeNumeric], and the
    BigNumeric equivalents, using a minimal-length little-endian
    two's-complement encoding suitable for on-disk or wire storage.

# Operations

Add, Subtract, Multiply, Divide, IntegerDivide, Mod, Round, Trunc, Floor,
Ceil, and Power are implemented on both types with identical semantics,
differing only in scale and range. Each arithmetic operation computes the
exact mathematical result to more than the type's own width of intermediate
precision and then rounds to the type's scale using half-away-from-zero
rounding; if the final result does not fit in the type's range, an error is
returned instead of wrapping or silently truncating. Power is the exception
to the single final rounding: it rounds after every intermediate
multiplication and takes the factor for a fractional exponent from float64
math.Pow, so its last digits can differ from the correctly rounded result.

The package also implements streaming aggregators for SUM, AVG, VAR_POP,
VAR_SAMP, STDDEV_POP, STDDEV_SAMP, COVAR_POP, COVAR_SAMP, and CORR over
both types: [NumericSumAggregator], [NumericVarianceAggregator],
[NumericCovarianceAggregator], [NumericCorrelationAggregator], and their
BigNumeric equivalents. Each aggregator supports Add, Subtract (for sliding
windows), and Merge (for combining partial aggregates computed in
parallel), and keeps exact running sums rather than an incrementally
rounded running average, so the final GetSum/GetAverage is exact up to a
single final rounding.

# Rounding

All rounding in this package, implicit and explicit, is half-away-from-zero:
ties round to the value with the larger absolute magnitude. This matches the
rounding mode required of NUMERIC and BIGNUMERIC arithmetic and differs from
the round-half-to-even convention used by some other decimal libraries.

[Numeric.Round] and [BigNumeric.Round] additionally preserve two quirks of
the algorithm this package implements: rounding to a number of digits at or
above the type's own scale is a no-op, and rounding to fewer than -29 digits
always produces zero, even on values for which the true rounded result would
still be representable. See the Round method documentation for details.

# Errors

All methods are panic-free; see the Must-prefixed wrappers (for example
[Numeric.MustAdd] and [MustParseNumeric]) for callers that would rather
panic on a contract they know cannot fail. Every fallible method returns a *[Error], whose [Kind]
field lets callers branch on the failure category without parsing the error
message:

  - [InvalidArgument]: the input could not be parsed or deserialized.
  - [OutOfRange]: the exact mathematical result does not fit in the target
    type's range.
  - [DivisionByZero]: a division, modulo, or average was attempted with a
    zero divisor or a zero count.
  - [FailedPrecondition]: a float64 conversion was attempted on a non-finite
    value (NaN or ±Inf), or a negative base was raised to a fractional
    power.
  - [Internal]: an invariant the package itself is responsible for was
    violated; this should never be observed in practice.

[errors.Is] works against the exported Err* sentinels (for example
[ErrDivisionByZero]) without requiring an exact message match.
*/
package decimal
