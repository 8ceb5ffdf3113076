package decimal

import "fmt"

// MustAdd is like Add but panics if computing returns an error.
func (x Numeric) MustAdd(y Numeric) Numeric {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSubtract is like Subtract but panics if computing returns an error.
func (x Numeric) MustSubtract(y Numeric) Numeric {
	z, err := x.Subtract(y)
	if err != nil {
		panic(fmt.Sprintf("MustSubtract(%v) failed: %v", y, err))
	}
	return z
}

// MustMultiply is like Multiply but panics if computing returns an error.
func (x Numeric) MustMultiply(y Numeric) Numeric {
	z, err := x.Multiply(y)
	if err != nil {
		panic(fmt.Sprintf("MustMultiply(%v) failed: %v", y, err))
	}
	return z
}

// MustDivide is like Divide but panics if computing returns an error.
func (x Numeric) MustDivide(y Numeric) Numeric {
	z, err := x.Divide(y)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%v) failed: %v", y, err))
	}
	return z
}

// MustIntegerDivide is like IntegerDivide but panics if computing returns an error.
func (x Numeric) MustIntegerDivide(y Numeric) Numeric {
	z, err := x.IntegerDivide(y)
	if err != nil {
		panic(fmt.Sprintf("MustIntegerDivide(%v) failed: %v", y, err))
	}
	return z
}

// MustMod is like Mod but panics if computing returns an error.
func (x Numeric) MustMod(y Numeric) Numeric {
	z, err := x.Mod(y)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", y, err))
	}
	return z
}

// MustRound is like Round but panics if computing returns an error.
func (x Numeric) MustRound(digits int32, awayFromZero bool) Numeric {
	z, err := x.Round(digits, awayFromZero)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v) failed: %v", digits, err))
	}
	return z
}

// MustPower is like Power but panics if computing returns an error.
func (x Numeric) MustPower(exp Numeric) Numeric {
	z, err := x.Power(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPower(%v) failed: %v", exp, err))
	}
	return z
}

// MustNumericFromFloat64 is like NumericFromFloat64 but panics on error.
func MustNumericFromFloat64(f float64) Numeric {
	v, err := NumericFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNumericFromFloat64(%v) failed: %v", f, err))
	}
	return v
}

// MustAdd is like Add but panics if computing returns an error.
func (x BigNumeric) MustAdd(y BigNumeric) BigNumeric {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSubtract is like Subtract but panics if computing returns an error.
func (x BigNumeric) MustSubtract(y BigNumeric) BigNumeric {
	z, err := x.Subtract(y)
	if err != nil {
		panic(fmt.Sprintf("MustSubtract(%v) failed: %v", y, err))
	}
	return z
}

// MustMultiply is like Multiply but panics if computing returns an error.
func (x BigNumeric) MustMultiply(y BigNumeric) BigNumeric {
	z, err := x.Multiply(y)
	if err != nil {
		panic(fmt.Sprintf("MustMultiply(%v) failed: %v", y, err))
	}
	return z
}

// MustDivide is like Divide but panics if computing returns an error.
func (x BigNumeric) MustDivide(y BigNumeric) BigNumeric {
	z, err := x.Divide(y)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%v) failed: %v", y, err))
	}
	return z
}

// MustIntegerDivide is like IntegerDivide but panics if computing returns an error.
func (x BigNumeric) MustIntegerDivide(y BigNumeric) BigNumeric {
	z, err := x.IntegerDivide(y)
	if err != nil {
		panic(fmt.Sprintf("MustIntegerDivide(%v) failed: %v", y, err))
	}
	return z
}

// MustMod is like Mod but panics if computing returns an error.
func (x BigNumeric) MustMod(y BigNumeric) BigNumeric {
	z, err := x.Mod(y)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", y, err))
	}
	return z
}

// MustRound is like Round but panics if computing returns an error.
func (x BigNumeric) MustRound(digits int32, awayFromZero bool) BigNumeric {
	z, err := x.Round(digits, awayFromZero)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v) failed: %v", digits, err))
	}
	return z
}

// MustPower is like Power but panics if computing returns an error.
func (x BigNumeric) MustPower(exp BigNumeric) BigNumeric {
	z, err := x.Power(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPower(%v) failed: %v", exp, err))
	}
	return z
}

// MustBigNumericFromFloat64 is like BigNumericFromFloat64 but panics on error.
func MustBigNumericFromFloat64(f float64) BigNumeric {
	v, err := BigNumericFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustBigNumericFromFloat64(%v) failed: %v", f, err))
	}
	return v
}
