package main

import (
	"fmt"

	"github.com/sqlnumeric/decimal"
)

// value wraps either a decimal.Numeric or a decimal.BigNumeric, chosen by
// the --big flag, behind one set of operations so the subcommands don't need
// to branch on useBig themselves.
type value struct {
	big bool
	n   decimal.Numeric
	b   decimal.BigNumeric
}

func parseValue(s string) (value, error) {
	if useBig {
		v, err := decimal.ParseBigNumeric(s)
		return value{big: true, b: v}, err
	}
	v, err := decimal.ParseNumeric(s)
	return value{n: v}, err
}

func (v value) String() string {
	if v.big {
		return v.b.String()
	}
	return v.n.String()
}

func (v value) arith(op string, rhs value) (value, error) {
	var err error
	out := value{big: v.big}
	switch {
	case v.big:
		switch op {
		case "+":
			out.b, err = v.b.Add(rhs.b)
		case "-":
			out.b, err = v.b.Subtract(rhs.b)
		case "*":
			out.b, err = v.b.Multiply(rhs.b)
		case "/":
			out.b, err = v.b.Divide(rhs.b)
		case "div":
			out.b, err = v.b.IntegerDivide(rhs.b)
		case "mod":
			out.b, err = v.b.Mod(rhs.b)
		case "pow":
			out.b, err = v.b.Power(rhs.b)
		default:
			return value{}, fmt.Errorf("unknown operator %q", op)
		}
	default:
		switch op {
		case "+":
			out.n, err = v.n.Add(rhs.n)
		case "-":
			out.n, err = v.n.Subtract(rhs.n)
		case "*":
			out.n, err = v.n.Multiply(rhs.n)
		case "/":
			out.n, err = v.n.Divide(rhs.n)
		case "div":
			out.n, err = v.n.IntegerDivide(rhs.n)
		case "mod":
			out.n, err = v.n.Mod(rhs.n)
		case "pow":
			out.n, err = v.n.Power(rhs.n)
		default:
			return value{}, fmt.Errorf("unknown operator %q", op)
		}
	}
	return out, err
}

func (v value) round(digits int32, awayFromZero bool) (value, error) {
	var err error
	out := value{big: v.big}
	if v.big {
		out.b, err = v.b.Round(digits, awayFromZero)
	} else {
		out.n, err = v.n.Round(digits, awayFromZero)
	}
	return out, err
}

func (v value) floor() (value, error) {
	var err error
	out := value{big: v.big}
	if v.big {
		out.b, err = v.b.Floor()
	} else {
		out.n, err = v.n.Floor()
	}
	return out, err
}

func (v value) ceil() (value, error) {
	var err error
	out := value{big: v.big}
	if v.big {
		out.b, err = v.b.Ceil()
	} else {
		out.n, err = v.n.Ceil()
	}
	return out, err
}
