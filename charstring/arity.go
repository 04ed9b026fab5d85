package charstring

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when an operator is given an operand count
	// outside its accepted classes.
	ErrArity = errors.New("charstring: wrong number of operands")

	// ErrUnknownOperator is returned for operators the interpreter does
	// not implement.
	ErrUnknownOperator = errors.New("charstring: unknown operator")
)

// arityClass accepts n operands when min <= n <= max and n%mod is one of
// rems. A zero max is unbounded.
type arityClass struct {
	min  int
	max  int
	mod  int
	rems []int
}

func (c arityClass) accepts(n int) bool {
	if n < c.min || (c.max > 0 && n > c.max) {
		return false
	}
	if c.mod == 0 {
		return n == c.min
	}
	for _, r := range c.rems {
		if n%c.mod == r {
			return true
		}
	}
	return false
}

func exactly(n int) arityClass { return arityClass{min: n} }

var arities = map[Operator]arityClass{
	RMoveTo: exactly(2),
	HMoveTo: exactly(1),
	VMoveTo: exactly(1),

	RLineTo: {min: 2, mod: 2, rems: []int{0}},
	HLineTo: {min: 1, mod: 1, rems: []int{0}},
	VLineTo: {min: 1, mod: 1, rems: []int{0}},

	RRCurveTo: {min: 6, mod: 6, rems: []int{0}},
	HHCurveTo: {min: 4, mod: 4, rems: []int{0, 1}},
	VVCurveTo: {min: 4, mod: 4, rems: []int{0, 1}},
	// 8k, 8k+1, 8k+4 and 8k+5 operands: alternating curves, the last
	// one optionally taking a trailing short axis value.
	HVCurveTo: {min: 4, mod: 8, rems: []int{0, 1, 4, 5}},
	VHCurveTo: {min: 4, mod: 8, rems: []int{0, 1, 4, 5}},

	RCurveLine: {min: 8, mod: 6, rems: []int{2}},
	RLineCurve: {min: 8, mod: 2, rems: []int{0}},

	Flex:   exactly(13),
	HFlex:  exactly(7),
	HFlex1: exactly(9),
	Flex1:  exactly(11),

	HStem:    {min: 2, mod: 2, rems: []int{0}},
	VStem:    {min: 2, mod: 2, rems: []int{0}},
	HStemHM:  {min: 2, mod: 2, rems: []int{0}},
	VStemHM:  {min: 2, mod: 2, rems: []int{0}},
	HintMask: {min: 0, mod: 2, rems: []int{0}},
	CntrMask: {min: 0, mod: 2, rems: []int{0}},

	// 4 operands are the seac accent form: adx ady bchar achar.
	EndChar: {min: 0, max: 4, mod: 4, rems: []int{0}},
}

// Validate checks the operand count of op against the operator's
// accepted arity classes. hvcurveto and vhcurveto need at least 4
// operands; 0 or 1 fail with ErrArity. endchar takes 0 or 4.
func Validate(op Op) error {
	class, ok := arities[op.Operator]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperator, op.Operator)
	}
	if !class.accepts(len(op.Operands)) {
		return fmt.Errorf("%w: %s with %d operands", ErrArity, op.Operator, len(op.Operands))
	}
	return nil
}
