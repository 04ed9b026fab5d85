// Package charstring interprets PostScript Type 2 charstrings (the glyph
// programs of CFF-flavored OpenType fonts) and flattens them into
// polylines with an outline.Pen.
package charstring

import "fmt"

// Operator is a Type 2 charstring operator. One-byte operators use their
// byte value; two-byte operators are 12<<8 | second byte.
type Operator int

// These are the Type 2 operators. CallSubr, CallGSubr and Return only
// appear in encoded programs; Decode resolves them away.
const (
	HStem      Operator = 1
	VStem      Operator = 3
	VMoveTo    Operator = 4
	RLineTo    Operator = 5
	HLineTo    Operator = 6
	VLineTo    Operator = 7
	RRCurveTo  Operator = 8
	CallSubr   Operator = 10
	Return     Operator = 11
	EndChar    Operator = 14
	HStemHM    Operator = 18
	HintMask   Operator = 19
	CntrMask   Operator = 20
	RMoveTo    Operator = 21
	HMoveTo    Operator = 22
	VStemHM    Operator = 23
	RCurveLine Operator = 24
	RLineCurve Operator = 25
	VVCurveTo  Operator = 26
	HHCurveTo  Operator = 27
	CallGSubr  Operator = 29
	VHCurveTo  Operator = 30
	HVCurveTo  Operator = 31

	HFlex  Operator = 12<<8 | 34
	Flex   Operator = 12<<8 | 35
	HFlex1 Operator = 12<<8 | 36
	Flex1  Operator = 12<<8 | 37
)

var operatorNames = map[Operator]string{
	HStem:      "hstem",
	VStem:      "vstem",
	VMoveTo:    "vmoveto",
	RLineTo:    "rlineto",
	HLineTo:    "hlineto",
	VLineTo:    "vlineto",
	RRCurveTo:  "rrcurveto",
	CallSubr:   "callsubr",
	Return:     "return",
	EndChar:    "endchar",
	HStemHM:    "hstemhm",
	HintMask:   "hintmask",
	CntrMask:   "cntrmask",
	RMoveTo:    "rmoveto",
	HMoveTo:    "hmoveto",
	VStemHM:    "vstemhm",
	RCurveLine: "rcurveline",
	RLineCurve: "rlinecurve",
	VVCurveTo:  "vvcurveto",
	HHCurveTo:  "hhcurveto",
	CallGSubr:  "callgsubr",
	VHCurveTo:  "vhcurveto",
	HVCurveTo:  "hvcurveto",
	HFlex:      "hflex",
	Flex:       "flex",
	HFlex1:     "hflex1",
	Flex1:      "flex1",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	if o >= 12<<8 {
		return fmt.Sprintf("op(12 %d)", int(o)&0xff)
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// isHint reports whether o only carries hinting information.
func (o Operator) isHint() bool {
	switch o {
	case HStem, VStem, HStemHM, VStemHM, HintMask, CntrMask:
		return true
	}
	return false
}

// Op is an operator with the operands that precede it on the stack.
type Op struct {
	Operator Operator
	Operands []float64
}

func (op Op) String() string {
	return fmt.Sprintf("%v %s", op.Operands, op.Operator)
}
