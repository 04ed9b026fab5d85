package charstring

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	maxStack     = 48
	maxCallDepth = 10
	maxOps       = 200000
)

var (
	// ErrStackOverflow is returned when more than 48 operands are pushed.
	ErrStackOverflow = errors.New("charstring: argument stack overflow")

	// ErrSubroutine is returned for calls to missing subroutines and for
	// nesting deeper than the Type 2 limit.
	ErrSubroutine = errors.New("charstring: invalid subroutine call")

	// ErrTruncated is returned when an operand or hint mask runs past the
	// end of the program.
	ErrTruncated = errors.New("charstring: truncated program")
)

// Program is a decoded charstring: the operators with their operands,
// subroutines inlined, and the advance width if the program carried one.
type Program struct {
	Ops      []Op
	Width    float64
	HasWidth bool
}

// Subrs is a subroutine index (global or local).
type Subrs [][]byte

// bias is the number added to a subroutine operand to get the index.
func (s Subrs) bias() int {
	switch n := len(s); {
	case n < 1240:
		return 107
	case n < 33900:
		return 1131
	}
	return 32768
}

type decoder struct {
	global, local Subrs

	prog  Program
	stack []float64

	widthChecked bool
	hstems       int
	vstems       int
	depth        int
	ops          int
	done         bool
}

// Decode decodes a Type 2 charstring. Calls to global and local
// subroutines are followed and their operators inlined; hint mask bytes
// are skipped; the optional leading width operand is split off into
// Program.Width so that every Op carries exactly the operands of its
// operator.
func Decode(charstring []byte, global, local Subrs) (*Program, error) {
	d := &decoder{global: global, local: local, stack: make([]float64, 0, maxStack)}
	if err := d.run(charstring); err != nil {
		return nil, err
	}
	if len(d.stack) != 0 {
		return nil, fmt.Errorf("%w: %d operands left without an operator", ErrTruncated, len(d.stack))
	}
	return &d.prog, nil
}

func (d *decoder) push(v float64) error {
	if len(d.stack) >= maxStack {
		return ErrStackOverflow
	}
	d.stack = append(d.stack, v)
	return nil
}

func (d *decoder) run(data []byte) error {
	for pos := 0; pos < len(data) && !d.done; {
		d.ops++
		if d.ops > maxOps {
			return fmt.Errorf("charstring: more than %d operations", maxOps)
		}

		b := data[pos]
		if b >= 32 || b == 28 {
			v, n, err := decodeOperand(data[pos:])
			if err != nil {
				return err
			}
			if err := d.push(v); err != nil {
				return err
			}
			pos += n
			continue
		}

		op := Operator(b)
		pos++
		if b == 12 {
			if pos >= len(data) {
				return ErrTruncated
			}
			op = Operator(12<<8 | int(data[pos]))
			pos++
		}

		switch op {
		case CallSubr, CallGSubr:
			if err := d.call(op); err != nil {
				return err
			}
		case Return:
			return nil
		default:
			skip, err := d.operator(op)
			if err != nil {
				return err
			}
			if pos+skip > len(data) {
				return ErrTruncated
			}
			pos += skip
		}
	}
	return nil
}

func (d *decoder) call(op Operator) error {
	if len(d.stack) == 0 {
		return fmt.Errorf("%w: %s without an index", ErrSubroutine, op)
	}
	subrs := d.local
	if op == CallGSubr {
		subrs = d.global
	}
	n := len(d.stack) - 1
	index := int(d.stack[n]) + subrs.bias()
	d.stack = d.stack[:n]
	if index < 0 || index >= len(subrs) {
		return fmt.Errorf("%w: %s index %d out of %d", ErrSubroutine, op, index, len(subrs))
	}
	if d.depth >= maxCallDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrSubroutine, maxCallDepth)
	}
	d.depth++
	err := d.run(subrs[index])
	d.depth--
	return err
}

// checkWidth splits off the width operand that may precede the first
// stack-clearing operator.
func (d *decoder) checkWidth(op Operator) {
	if d.widthChecked {
		return
	}
	var hasWidth bool
	switch op {
	case HStem, HStemHM, VStem, VStemHM, HintMask, CntrMask, EndChar:
		hasWidth = len(d.stack)%2 == 1
	case HMoveTo, VMoveTo:
		hasWidth = len(d.stack) > 1
	case RMoveTo:
		hasWidth = len(d.stack) > 2
	default:
		return
	}
	d.widthChecked = true
	if hasWidth {
		d.prog.Width = d.stack[0]
		d.prog.HasWidth = true
		d.stack = d.stack[1:]
	}
}

// operator records op with the current stack and returns the number of
// hint mask bytes that follow it.
func (d *decoder) operator(op Operator) (int, error) {
	if _, ok := arities[op]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
	d.checkWidth(op)
	operands := append([]float64(nil), d.stack...)
	d.stack = d.stack[:0]
	d.prog.Ops = append(d.prog.Ops, Op{Operator: op, Operands: operands})

	skip := 0
	switch op {
	case HStem, HStemHM:
		d.hstems += len(operands) / 2
	case VStem, VStemHM:
		d.vstems += len(operands) / 2
	case HintMask, CntrMask:
		// Operands here are an implicit vstem.
		d.vstems += len(operands) / 2
		skip = (d.hstems + d.vstems + 7) / 8
	case EndChar:
		d.done = true
	}
	return skip, nil
}

// decodeOperand decodes the number starting at data[0] and returns it
// with the number of bytes consumed.
func decodeOperand(data []byte) (float64, int, error) {
	b := data[0]
	switch {
	case b == 28:
		if len(data) < 3 {
			return 0, 0, ErrTruncated
		}
		return float64(int16(binary.BigEndian.Uint16(data[1:]))), 3, nil
	case b <= 246:
		return float64(int(b) - 139), 1, nil
	case b <= 250:
		if len(data) < 2 {
			return 0, 0, ErrTruncated
		}
		return float64((int(b)-247)*256 + int(data[1]) + 108), 2, nil
	case b <= 254:
		if len(data) < 2 {
			return 0, 0, ErrTruncated
		}
		return float64(-(int(b)-251)*256 - int(data[1]) - 108), 2, nil
	default:
		// 255: 16.16 fixed point
		if len(data) < 5 {
			return 0, 0, ErrTruncated
		}
		return float64(int32(binary.BigEndian.Uint32(data[1:]))) / 65536, 5, nil
	}
}
