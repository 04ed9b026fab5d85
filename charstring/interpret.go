package charstring

import (
	"fmt"
	"math"

	"github.com/vasalvit/outline"
)

// OpError reports the operator at which interpretation stopped.
type OpError struct {
	Index    int
	Operator Operator
	Err      error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("op %d (%s): %v", e.Index, e.Operator, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Flatten interprets ops with a fresh pen and returns the flattened
// glyph. Any malformed operator aborts the whole glyph.
func Flatten(ops []Op, opts ...outline.Option) (*outline.Polyline, error) {
	pen := outline.NewPen(opts...)
	if err := Run(pen, ops); err != nil {
		return nil, err
	}
	pl := pen.Polyline()
	outline.Logger().Debug("charstring: flattened glyph",
		"ops", len(ops),
		"contours", len(pl.Segments),
		"vertices", pl.Len())
	return pl, nil
}

// Run interprets ops against pen. Every moveto and endchar closes the
// open contour, as Type 2 contours are implicitly closed. Hint operators
// are validated and skipped.
func Run(pen *outline.Pen, ops []Op) error {
	for i, op := range ops {
		if err := Validate(op); err != nil {
			return &OpError{Index: i, Operator: op.Operator, Err: err}
		}
		if err := execute(pen, op); err != nil {
			return &OpError{Index: i, Operator: op.Operator, Err: err}
		}
	}
	return nil
}

// rel returns the point d away from p.
func rel(p outline.Point, dx, dy float64) outline.Point {
	return outline.Point{X: p.X + dx, Y: p.Y + dy}
}

// curve draws a cubic whose control and end points are each given
// relative to the previous one.
func curve(pen *outline.Pen, dxa, dya, dxb, dyb, dxc, dyc float64) error {
	c1 := rel(pen.Position(), dxa, dya)
	c2 := rel(c1, dxb, dyb)
	return pen.CubeTo(c1, c2, rel(c2, dxc, dyc))
}

func moveTo(pen *outline.Pen, dx, dy float64) {
	to := rel(pen.Position(), dx, dy)
	pen.Close()
	pen.MoveTo(to)
}

func execute(pen *outline.Pen, op Op) error {
	if op.Operator.isHint() {
		return nil
	}
	a := op.Operands
	switch op.Operator {
	case RMoveTo:
		moveTo(pen, a[0], a[1])
	case HMoveTo:
		moveTo(pen, a[0], 0)
	case VMoveTo:
		moveTo(pen, 0, a[0])

	case RLineTo:
		for i := 0; i+2 <= len(a); i += 2 {
			pen.LineTo(rel(pen.Position(), a[i], a[i+1]))
		}

	case HLineTo, VLineTo:
		horizontal := op.Operator == HLineTo
		for _, d := range a {
			if horizontal {
				pen.LineTo(rel(pen.Position(), d, 0))
			} else {
				pen.LineTo(rel(pen.Position(), 0, d))
			}
			horizontal = !horizontal
		}

	case RRCurveTo:
		for i := 0; i+6 <= len(a); i += 6 {
			if err := curve(pen, a[i], a[i+1], a[i+2], a[i+3], a[i+4], a[i+5]); err != nil {
				return err
			}
		}

	case HHCurveTo:
		i, dy1 := 0, 0.0
		if len(a)%2 == 1 {
			dy1 = a[0]
			i++
		}
		for ; i+4 <= len(a); i += 4 {
			if err := curve(pen, a[i], dy1, a[i+1], a[i+2], a[i+3], 0); err != nil {
				return err
			}
			dy1 = 0
		}

	case VVCurveTo:
		i, dx1 := 0, 0.0
		if len(a)%2 == 1 {
			dx1 = a[0]
			i++
		}
		for ; i+4 <= len(a); i += 4 {
			if err := curve(pen, dx1, a[i], a[i+1], a[i+2], 0, a[i+3]); err != nil {
				return err
			}
			dx1 = 0
		}

	case HVCurveTo, VHCurveTo:
		return alternatingCurves(pen, a, op.Operator == HVCurveTo)

	case RCurveLine:
		i := 0
		for ; i+6 <= len(a)-2; i += 6 {
			if err := curve(pen, a[i], a[i+1], a[i+2], a[i+3], a[i+4], a[i+5]); err != nil {
				return err
			}
		}
		pen.LineTo(rel(pen.Position(), a[i], a[i+1]))

	case RLineCurve:
		i := 0
		for ; i+2 <= len(a)-6; i += 2 {
			pen.LineTo(rel(pen.Position(), a[i], a[i+1]))
		}
		return curve(pen, a[i], a[i+1], a[i+2], a[i+3], a[i+4], a[i+5])

	case Flex:
		if err := curve(pen, a[0], a[1], a[2], a[3], a[4], a[5]); err != nil {
			return err
		}
		return curve(pen, a[6], a[7], a[8], a[9], a[10], a[11])

	case HFlex:
		// dx1 dx2 dy2 dx3 dx4 dx5 dx6: the second curve returns to the
		// starting height.
		if err := curve(pen, a[0], 0, a[1], a[2], a[3], 0); err != nil {
			return err
		}
		return curve(pen, a[4], 0, a[5], -a[2], a[6], 0)

	case HFlex1:
		// dx1 dy1 dx2 dy2 dx3 dx4 dx5 dy5 dx6
		if err := curve(pen, a[0], a[1], a[2], a[3], a[4], 0); err != nil {
			return err
		}
		return curve(pen, a[5], 0, a[6], a[7], a[8], -(a[1] + a[3] + a[7]))

	case Flex1:
		// dx1 dy1 ... dx5 dy5 d6: d6 runs along the dominant axis and the
		// other axis returns to the starting value.
		var dx, dy float64
		for i := 0; i < 10; i += 2 {
			dx += a[i]
			dy += a[i+1]
		}
		dx6, dy6 := a[10], -dy
		if math.Abs(dx) <= math.Abs(dy) {
			dx6, dy6 = -dx, a[10]
		}
		if err := curve(pen, a[0], a[1], a[2], a[3], a[4], a[5]); err != nil {
			return err
		}
		return curve(pen, a[6], a[7], a[8], a[9], dx6, dy6)

	case EndChar:
		// Accent components of the seac form are not composed.
		pen.Close()

	default:
		return fmt.Errorf("%w: %s", ErrUnknownOperator, op.Operator)
	}
	return nil
}

// alternatingCurves draws hvcurveto (horizontal first) and vhcurveto
// chains. Each curve starts tangent to one axis and ends tangent to the
// other; the final curve may carry one extra operand for the otherwise
// zero end coordinate.
func alternatingCurves(pen *outline.Pen, a []float64, horizontal bool) error {
	for i := 0; i+4 <= len(a); i += 4 {
		var extra float64
		if len(a)-i == 5 {
			extra = a[i+4]
		}
		var err error
		if horizontal {
			err = curve(pen, a[i], 0, a[i+1], a[i+2], extra, a[i+3])
		} else {
			err = curve(pen, 0, a[i], a[i+1], a[i+2], a[i+3], extra)
		}
		if err != nil {
			return err
		}
		horizontal = !horizontal
	}
	return nil
}
