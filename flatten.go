package outline

import "fmt"

// Flattener interprets path commands and flattens them into polylines.
// A Flattener holds only configuration and may be reused; each call to
// Flatten starts from a fresh cursor at the origin.
type Flattener struct {
	opts []Option
}

// NewFlattener returns a Flattener configured with opts.
func NewFlattener(opts ...Option) *Flattener {
	return &Flattener{opts: opts}
}

// With returns a copy of f with opts appended. Later options win.
func (f *Flattener) With(opts ...Option) *Flattener {
	all := make([]Option, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	return &Flattener{opts: append(all, opts...)}
}

// Flatten is shorthand for NewFlattener(opts...).Flatten(commands).
func Flatten(commands []Command, opts ...Option) (*Polyline, error) {
	return NewFlattener(opts...).Flatten(commands)
}

// Flatten walks commands in order and returns the emitted vertices. The
// first malformed command aborts the whole path with a *CommandError; no
// partial polyline is returned.
func (f *Flattener) Flatten(commands []Command) (*Polyline, error) {
	pen := NewPen(f.opts...)
	for i, cmd := range commands {
		if err := interpret(pen, cmd); err != nil {
			return nil, &CommandError{Index: i, Kind: cmd.Kind, Err: err}
		}
	}
	pl := pen.Polyline()
	Logger().Debug("flattened path",
		"commands", len(commands),
		"segments", len(pl.Segments),
		"vertices", pl.Len())
	return pl, nil
}

func interpret(pen *Pen, cmd Command) error {
	if cmd.Kind == ClosePath {
		if len(cmd.Params) != 0 {
			return fmt.Errorf("%w: ClosePath takes no parameters, got %d", ErrArity, len(cmd.Params))
		}
		pen.Close()
		return nil
	}

	size := cmd.Kind.tupleSize()
	if size == 0 {
		return ErrUnsupportedCommand
	}
	if len(cmd.Params) == 0 || len(cmd.Params)%size != 0 {
		return fmt.Errorf("%w: %s needs a multiple of %d, got %d", ErrArity, cmd.Kind, size, len(cmd.Params))
	}

	rel := cmd.Position == Relative
	for i, tuple := range chunks(cmd.Params, size) {
		// The origin for relative values is the cursor at the start of
		// each repetition.
		origin := pen.Position()
		resolve := func(x, y float64) Point {
			if rel {
				return Point{origin.X + x, origin.Y + y}
			}
			return Point{x, y}
		}

		var err error
		switch cmd.Kind {
		case MoveTo:
			// Pairs after the first are implicit line-tos.
			if i == 0 {
				pen.MoveTo(resolve(tuple[0], tuple[1]))
			} else {
				pen.LineTo(resolve(tuple[0], tuple[1]))
			}
		case LineTo:
			pen.LineTo(resolve(tuple[0], tuple[1]))
		case HorizontalLineTo:
			x := tuple[0]
			if rel {
				x += origin.X
			}
			pen.LineTo(Point{x, origin.Y})
		case VerticalLineTo:
			y := tuple[0]
			if rel {
				y += origin.Y
			}
			pen.LineTo(Point{origin.X, y})
		case CurveTo:
			err = pen.CubeTo(
				resolve(tuple[0], tuple[1]),
				resolve(tuple[2], tuple[3]),
				resolve(tuple[4], tuple[5]))
		case SmoothCurveTo:
			err = pen.SmoothCubeTo(
				resolve(tuple[0], tuple[1]),
				resolve(tuple[2], tuple[3]))
		case QuadTo:
			err = pen.QuadTo(
				resolve(tuple[0], tuple[1]),
				resolve(tuple[2], tuple[3]))
		case SmoothQuadTo:
			err = pen.SmoothQuadTo(resolve(tuple[0], tuple[1]))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
