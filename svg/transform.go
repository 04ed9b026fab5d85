package svg

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// affine returns the transform mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f), the SVG matrix(a b c d e f).
func affine(a, b, c, d, e, f float64) mt.Transform {
	return mt.Transform{
		{a, c, e},
		{b, d, f},
		{0, 0, 1},
	}
}

// parseTransform parses an SVG transform list such as
// "translate(10,20) rotate(45)". The functions are composed left to right.
func parseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	src, err := lexable(s, "()", false)
	if err != nil {
		return t, fmt.Errorf("transform %q: %w", s, err)
	}
	l, stop := lex("transform", src)
	defer stop()
	for {
		skipSeparators(l)
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return t, nil
		case gl.ItemWord, gl.ItemLetter:
		default:
			return t, fmt.Errorf("transform %q: expected a function name, got %q", s, i.Value)
		}
		name := i.Value

		l.ConsumeWhiteSpace()
		if p := l.NextItem(); p.Type != gl.ItemParan || p.Value != "(" {
			return t, fmt.Errorf("transform %q: expected '(' after %s", s, name)
		}
		args, err := readNumbers(l)
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
		if p := l.NextItem(); p.Type != gl.ItemParan || p.Value != ")" {
			return t, fmt.Errorf("transform %q: expected ')' after %s arguments, got %q", s, name, p.Value)
		}

		next, err := transformFunction(name, args)
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
		t = mt.MultiplyTransforms(t, next)
	}
}

func transformFunction(name string, args []float64) (mt.Transform, error) {
	arity := func(counts ...int) error {
		for _, n := range counts {
			if len(args) == n {
				return nil
			}
		}
		return fmt.Errorf("%s takes %v arguments, got %d", name, counts, len(args))
	}

	switch name {
	case "matrix":
		if err := arity(6); err != nil {
			return mt.Identity(), err
		}
		return affine(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	case "translate":
		if err := arity(1, 2); err != nil {
			return mt.Identity(), err
		}
		ty := 0.0
		if len(args) == 2 {
			ty = args[1]
		}
		return affine(1, 0, 0, 1, args[0], ty), nil
	case "scale":
		if err := arity(1, 2); err != nil {
			return mt.Identity(), err
		}
		sy := args[0]
		if len(args) == 2 {
			sy = args[1]
		}
		return affine(args[0], 0, 0, sy, 0, 0), nil
	case "rotate":
		if err := arity(1, 3); err != nil {
			return mt.Identity(), err
		}
		rad := args[0] * math.Pi / 180
		sin, cos := math.Sincos(rad)
		r := affine(cos, sin, -sin, cos, 0, 0)
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			r = mt.MultiplyTransforms(affine(1, 0, 0, 1, cx, cy), r)
			r = mt.MultiplyTransforms(r, affine(1, 0, 0, 1, -cx, -cy))
		}
		return r, nil
	case "skewX":
		if err := arity(1); err != nil {
			return mt.Identity(), err
		}
		return affine(1, 0, math.Tan(args[0]*math.Pi/180), 1, 0, 0), nil
	case "skewY":
		if err := arity(1); err != nil {
			return mt.Identity(), err
		}
		return affine(1, math.Tan(args[0]*math.Pi/180), 0, 1, 0, 0), nil
	}
	return mt.Identity(), fmt.Errorf("unknown transform function %q", name)
}
