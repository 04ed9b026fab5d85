package outline

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
)

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Reflect returns the reflection of p about center, i.e. 2*center - p.
// This is the implicit first control point of a smooth curve.
func (p Point) Reflect(center Point) Point {
	return Point{2*center.X - p.X, 2*center.Y - p.Y}
}

func (p Point) apply(t *mt.Transform) Point {
	if t == nil {
		return p
	}
	x, y := t.Apply(p.X, p.Y)
	return Point{x, y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
