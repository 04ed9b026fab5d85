package outline

import (
	"fmt"
	"math"
)

// Rect is an axis aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of r.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Bounds returns the bounding box of points, computed in one pass.
func Bounds(points []Point) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrEmpty
	}
	r := Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r, nil
}

// Normalize maps points into [-fraction, fraction] on both axes, each
// axis independently:
//
//	out = 2*fraction*(in-min)/(max-min) - fraction
//
// A bounding box with zero width or height returns ErrDegenerateBounds.
func Normalize(points []Point, fraction float64) ([]Point, error) {
	r, err := Bounds(points)
	if err != nil {
		return nil, err
	}
	return normalizeIn(points, r, fraction)
}

func normalizeIn(points []Point, r Rect, fraction float64) ([]Point, error) {
	dx, dy := r.Dx(), r.Dy()
	if dx == 0 || dy == 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrDegenerateBounds, dx, dy)
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: 2*fraction*(p.X-r.Min.X)/dx - fraction,
			Y: 2*fraction*(p.Y-r.Min.Y)/dy - fraction,
		}
	}
	return out, nil
}

// Polyline is the result of flattening a path or glyph: one Segment per
// subpath, in emission order.
type Polyline struct {
	Segments []Segment
}

// Len returns the total number of vertices.
func (pl *Polyline) Len() int {
	n := 0
	for _, s := range pl.Segments {
		n += len(s.Points)
	}
	return n
}

// Vertices returns the flat vertex buffer: all segment points
// concatenated in emission order.
func (pl *Polyline) Vertices() []Point {
	out := make([]Point, 0, pl.Len())
	for _, s := range pl.Segments {
		out = append(out, s.Points...)
	}
	return out
}

// Bounds returns the bounding box over all segments.
func (pl *Polyline) Bounds() (Rect, error) {
	return Bounds(pl.Vertices())
}

// Normalize returns a copy of pl with every segment mapped into
// [-fraction, fraction] against the common bounding box.
func (pl *Polyline) Normalize(fraction float64) (*Polyline, error) {
	r, err := pl.Bounds()
	if err != nil {
		return nil, err
	}
	out := &Polyline{Segments: make([]Segment, len(pl.Segments))}
	for i, s := range pl.Segments {
		points, err := normalizeIn(s.Points, r, fraction)
		if err != nil {
			return nil, err
		}
		out.Segments[i] = Segment{Width: s.Width, Closed: s.Closed, Points: points}
	}
	return out, nil
}
