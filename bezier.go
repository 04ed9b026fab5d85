package outline

import "fmt"

// DefaultSamples is the number of points evaluated along each curve
// segment unless WithSamples says otherwise.
const DefaultSamples = 11

type cubicBezier struct {
	controlpoints [4]Point
}

type quadraticBezier struct {
	controlpoints [3]Point
}

// interpolate evaluates the curve at n evenly spaced parameters
// t = i/(n-1) using the Bernstein basis.
func (cb cubicBezier) interpolate(n int) []Point {
	p0, p1, p2, p3 := cb.controlpoints[0], cb.controlpoints[1], cb.controlpoints[2], cb.controlpoints[3]
	points := make([]Point, n)
	for i := range points {
		t := parameter(i, n)
		t2 := t * t
		t3 := t2 * t
		ct := 1 - t
		ct2 := ct * ct
		ct3 := ct2 * ct

		points[i] = Point{
			X: ct3*p0.X + 3*ct2*t*p1.X + 3*ct*t2*p2.X + t3*p3.X,
			Y: ct3*p0.Y + 3*ct2*t*p1.Y + 3*ct*t2*p2.Y + t3*p3.Y,
		}
	}
	return points
}

func (qb quadraticBezier) interpolate(n int) []Point {
	p0, p1, p2 := qb.controlpoints[0], qb.controlpoints[1], qb.controlpoints[2]
	points := make([]Point, n)
	for i := range points {
		t := parameter(i, n)
		ct := 1 - t
		points[i] = Point{
			X: ct*ct*p0.X + 2*ct*t*p1.X + t*t*p2.X,
			Y: ct*ct*p0.Y + 2*ct*t*p1.Y + t*t*p2.Y,
		}
	}
	return points
}

func parameter(i, n int) float64 {
	return float64(i) / float64(n-1)
}

func checkSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrSampleCount, n)
	}
	return nil
}

// Linear samples the straight segment p0-p1 at n points.
func Linear(p0, p1 Point, n int) ([]Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	points := make([]Point, n)
	for i := range points {
		t := parameter(i, n)
		points[i] = Point{
			X: (1-t)*p0.X + t*p1.X,
			Y: (1-t)*p0.Y + t*p1.Y,
		}
	}
	return points, nil
}

// Quadratic samples the quadratic Bézier curve with start p0, control p1
// and end p2 at n points.
func Quadratic(p0, p1, p2 Point, n int) ([]Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	return quadraticBezier{[3]Point{p0, p1, p2}}.interpolate(n), nil
}

// Cubic samples the cubic Bézier curve with start p0, controls p1 and p2
// and end p3 at n points. The first point is p0 and the last is p3.
func Cubic(p0, p1, p2, p3 Point, n int) ([]Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	return cubicBezier{[4]Point{p0, p1, p2, p3}}.interpolate(n), nil
}
