package outline

// Cursor is the running interpreter state: the current position, the
// start of the current subpath and the last explicit control points that
// smooth curves reflect.
type Cursor struct {
	Position     Point
	SubpathStart Point

	// Control is the second control point of the last cubic segment.
	Control    Point
	HasControl bool

	// QuadControl is the control point of the last quadratic segment.
	QuadControl    Point
	HasQuadControl bool
}

func (c *Cursor) forgetControls() {
	c.HasControl = false
	c.HasQuadControl = false
}

// A Segment of a path that contains a list of connected points, its
// stroke Width and if the segment forms a closed loop.
type Segment struct {
	Width  float64
	Closed bool
	Points []Point
}

func (s *Segment) addPoint(p Point) {
	s.Points = append(s.Points, p)
}

// Pen emits flattened vertices for drawing operations given in absolute
// coordinates. It is the state machine shared by the path and charstring
// interpreters. The zero value is not usable; create one with NewPen.
type Pen struct {
	opts     options
	cursor   Cursor
	segments []Segment
	current  *Segment
	// pending is set after a move or close: the next drawing operation
	// first pushes the cursor as the anchor of a new segment.
	pending bool
}

// NewPen returns a pen positioned at the origin.
func NewPen(opts ...Option) *Pen {
	return &Pen{opts: buildOptions(opts), pending: true}
}

// Cursor returns a copy of the current interpreter state.
func (p *Pen) Cursor() Cursor {
	return p.cursor
}

// Position returns the current cursor position.
func (p *Pen) Position() Point {
	return p.cursor.Position
}

func (p *Pen) emit(pt Point) {
	p.current.addPoint(pt.apply(p.opts.transform))
}

// anchor starts a new segment at the cursor if a move or close happened
// since the last drawing operation.
func (p *Pen) anchor() {
	if !p.pending {
		return
	}
	p.finishSegment()
	p.segments = append(p.segments, Segment{})
	p.current = &p.segments[len(p.segments)-1]
	p.emit(p.cursor.Position)
	p.pending = false
}

func (p *Pen) finishSegment() {
	p.current = nil
}

// MoveTo starts a new subpath at pt without emitting anything.
func (p *Pen) MoveTo(pt Point) {
	p.cursor.Position = pt
	p.cursor.SubpathStart = pt
	p.cursor.forgetControls()
	p.pending = true
}

// LineTo emits pt and moves the cursor there.
func (p *Pen) LineTo(pt Point) {
	p.anchor()
	p.emit(pt)
	p.cursor.Position = pt
	p.cursor.forgetControls()
}

// CubeTo flattens the cubic curve from the cursor through c1 and c2 to pt.
// c2 is remembered for a following smooth curve.
func (p *Pen) CubeTo(c1, c2, pt Point) error {
	points, err := Cubic(p.cursor.Position, c1, c2, pt, p.opts.samples)
	if err != nil {
		return err
	}
	p.anchor()
	// The first sample is the cursor, already emitted.
	for _, v := range points[1:] {
		p.emit(v)
	}
	p.cursor.Position = pt
	p.cursor.forgetControls()
	p.cursor.Control = c2
	p.cursor.HasControl = true
	return nil
}

// SmoothCubeTo flattens a cubic curve whose first control point is the
// reflection of the previous cubic control point about the cursor.
func (p *Pen) SmoothCubeTo(c2, pt Point) error {
	if !p.cursor.HasControl {
		return ErrNoPreviousControl
	}
	return p.CubeTo(p.cursor.Control.Reflect(p.cursor.Position), c2, pt)
}

// QuadTo flattens the quadratic curve from the cursor through c to pt.
func (p *Pen) QuadTo(c, pt Point) error {
	points, err := Quadratic(p.cursor.Position, c, pt, p.opts.samples)
	if err != nil {
		return err
	}
	p.anchor()
	for _, v := range points[1:] {
		p.emit(v)
	}
	p.cursor.Position = pt
	p.cursor.forgetControls()
	p.cursor.QuadControl = c
	p.cursor.HasQuadControl = true
	return nil
}

// SmoothQuadTo flattens a quadratic curve whose control point is the
// reflection of the previous quadratic control point about the cursor.
func (p *Pen) SmoothQuadTo(pt Point) error {
	if !p.cursor.HasQuadControl {
		return ErrNoPreviousControl
	}
	return p.QuadTo(p.cursor.QuadControl.Reflect(p.cursor.Position), pt)
}

// Close ends the current subpath and returns the cursor to its start.
func (p *Pen) Close() {
	if p.current != nil {
		p.current.Closed = true
		if p.opts.closeMode == EmitClosingVertex && p.cursor.Position != p.cursor.SubpathStart {
			p.emit(p.cursor.SubpathStart)
		}
	}
	p.finishSegment()
	p.cursor.Position = p.cursor.SubpathStart
	p.cursor.forgetControls()
	p.pending = true
}

// Polyline returns everything emitted so far.
func (p *Pen) Polyline() *Polyline {
	segments := make([]Segment, len(p.segments))
	for i, s := range p.segments {
		segments[i] = Segment{
			Width:  s.Width,
			Closed: s.Closed,
			Points: append([]Point(nil), s.Points...),
		}
	}
	return &Polyline{Segments: segments}
}
