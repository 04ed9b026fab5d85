// Package render wraps flattened vertices into renderable objects. The
// graphics backend is an external collaborator reached through the
// Device and Frame interfaces: this package converts and validates
// vertices, owns buffer handles and issues draw calls, but never uploads
// or compiles anything itself.
package render

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/vasalvit/outline"
)

var (
	// ErrResource is returned when the device fails to create or release
	// a buffer.
	ErrResource = errors.New("render: resource failure")

	// ErrNonFinite is returned for vertices that are NaN or infinite once
	// converted to float32.
	ErrNonFinite = errors.New("render: non-finite vertex")

	// ErrTooFewVertices is returned when a topology cannot draw anything
	// from the given vertex count.
	ErrTooFewVertices = errors.New("render: too few vertices")

	// ErrClosed is returned when rendering an object after Close.
	ErrClosed = errors.New("render: object is closed")
)

// Topology is the primitive assembly used to draw a vertex buffer.
type Topology int

const (
	// LineStrip connects consecutive vertices with lines (outlines).
	LineStrip Topology = iota
	// TriangleStrip forms a triangle from every three consecutive
	// vertices (fills).
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case LineStrip:
		return "LineStrip"
	case TriangleStrip:
		return "TriangleStrip"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

func (t Topology) minVertices() int {
	if t == TriangleStrip {
		return 3
	}
	return 2
}

// Vertex is the GPU vertex layout: one vec2 "position" attribute.
type Vertex struct {
	Position [2]float32
}

// Vertices converts points to the GPU layout.
func Vertices(points []outline.Point) ([]Vertex, error) {
	out := make([]Vertex, len(points))
	for i, p := range points {
		x, y := float32(p.X), float32(p.Y)
		if !finite(x) || !finite(y) {
			return nil, fmt.Errorf("%w: vertex %d is (%g, %g)", ErrNonFinite, i, p.X, p.Y)
		}
		out[i].Position = [2]float32{x, y}
	}
	return out, nil
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// Buffer is a vertex buffer handle owned by the object that created it.
type Buffer interface {
	Len() int
	Release() error
}

// Device creates vertex buffers and frames.
type Device interface {
	NewVertexBuffer(vertices []Vertex) (Buffer, error)
	BeginFrame(program *Program) (Frame, error)
}

// Frame is one frame being drawn. The program, uniforms and draw
// parameters it was begun with apply to every Draw.
type Frame interface {
	Draw(buf Buffer, topology Topology) error
	Finish() error
}

// Object is anything that can draw itself on a frame.
type Object interface {
	Render(frame Frame) error
}
