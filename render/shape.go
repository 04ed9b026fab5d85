package render

import (
	"fmt"

	"github.com/vasalvit/outline"
)

// Shape owns a vertex buffer and draws it with one topology. It is
// immutable after construction.
type Shape struct {
	buffer   Buffer
	topology Topology
	count    int
}

// NewShape validates and converts points before acquiring a buffer from
// device, so a failed construction holds no resources.
func NewShape(device Device, points []outline.Point, topology Topology) (*Shape, error) {
	if len(points) < topology.minVertices() {
		return nil, fmt.Errorf("%w: %s needs %d, got %d",
			ErrTooFewVertices, topology, topology.minVertices(), len(points))
	}
	vertices, err := Vertices(points)
	if err != nil {
		return nil, err
	}
	buf, err := device.NewVertexBuffer(vertices)
	if err != nil {
		return nil, fmt.Errorf("%w: new vertex buffer: %w", ErrResource, err)
	}
	outline.Logger().Debug("render: shape created",
		"topology", topology.String(),
		"vertices", len(vertices))
	return &Shape{buffer: buf, topology: topology, count: len(vertices)}, nil
}

// Len returns the number of vertices.
func (s *Shape) Len() int { return s.count }

// Topology returns the primitive topology of the shape.
func (s *Shape) Topology() Topology { return s.topology }

// Render issues exactly one draw call.
func (s *Shape) Render(frame Frame) error {
	if s.buffer == nil {
		return ErrClosed
	}
	return frame.Draw(s.buffer, s.topology)
}

// Close releases the buffer. Calling Close more than once is a no-op.
func (s *Shape) Close() error {
	if s.buffer == nil {
		return nil
	}
	buf := s.buffer
	s.buffer = nil
	if err := buf.Release(); err != nil {
		return fmt.Errorf("%w: release: %w", ErrResource, err)
	}
	return nil
}

// Outline builds one line strip per segment of pl. Closed segments get
// their first vertex repeated at the end so the strip draws the closing
// edge. Segments with a single vertex are skipped.
func Outline(device Device, pl *outline.Polyline) (*Scene, error) {
	scene := NewScene()
	for i, seg := range pl.Segments {
		points := seg.Points
		if seg.Closed && len(points) > 1 && points[0] != points[len(points)-1] {
			points = append(append([]outline.Point(nil), points...), points[0])
		}
		if len(points) < LineStrip.minVertices() {
			continue
		}
		shape, err := NewShape(device, points, LineStrip)
		if err != nil {
			if cerr := scene.Close(); cerr != nil {
				outline.Logger().Warn("render: cleanup failed", "err", cerr)
			}
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		scene.Append(shape)
	}
	return scene, nil
}
