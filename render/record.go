package render

import (
	"errors"
	"sync"
)

// DrawCall is one recorded Draw.
type DrawCall struct {
	Frame    int
	Topology Topology
	Vertices []Vertex
	Program  *Program
}

// Recorder is a headless Device that keeps every draw call in memory.
// It backs the command line tool and is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	live   int
	frames int
	calls  []DrawCall
}

var errReleased = errors.New("buffer already released")

type recordedBuffer struct {
	rec      *Recorder
	vertices []Vertex
	released bool
}

func (b *recordedBuffer) Len() int { return len(b.vertices) }

func (b *recordedBuffer) Release() error {
	b.rec.mu.Lock()
	defer b.rec.mu.Unlock()
	if b.released {
		return errReleased
	}
	b.released = true
	b.rec.live--
	return nil
}

// NewVertexBuffer copies vertices into a new buffer.
func (r *Recorder) NewVertexBuffer(vertices []Vertex) (Buffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live++
	return &recordedBuffer{rec: r, vertices: append([]Vertex(nil), vertices...)}, nil
}

// BeginFrame starts a new frame drawn with program.
func (r *Recorder) BeginFrame(program *Program) (Frame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++
	return &recordedFrame{rec: r, index: r.frames - 1, program: program}, nil
}

// Calls returns the draw calls recorded so far.
func (r *Recorder) Calls() []DrawCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DrawCall(nil), r.calls...)
}

// Live returns the number of buffers created and not yet released.
func (r *Recorder) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

type recordedFrame struct {
	rec      *Recorder
	index    int
	program  *Program
	finished bool
}

func (f *recordedFrame) Draw(buf Buffer, topology Topology) error {
	b, ok := buf.(*recordedBuffer)
	if !ok || b.rec != f.rec {
		return errors.New("render: buffer belongs to another device")
	}
	f.rec.mu.Lock()
	defer f.rec.mu.Unlock()
	if f.finished {
		return errors.New("render: draw on a finished frame")
	}
	if b.released {
		return errReleased
	}
	f.rec.calls = append(f.rec.calls, DrawCall{
		Frame:    f.index,
		Topology: topology,
		Vertices: b.vertices,
		Program:  f.program,
	})
	return nil
}

func (f *recordedFrame) Finish() error {
	f.rec.mu.Lock()
	defer f.rec.mu.Unlock()
	f.finished = true
	return nil
}
