package outline

import mt "github.com/rustyoz/Mtransform"

// ClosePathMode tells the interpreter what a ClosePath command emits.
type ClosePathMode int

const (
	// LeaveOpen emits nothing on ClosePath; the segment is only flagged
	// as closed and it is up to the renderer to join the ends.
	LeaveOpen ClosePathMode = iota
	// EmitClosingVertex appends the subpath start point on ClosePath when
	// the cursor is not already there.
	EmitClosingVertex
)

// Option configures a Flattener or a Pen.
//
// Example:
//
//	f := outline.NewFlattener(outline.WithSamples(21), outline.WithClosePath(outline.EmitClosingVertex))
type Option func(*options)

type options struct {
	samples   int
	closeMode ClosePathMode
	transform *mt.Transform
}

func defaultOptions() options {
	return options{
		samples:   DefaultSamples,
		closeMode: LeaveOpen,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSamples sets the number of points evaluated per curve segment,
// endpoints included. Values below 2 make every curve fail with
// ErrSampleCount.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithClosePath selects the ClosePath behavior.
func WithClosePath(mode ClosePathMode) Option {
	return func(o *options) {
		o.closeMode = mode
	}
}

// WithTransform applies t to every emitted vertex. Cursor tracking and
// control point reflection happen in untransformed coordinates.
func WithTransform(t mt.Transform) Option {
	return func(o *options) {
		o.transform = &t
	}
}
