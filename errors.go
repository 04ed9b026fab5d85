package outline

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleCount is returned when a curve is sampled at fewer than two points.
	ErrSampleCount = errors.New("outline: curve needs at least 2 samples")

	// ErrArity is returned when a command carries a parameter count its
	// kind cannot consume.
	ErrArity = errors.New("outline: wrong number of parameters")

	// ErrNoPreviousControl is returned for a smooth curve that has no
	// preceding control point to reflect.
	ErrNoPreviousControl = errors.New("outline: smooth curve without a previous control point")

	// ErrUnsupportedCommand is returned for a command kind the interpreter
	// does not know.
	ErrUnsupportedCommand = errors.New("outline: unsupported command")

	// ErrDegenerateBounds is returned when normalizing points whose
	// bounding box has zero width or height.
	ErrDegenerateBounds = errors.New("outline: degenerate bounding box")

	// ErrEmpty is returned when there is nothing to measure or normalize.
	ErrEmpty = errors.New("outline: no vertices")
)

// CommandError reports the command at which flattening stopped.
type CommandError struct {
	Index int
	Kind  CommandKind
	Err   error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
