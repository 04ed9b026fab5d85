package outline

// CommandKind tells the interpreter which drawing operation a Command
// performs.
type CommandKind int

// These are the path drawing commands understood by the Flattener.
const (
	MoveTo CommandKind = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ClosePath
)

var commandNames = [...]string{
	MoveTo:           "MoveTo",
	LineTo:           "LineTo",
	HorizontalLineTo: "HorizontalLineTo",
	VerticalLineTo:   "VerticalLineTo",
	CurveTo:          "CurveTo",
	SmoothCurveTo:    "SmoothCurveTo",
	QuadTo:           "QuadTo",
	SmoothQuadTo:     "SmoothQuadTo",
	ClosePath:        "ClosePath",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "CommandKind(?)"
}

// tupleSize is the number of parameters consumed per repetition of the
// command. ClosePath takes none.
func (k CommandKind) tupleSize() int {
	switch k {
	case MoveTo, LineTo, SmoothQuadTo:
		return 2
	case HorizontalLineTo, VerticalLineTo:
		return 1
	case CurveTo:
		return 6
	case SmoothCurveTo, QuadTo:
		return 4
	}
	return 0
}

// Positioning says whether command parameters are absolute coordinates or
// offsets from the current cursor.
type Positioning int

const (
	Absolute Positioning = iota
	Relative
)

func (p Positioning) String() string {
	if p == Relative {
		return "Relative"
	}
	return "Absolute"
}

// Command is one path drawing command. Params holds one or more
// repetitions of the command's parameter tuple, e.g. CurveTo carries
// x1 y1 x2 y2 x y per repetition.
type Command struct {
	Kind     CommandKind
	Position Positioning
	Params   []float64
}

// Abs builds an absolute command.
func Abs(kind CommandKind, params ...float64) Command {
	return Command{Kind: kind, Position: Absolute, Params: params}
}

// Rel builds a relative command.
func Rel(kind CommandKind, params ...float64) Command {
	return Command{Kind: kind, Position: Relative, Params: params}
}

// chunks groups params into consecutive slices of size n. Trailing values
// that do not fill a chunk are reported by the caller through ErrArity,
// never dropped silently.
func chunks(params []float64, n int) [][]float64 {
	out := make([][]float64, 0, len(params)/n)
	for len(params) >= n {
		out = append(out, params[:n:n])
		params = params[n:]
	}
	return out
}
