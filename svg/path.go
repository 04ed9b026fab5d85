package svg

import (
	"errors"
	"fmt"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"

	"github.com/vasalvit/outline"
)

// presentation holds the presentation attributes shared by drawable
// elements. Values missing on an element are inherited from its group.
type presentation struct {
	Stroke      string  `xml:"stroke,attr"`
	StrokeWidth float64 `xml:"stroke-width,attr"`
	Fill        string  `xml:"fill,attr"`
}

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	Style           string `xml:"style,attr"`
	TransformString string `xml:"transform,attr"`
	presentation
}

// Commands parses the path description into outline commands.
func (p *Path) Commands() ([]outline.Command, error) {
	return ParsePathData(p.ID, p.D)
}

func (p *Path) flatten(f *outline.Flattener, parent mt.Transform, scale float64, out []Shape) ([]Shape, error) {
	cmds, err := p.Commands()
	if err != nil {
		return nil, err
	}
	return flattenElement(f, p.ID, cmds, p.Style, p.TransformString, p.presentation, parent, scale, out)
}

// flattenElement is the part shared by all drawable elements: resolve
// style and transform, flatten, and record the scaled stroke width on
// every segment.
func flattenElement(f *outline.Flattener, id string, cmds []outline.Command, style, transform string,
	attrs presentation, parent mt.Transform, scale float64, out []Shape) ([]Shape, error) {

	attrs = attrs.withStyle(splitStyle(style))
	t := parent
	if transform != "" {
		et, err := parseTransform(transform)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", id, err)
		}
		t = mt.MultiplyTransforms(parent, et)
	}

	pl, err := f.With(outline.WithTransform(t)).Flatten(cmds)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", id, err)
	}

	width := attrs.StrokeWidth
	if width == 0 {
		width = 1
	}
	width *= scale
	for i := range pl.Segments {
		pl.Segments[i].Width = width
	}
	return append(out, Shape{
		ID:          id,
		Stroke:      attrs.Stroke,
		Fill:        attrs.Fill,
		StrokeWidth: width,
		Polyline:    pl,
	}), nil
}

type pathDescriptionParser struct {
	lex      *gl.Lexer
	commands []outline.Command
}

// ParsePathData parses an SVG path description (the d attribute) into
// commands. name is only used in error messages. Elliptical arcs are not
// supported and yield outline.ErrUnsupportedCommand. Any character outside
// the path grammar is an error; a prefix of the path is never returned.
func ParsePathData(name, d string) ([]outline.Command, error) {
	src, err := lexable(d, "", true)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", name, err)
	}
	l, stop := lex(name, src)
	defer stop()
	pdp := &pathDescriptionParser{lex: l}
	for {
		i := pdp.lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			return nil, fmt.Errorf("path %q: %s", name, i.Value)
		case gl.ItemEOS:
			return pdp.commands, nil
		case gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return nil, fmt.Errorf("path %q: %w", name, err)
			}
		case gl.ItemNumber:
			return nil, fmt.Errorf("path %q: number %s without a command", name, i.Value)
		default:
		}
	}
}

var commandLetters = map[byte]outline.CommandKind{
	'm': outline.MoveTo,
	'l': outline.LineTo,
	'h': outline.HorizontalLineTo,
	'v': outline.VerticalLineTo,
	'c': outline.CurveTo,
	's': outline.SmoothCurveTo,
	'q': outline.QuadTo,
	't': outline.SmoothQuadTo,
	'z': outline.ClosePath,
}

var errUnknownCommand = errors.New("unknown path command")

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	if len(i.Value) != 1 {
		return fmt.Errorf("%w %q", errUnknownCommand, i.Value)
	}
	letter := i.Value[0]
	position := outline.Absolute
	if letter >= 'a' && letter <= 'z' {
		position = outline.Relative
	} else {
		letter += 'a' - 'A'
	}

	if letter == 'a' {
		return fmt.Errorf("%w: elliptical arc", outline.ErrUnsupportedCommand)
	}
	kind, ok := commandLetters[letter]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownCommand, i.Value)
	}

	params, err := readNumbers(pdp.lex)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", kind, err)
	}
	if kind == outline.ClosePath {
		// z and Z are the same command.
		position = outline.Absolute
	}
	pdp.commands = append(pdp.commands, outline.Command{Kind: kind, Position: position, Params: params})
	return nil
}
