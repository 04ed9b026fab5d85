package svg

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/outline"
)

// PolyLine
// set of connected line segments. Decoded from polygon elements it
// forms a closed shape.
type PolyLine struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Points    string `xml:"points,attr"`
	presentation

	closed bool
}

// Commands returns a move to the first point and lines through the rest.
func (pl *PolyLine) Commands() ([]outline.Command, error) {
	coords, err := parseNumberList(pl.ID, pl.Points)
	if err != nil {
		return nil, fmt.Errorf("polyline %q: %w", pl.ID, err)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("polyline %q: %w: odd number of coordinates", pl.ID, outline.ErrArity)
	}
	if len(coords) < 4 {
		return nil, nil
	}
	cmds := []outline.Command{
		outline.Abs(outline.MoveTo, coords[:2]...),
		outline.Abs(outline.LineTo, coords[2:]...),
	}
	if pl.closed {
		cmds = append(cmds, outline.Abs(outline.ClosePath))
	}
	return cmds, nil
}

func (pl *PolyLine) flatten(f *outline.Flattener, parent mt.Transform, scale float64, out []Shape) ([]Shape, error) {
	cmds, err := pl.Commands()
	if err != nil {
		return nil, err
	}
	if len(cmds) == 0 {
		return out, nil
	}
	return flattenElement(f, pl.ID, cmds, pl.Style, pl.Transform, pl.presentation, parent, scale, out)
}
