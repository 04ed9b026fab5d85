package svg

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/outline"
)

// kappa places the control points of a quarter circle cubic approximation.
const kappa = 0.5522847498307936

// Circle is an SVG circle element
type Circle struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	Cx        string `xml:"cx,attr"`
	Cy        string `xml:"cy,attr"`
	Radius    string `xml:"r,attr"`
	presentation
}

// Commands returns the circle as four cubic quarter arcs, starting at the
// rightmost point and running clockwise in SVG's y-down space.
func (c *Circle) Commands() ([]outline.Command, error) {
	cx, err := optionalLength(c.Cx)
	if err != nil {
		return nil, fmt.Errorf("circle %q: cx: %w", c.ID, err)
	}
	cy, err := optionalLength(c.Cy)
	if err != nil {
		return nil, fmt.Errorf("circle %q: cy: %w", c.ID, err)
	}
	r, err := optionalLength(c.Radius)
	if err != nil {
		return nil, fmt.Errorf("circle %q: r: %w", c.ID, err)
	}
	if r <= 0 {
		return nil, nil
	}

	k := r * kappa
	return []outline.Command{
		outline.Abs(outline.MoveTo, cx+r, cy),
		outline.Abs(outline.CurveTo,
			cx+r, cy+k, cx+k, cy+r, cx, cy+r,
			cx-k, cy+r, cx-r, cy+k, cx-r, cy,
			cx-r, cy-k, cx-k, cy-r, cx, cy-r,
			cx+k, cy-r, cx+r, cy-k, cx+r, cy),
		outline.Abs(outline.ClosePath),
	}, nil
}

func (c *Circle) flatten(f *outline.Flattener, parent mt.Transform, scale float64, out []Shape) ([]Shape, error) {
	cmds, err := c.Commands()
	if err != nil {
		return nil, err
	}
	if len(cmds) == 0 {
		return out, nil
	}
	return flattenElement(f, c.ID, cmds, c.Style, c.Transform, c.presentation, parent, scale, out)
}

// optionalLength parses a length attribute, treating a missing one as 0.
func optionalLength(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return parseLength(s)
}
