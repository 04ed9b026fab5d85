package svg

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/outline"
)

// Rect is an SVG rect element. Rounded corners (rx, ry) are not drawn.
type Rect struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Style     string `xml:"style,attr"`
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
	presentation
}

// Commands returns the outline of the rectangle.
func (r *Rect) Commands() ([]outline.Command, error) {
	var v [4]float64
	for i, s := range []string{r.X, r.Y, r.Width, r.Height} {
		n, err := optionalLength(s)
		if err != nil {
			return nil, fmt.Errorf("rect %q: %w", r.ID, err)
		}
		v[i] = n
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	return []outline.Command{
		outline.Abs(outline.MoveTo, x, y),
		outline.Abs(outline.HorizontalLineTo, x+w),
		outline.Abs(outline.VerticalLineTo, y+h),
		outline.Abs(outline.HorizontalLineTo, x),
		outline.Abs(outline.ClosePath),
	}, nil
}

func (r *Rect) flatten(f *outline.Flattener, parent mt.Transform, scale float64, out []Shape) ([]Shape, error) {
	cmds, err := r.Commands()
	if err != nil {
		return nil, err
	}
	if len(cmds) == 0 {
		return out, nil
	}
	return flattenElement(f, r.ID, cmds, r.Style, r.Transform, r.presentation, parent, scale, out)
}
