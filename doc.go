// Package outline flattens vector outlines into vertex lists for line-strip
// and triangle-strip rendering.
//
// Paths are given as a sequence of Commands (the SVG path grammar: move,
// line, cubic, smooth cubic, quadratic and close, absolute or relative).
// A Flattener walks them with a Pen, which tracks the cursor and the last
// control point, samples every curve at a fixed number of points and
// collects the result in a Polyline:
//
//	pl, err := outline.Flatten([]outline.Command{
//		outline.Abs(outline.MoveTo, 0, 0),
//		outline.Abs(outline.CurveTo, 0, 10, 10, 10, 10, 0),
//	}, outline.WithSamples(11))
//	if err != nil {
//		return err
//	}
//	ndc, err := pl.Normalize(0.9)
//
// The svg sub-package turns SVG documents into Commands, the charstring
// sub-package drives a Pen from PostScript Type 2 charstrings, glyph loads
// font outlines and render wraps vertex buffers for an external graphics
// context.
package outline
