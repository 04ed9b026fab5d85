// Package glyph loads glyph outlines from font files and turns them into
// outline commands, so that font glyphs are flattened with the same
// interpreter as SVG paths.
//
// Coordinates are font units with the Y axis pointing up.
package glyph

import (
	"errors"
	"fmt"

	"github.com/vasalvit/outline"
)

var (
	// ErrNoGlyph is returned when the font maps no glyph to a rune.
	ErrNoGlyph = errors.New("glyph: rune not in font")

	// ErrNoOutline is returned for glyphs stored as bitmaps or SVG
	// documents instead of outlines.
	ErrNoOutline = errors.New("glyph: glyph has no outline")
)

// Source yields the outline of a rune as absolute path commands. Every
// contour ends with a ClosePath.
type Source interface {
	Commands(r rune) ([]outline.Command, error)
	UnitsPerEm() int
}

// Flatten flattens the outline of r from src.
func Flatten(src Source, r rune, opts ...outline.Option) (*outline.Polyline, error) {
	cmds, err := src.Commands(r)
	if err != nil {
		return nil, err
	}
	pl, err := outline.Flatten(cmds, opts...)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	outline.Logger().Debug("glyph: flattened",
		"rune", string(r),
		"contours", len(pl.Segments),
		"vertices", pl.Len())
	return pl, nil
}

// Normalized flattens r and scales it into [-fraction, fraction] on both
// axes. Glyphs without ink (space) return outline.ErrEmpty.
func Normalized(src Source, r rune, fraction float64, opts ...outline.Option) (*outline.Polyline, error) {
	pl, err := Flatten(src, r, opts...)
	if err != nil {
		return nil, err
	}
	n, err := pl.Normalize(fraction)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	return n, nil
}

// contours collects commands and closes each contour before the next
// one starts.
type contours struct {
	cmds []outline.Command
	open bool
}

func (c *contours) moveTo(x, y float64) {
	c.close()
	c.cmds = append(c.cmds, outline.Abs(outline.MoveTo, x, y))
	c.open = true
}

func (c *contours) lineTo(x, y float64) {
	c.cmds = append(c.cmds, outline.Abs(outline.LineTo, x, y))
}

func (c *contours) quadTo(cx, cy, x, y float64) {
	c.cmds = append(c.cmds, outline.Abs(outline.QuadTo, cx, cy, x, y))
}

func (c *contours) cubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.cmds = append(c.cmds, outline.Abs(outline.CurveTo, c1x, c1y, c2x, c2y, x, y))
}

func (c *contours) close() {
	if c.open {
		c.cmds = append(c.cmds, outline.Command{Kind: outline.ClosePath})
		c.open = false
	}
}

func (c *contours) commands() []outline.Command {
	c.close()
	return c.cmds
}
