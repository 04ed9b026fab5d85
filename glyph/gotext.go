package glyph

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/vasalvit/outline"
)

// GoTextSource reads outlines with go-text/typesetting. It handles both
// TrueType (quadratic) and CFF (cubic) outlines.
type GoTextSource struct {
	face *font.Face
}

// NewGoTextSource parses an OpenType or TrueType font file.
func NewGoTextSource(data []byte) (*GoTextSource, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &GoTextSource{face: face}, nil
}

// UnitsPerEm returns the font design units per em.
func (s *GoTextSource) UnitsPerEm() int {
	return int(s.face.Upem())
}

// Commands returns the outline of r in font units.
func (s *GoTextSource) Commands(r rune) ([]outline.Command, error) {
	gid, ok := s.face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	data, ok := s.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}

	var c contours
	for _, seg := range data.Segments {
		a := seg.Args
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			c.moveTo(float64(a[0].X), float64(a[0].Y))
		case opentype.SegmentOpLineTo:
			c.lineTo(float64(a[0].X), float64(a[0].Y))
		case opentype.SegmentOpQuadTo:
			c.quadTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y))
		case opentype.SegmentOpCubeTo:
			c.cubeTo(float64(a[0].X), float64(a[0].Y),
				float64(a[1].X), float64(a[1].Y),
				float64(a[2].X), float64(a[2].Y))
		}
	}
	return c.commands(), nil
}
