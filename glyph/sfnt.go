package glyph

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vasalvit/outline"
)

// SFNTSource reads outlines with golang.org/x/image/font/sfnt.
type SFNTSource struct {
	font *sfnt.Font
	upem int
}

// NewSFNTSource parses a TrueType or OpenType font file.
func NewSFNTSource(data []byte) (*SFNTSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &SFNTSource{font: f, upem: int(f.UnitsPerEm())}, nil
}

// UnitsPerEm returns the font design units per em.
func (s *SFNTSource) UnitsPerEm() int {
	return s.upem
}

// Commands returns the outline of r in font units.
func (s *SFNTSource) Commands(r rune) ([]outline.Command, error) {
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}

	// One pixel per em unit keeps coordinates in font units.
	ppem := fixed.Int26_6(s.upem << 6)
	segments, err := s.font.LoadGlyph(&buf, idx, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}

	var c contours
	for _, seg := range segments {
		p := func(i int) (float64, float64) { return unfix(seg.Args[i]) }
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			c.moveTo(p(0))
		case sfnt.SegmentOpLineTo:
			c.lineTo(p(0))
		case sfnt.SegmentOpQuadTo:
			cx, cy := p(0)
			x, y := p(1)
			c.quadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := p(0)
			c2x, c2y := p(1)
			x, y := p(2)
			c.cubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	return c.commands(), nil
}

// unfix converts a 26.6 point to float coordinates. sfnt's Y axis points
// down.
func unfix(p fixed.Point26_6) (float64, float64) {
	return float64(p.X) / 64, -float64(p.Y) / 64
}
