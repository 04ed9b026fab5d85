// Package svg reads SVG documents and flattens their drawable elements
// into polylines with the outline package.
package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/outline"
)

// Element is implemented by every SVG element that contributes geometry.
type Element interface {
	// flatten appends the shapes of the element to out. parent is the
	// transform accumulated from the document and enclosing groups.
	flatten(f *outline.Flattener, parent mt.Transform, scale float64, out []Shape) ([]Shape, error)
}

// Shape is one flattened drawable element.
type Shape struct {
	ID          string
	Stroke      string
	Fill        string
	StrokeWidth float64
	Polyline    *outline.Polyline
}

// Svg represents an SVG file containing at least a top level group or a
// number of Paths
type Svg struct {
	Title     string `xml:"title"`
	Elements  []Element
	Name      string
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Stroke          string
	StrokeWidth     float64
	Fill            string
	FillRule        string
	Elements        []Element
	TransformString string
	Transform       *mt.Transform // row, column
	Parent          *Group
}

func (g *Group) flatten(f *outline.Flattener, parent mt.Transform, scale float64, out []Shape) ([]Shape, error) {
	t := parent
	if g.Transform != nil {
		t = mt.MultiplyTransforms(parent, *g.Transform)
	}
	var err error
	for _, e := range g.Elements {
		out, err = e.flatten(f, t, scale, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// newElement returns an empty element for the given tag inheriting
// presentation attributes from g, or nil for tags that carry no geometry.
func newElement(name string, g *Group) Element {
	var style presentation
	if g != nil {
		style = presentation{Stroke: g.Stroke, StrokeWidth: g.StrokeWidth, Fill: g.Fill}
	}
	switch name {
	case "g":
		ng := &Group{Parent: g}
		if g != nil {
			ng.Stroke, ng.StrokeWidth, ng.Fill, ng.FillRule = g.Stroke, g.StrokeWidth, g.Fill, g.FillRule
		}
		return ng
	case "path":
		return &Path{presentation: style}
	case "rect":
		return &Rect{presentation: style}
	case "circle":
		return &Circle{presentation: style}
	case "polyline":
		return &PolyLine{presentation: style}
	case "polygon":
		return &PolyLine{presentation: style, closed: true}
	}
	return nil
}

// decodeChildren decodes child elements until the end of the enclosing
// element and returns the drawable ones in document order.
func decodeChildren(decoder *xml.Decoder, g *Group) ([]Element, error) {
	var elements []Element
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			e := newElement(tok.Name.Local, g)
			if e == nil {
				outline.Logger().Debug("svg: skipping element", "name", tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			if err := decoder.DecodeElement(e, &tok); err != nil {
				return nil, fmt.Errorf("error decoding %s element: %w", tok.Name.Local, err)
			}
			elements = append(elements, e)

		case xml.EndElement:
			return elements, nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			w, err := parseLength(attr.Value)
			if err != nil {
				return fmt.Errorf("group %q: stroke-width: %w", g.ID, err)
			}
			g.StrokeWidth = w
		case "fill":
			g.Fill = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			g.Transform = &t
		}
	}

	elements, err := decodeChildren(decoder, g)
	if err != nil {
		return err
	}
	g.Elements = elements
	return nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "title" {
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
				continue
			}
			e := newElement(tok.Name.Local, nil)
			if e == nil {
				outline.Logger().Debug("svg: skipping element", "name", tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}
			if err = decoder.DecodeElement(e, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}
			s.Elements = append(s.Elements, e)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// Flatten flattens every drawable element of the document, in document
// order. The first element that fails aborts the whole document.
func (s *Svg) Flatten(opts ...outline.Option) ([]Shape, error) {
	root := mt.Identity()
	if s.Transform != nil {
		root = *s.Transform
	}
	scale := s.scale
	if scale == 0 {
		scale = 1
	}

	f := outline.NewFlattener(opts...)
	var shapes []Shape
	var err error
	for _, e := range s.Elements {
		shapes, err = e.flatten(f, root, scale, shapes)
		if err != nil {
			return nil, fmt.Errorf("svg %s: %w", s.Name, err)
		}
	}
	outline.Logger().Debug("svg: flattened document", "name", s.Name, "shapes", len(shapes))
	return shapes, nil
}

func newSvg(name string, scale float64) *Svg {
	svg := &Svg{Name: name, Transform: mt.NewTransform(), scale: 1}
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}
	return svg
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies every coordinate, a negative one divides by its magnitude and
// zero leaves coordinates untouched.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.NewDecoder(r).Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	outline.Logger().Debug("svg: parsed document", "name", name, "elements", len(svg.Elements))
	return svg, nil
}
