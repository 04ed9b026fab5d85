package svg

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/outline"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<title>Podium</title>
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
<g id="marks" stroke="#000000">
	<circle cx="10" cy="10" r="5"/>
	<polygon points="0,0 10,0 10,10"/>
	<g id="inner"><polyline points="1 1 2 2 3 1"/></g>
</g>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.Title, "Podium")
	is.Equal(len(svg.Elements), 2)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg), "test", 0)
	is.NoErr(err)
	is.NotNil(svg)

	g, ok := svg.Elements[1].(*Group)
	is.True(ok)
	is.Equal(g.ID, "marks")
	is.Equal(len(g.Elements), 3)
	inner, ok := g.Elements[2].(*Group)
	is.True(ok)
	is.Equal(inner.Parent, g)
	is.Equal(inner.Stroke, "#000000")
}

func TestFlattenDocument(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test", 0)
	is.NoErr(err)

	shapes, err := svg.Flatten(outline.WithSamples(5))
	is.NoErr(err)
	is.Equal(len(shapes), 4)

	// rect: anchor + three edges, closed without a closing vertex
	rect := shapes[0].Polyline
	is.Equal(rect.Len(), 4)
	is.True(rect.Segments[0].Closed)
	is.Equal(shapes[0].Fill, "#009FE3")

	// circle: anchor + four arcs of four new samples each
	circle := shapes[1].Polyline
	is.Equal(circle.Len(), 1+4*4)
	b, err := circle.Bounds()
	is.NoErr(err)
	is.Equal(b.Min.X, 5.0)
	is.Equal(b.Max.X, 15.0)
	is.Equal(shapes[1].Stroke, "#000000")

	polygon := shapes[2].Polyline
	is.Equal(polygon.Vertices(), []outline.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	is.True(polygon.Segments[0].Closed)

	polyline := shapes[3].Polyline
	is.Equal(polyline.Len(), 3)
	is.True(!polyline.Segments[0].Closed)
}

func TestParseTransform(t *testing.T) {
	is := is.New(t)

	tr, err := parseTransform("translate(10, 20)")
	is.NoErr(err)
	is.Equal(tr, affine(1, 0, 0, 1, 10, 20))

	tr, err = parseTransform("scale(2)")
	is.NoErr(err)
	is.Equal(tr, affine(2, 0, 0, 2, 0, 0))

	tr, err = parseTransform(" matrix(1 2 3 4 5 6) ")
	is.NoErr(err)
	is.Equal(tr, affine(1, 2, 3, 4, 5, 6))

	_, err = parseTransform("translate(1,2,3)")
	is.Err(err)
	_, err = parseTransform("wobble(1)")
	is.Err(err)
	_, err = parseTransform("scale(2")
	is.Err(err)
}

func TestParseTransformNumberForms(t *testing.T) {
	is := is.New(t)

	tr, err := parseTransform("translate(10-5)")
	is.NoErr(err)
	is.Equal(tr, affine(1, 0, 0, 1, 10, -5))

	tr, err = parseTransform("translate(.5.25)")
	is.NoErr(err)
	is.Equal(tr, affine(1, 0, 0, 1, 0.5, 0.25))

	tr, err = parseTransform("rotate(45 10,20) skewX(3)")
	is.NoErr(err)
	rotate, err := transformFunction("rotate", []float64{45, 10, 20})
	is.NoErr(err)
	skew, err := transformFunction("skewX", []float64{3})
	is.NoErr(err)
	is.Equal(tr, mt.MultiplyTransforms(mt.MultiplyTransforms(mt.Identity(), rotate), skew))

	_, err = parseTransform("translate(1#2)")
	is.Err(err)
	_, err = parseTransform("translate 1 2")
	is.Err(err)
	_, err = parseTransform("(1 2)")
	is.Err(err)
}

func TestScaledTransformApply(t *testing.T) {
	is := is.New(t)

	tr, err := parseTransform("scale(2 3)")
	is.NoErr(err)
	x, y := tr.Apply(1, 1)
	is.Equal(x, 2.0)
	is.Equal(y, 3.0)
}

func TestPolyLineOddPoints(t *testing.T) {
	is := is.New(t)

	pl := &PolyLine{ID: "odd", Points: "0 0 1"}
	_, err := pl.Commands()
	is.Err(err)
}

func TestPolyLinePoints(t *testing.T) {
	is := is.New(t)

	pl := &PolyLine{ID: "compact", Points: "0,0 10-5 20,0"}
	cmds, err := pl.Commands()
	is.NoErr(err)
	is.Equal(cmds, []outline.Command{
		outline.Abs(outline.MoveTo, 0, 0),
		outline.Abs(outline.LineTo, 10, -5, 20, 0),
	})

	pl = &PolyLine{ID: "dots", Points: ".5.5 1e1,1E1"}
	cmds, err = pl.Commands()
	is.NoErr(err)
	is.Equal(cmds[0], outline.Abs(outline.MoveTo, 0.5, 0.5))
	is.Equal(cmds[1], outline.Abs(outline.LineTo, 10, 10))

	for _, points := range []string{"0 0 x 1", "0 0 1 1;", "0 0 (1 1)"} {
		pl = &PolyLine{ID: "bad", Points: points}
		_, err = pl.Commands()
		is.Err(err)
	}
}

func TestSkippedElementsLogAtDebug(t *testing.T) {
	is := is.New(t)

	orig := outline.Logger()
	t.Cleanup(func() { outline.SetLogger(orig) })

	var buf bytes.Buffer
	outline.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	_, err := ParseSvg(testSvg, "test", 0)
	is.NoErr(err)
	is.True(!strings.Contains(buf.String(), "skipping element"))

	buf.Reset()
	outline.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err = ParseSvg(testSvg, "test", 0)
	is.NoErr(err)
	is.True(strings.Contains(buf.String(), `level=DEBUG msg="svg: skipping element" name=text`))
}
