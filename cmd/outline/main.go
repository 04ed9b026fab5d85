// Command outline flattens an SVG document, a font glyph or a raw Type 2
// charstring, normalizes the result into [-fraction, fraction] and prints
// the line strips that would be drawn, one vertex per line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vasalvit/outline"
	"github.com/vasalvit/outline/charstring"
	"github.com/vasalvit/outline/glyph"
	"github.com/vasalvit/outline/render"
	"github.com/vasalvit/outline/svg"
)

type options struct {
	svgPath    string
	fontPath   string
	glyph      rune
	charstring string
	sfnt       bool
	scale      float64
	samples    int
	fraction   float64
	closeEdges bool
	verbose    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "outline: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "outline: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: outline [flags] (-svg file | -font file -rune r | -charstring hex)\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.svgPath, "svg", "", "SVG document to flatten")
	flag.StringVar(&opts.fontPath, "font", "", "TrueType/OpenType font to read a glyph from")
	r := flag.String("rune", "&", "Glyph to flatten with -font")
	flag.StringVar(&opts.charstring, "charstring", "", "Hex encoded Type 2 charstring without subroutines")
	flag.BoolVar(&opts.sfnt, "sfnt", false, "Read fonts with x/image/font/sfnt instead of go-text")
	flag.Float64Var(&opts.scale, "scale", 0, "SVG scale: positive multiplies, negative divides")
	flag.IntVar(&opts.samples, "samples", outline.DefaultSamples, "Points per curve segment, endpoints included")
	flag.Float64Var(&opts.fraction, "fraction", 0.9, "Normalize into [-fraction, fraction]")
	flag.BoolVar(&opts.closeEdges, "close", false, "Emit a closing vertex on ClosePath")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging to stderr")
	flag.Parse()

	sources := 0
	for _, set := range []bool{opts.svgPath != "", opts.fontPath != "", opts.charstring != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 || flag.NArg() != 0 {
		flag.Usage()
		return options{}, fmt.Errorf("need exactly one of -svg, -font or -charstring")
	}
	if utf8.RuneCountInString(*r) != 1 {
		return options{}, fmt.Errorf("-rune must be a single character, got %q", *r)
	}
	opts.glyph, _ = utf8.DecodeRuneInString(*r)
	return opts, nil
}

func run(opts options, w io.Writer) error {
	if opts.verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	flatten := []outline.Option{outline.WithSamples(opts.samples)}
	if opts.closeEdges {
		flatten = append(flatten, outline.WithClosePath(outline.EmitClosingVertex))
	}

	pl, err := load(opts, flatten)
	if err != nil {
		return err
	}
	pl, err = pl.Normalize(opts.fraction)
	if err != nil {
		return err
	}

	rec := &render.Recorder{}
	display, err := render.NewDisplay(rec, render.DefaultProgram())
	if err != nil {
		return err
	}
	scene, err := render.Outline(display.Device(), pl)
	if err != nil {
		return err
	}
	defer scene.Close()
	if err := display.Draw(scene); err != nil {
		return err
	}
	return writeStrips(w, rec.Calls())
}

func load(opts options, flatten []outline.Option) (*outline.Polyline, error) {
	switch {
	case opts.svgPath != "":
		f, err := os.Open(opts.svgPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		doc, err := svg.ParseSvgFromReader(f, opts.svgPath, opts.scale)
		if err != nil {
			return nil, err
		}
		shapes, err := doc.Flatten(flatten...)
		if err != nil {
			return nil, err
		}
		pl := &outline.Polyline{}
		for _, s := range shapes {
			pl.Segments = append(pl.Segments, s.Polyline.Segments...)
		}
		return pl, nil

	case opts.fontPath != "":
		data, err := os.ReadFile(opts.fontPath)
		if err != nil {
			return nil, err
		}
		var src glyph.Source
		if opts.sfnt {
			src, err = glyph.NewSFNTSource(data)
		} else {
			src, err = glyph.NewGoTextSource(data)
		}
		if err != nil {
			return nil, err
		}
		return glyph.Flatten(src, opts.glyph, flatten...)

	default:
		data, err := hex.DecodeString(strings.Join(strings.Fields(opts.charstring), ""))
		if err != nil {
			return nil, fmt.Errorf("charstring: %w", err)
		}
		prog, err := charstring.Decode(data, nil, nil)
		if err != nil {
			return nil, err
		}
		return charstring.Flatten(prog.Ops, flatten...)
	}
}

func writeStrips(w io.Writer, calls []render.DrawCall) error {
	for i, c := range calls {
		if _, err := fmt.Fprintf(w, "# strip %d %s %d\n", i, c.Topology, len(c.Vertices)); err != nil {
			return err
		}
		for _, v := range c.Vertices {
			if _, err := fmt.Fprintf(w, "%g %g\n", v.Position[0], v.Position[1]); err != nil {
				return err
			}
		}
	}
	return nil
}
