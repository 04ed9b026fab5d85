package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vasalvit/outline"
)

// splitStyle splits a style attribute ("stroke:#000;stroke-width:2")
// into its declarations.
func splitStyle(style string) map[string]string {
	properties := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		properties[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return properties
}

// withStyle returns the attributes overridden by style declarations.
func (a presentation) withStyle(properties map[string]string) presentation {
	for key, val := range properties {
		switch key {
		case "stroke":
			a.Stroke = val
		case "fill":
			a.Fill = val
		case "stroke-width":
			sw, err := parseLength(val)
			if err != nil {
				outline.Logger().Warn("svg: ignoring stroke-width", "value", val, "err", err)
				continue
			}
			a.StrokeWidth = sw
		}
	}
	return a
}

// parseLength parses a number with an optional px unit.
func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return n, nil
}
