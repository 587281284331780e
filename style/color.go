package style

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// A small palette of named colors the stylesheet dialect accepts besides
// hex triplets. Terminal themes almost exclusively use hex values; the
// names exist for hand-written rules.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
	"gray":    "#808080",
	"grey":    "#808080",
}

// Color interprets a property value as a color. It accepts hex triplets
// ("#8A2BE2"), a small set of named colors, and reports ok=false for
// everything else (including "transparent" and "auto", which the caller
// has to treat specially).
func (p Property) Color() (colorful.Color, bool) {
	v := strings.TrimSpace(strings.ToLower(p.String()))
	if hex, found := namedColors[v]; found {
		v = hex
	}
	if !strings.HasPrefix(v, "#") {
		return colorful.Color{}, false
	}
	if len(v) == 4 { // #rgb => #rrggbb
		v = "#" + strings.Repeat(string(v[1]), 2) +
			strings.Repeat(string(v[2]), 2) + strings.Repeat(string(v[3]), 2)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		tracer().P("value", p.String()).Debugf("style: not a color value")
		return colorful.Color{}, false
	}
	return c, true
}

// ColorWithAlpha interprets a property value as a color with an optional
// trailing opacity modifier, e.g.
//
//	color: #ff4500 80%
//
// The opacity is returned as a fraction in [0,1]; a value without modifier
// has opacity 1.
func (p Property) ColorWithAlpha() (colorful.Color, float64, bool) {
	fields := strings.Fields(p.String())
	if len(fields) == 0 {
		return colorful.Color{}, 0, false
	}
	c, ok := Property(fields[0]).Color()
	if !ok {
		return colorful.Color{}, 0, false
	}
	alpha := 1.0
	if len(fields) > 1 && strings.HasSuffix(fields[1], "%") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "%"), 64); err == nil {
			alpha = n / 100.0
		}
	}
	return c, alpha, true
}
