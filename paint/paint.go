/*
Package paint is the style application layer: it pushes resolved style
declarations into the rendering layer's paint attributes, here lipgloss
styles.

Application is idempotent: re-applying an unchanged resolved style is a
no-op, so a re-style pass never causes visible flicker. Properties the
paint layer does not understand (layout directives handled elsewhere,
unknown forward-compatibility properties) are ignored, traced at most,
never fatal.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package paint

import (
	"strings"

	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/widget"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'posting.paint'.
func tracer() tracing.Trace {
	return tracing.Select("posting.paint")
}

// Painter converts resolved styles into lipgloss paint attributes, one
// per widget, and caches them for idempotent re-application.
type Painter struct {
	background colorful.Color // blend target for opacity modifiers
	applied    map[*widget.Widget]style.ResolvedStyle
	styles     map[*widget.Widget]lipgloss.Style
}

// New creates a Painter with no default background (opacity modifiers
// blend toward black until SetBackground is called).
func New() *Painter {
	return &Painter{
		applied: make(map[*widget.Widget]style.ResolvedStyle),
		styles:  make(map[*widget.Widget]lipgloss.Style),
	}
}

// SetBackground sets the screen background color used as the blend target
// for `color X%` opacity modifiers.
func (p *Painter) SetBackground(c colorful.Color) {
	p.background = c
}

// Apply pushes a resolved style into the widget's paint attributes.
// Re-applying an equal resolved style is a no-op. Part of interface
// cascade.Applier.
func (p *Painter) Apply(w *widget.Widget, rs style.ResolvedStyle) {
	if prev, ok := p.applied[w]; ok && prev.Equals(rs) {
		tracer().P("widget", w.String()).Debugf("paint: style unchanged, skipping")
		return
	}
	p.applied[w] = rs
	p.styles[w] = p.build(rs)
}

// StyleFor returns the lipgloss style last applied to a widget.
func (p *Painter) StyleFor(w *widget.Widget) lipgloss.Style {
	return p.styles[w]
}

// Forget drops the cached paint attributes of a widget, e.g. after it
// was unmounted.
func (p *Painter) Forget(w *widget.Widget) {
	delete(p.applied, w)
	delete(p.styles, w)
}

// --- Conversion -------------------------------------------------------

func (p *Painter) build(rs style.ResolvedStyle) lipgloss.Style {
	s := lipgloss.NewStyle()
	bg := p.widgetBackground(rs)
	for key := range rs {
		s = p.applyProperty(s, key, rs.Value(key), bg)
	}
	return s
}

// widgetBackground determines the blend target for this widget's
// foreground: its own background if one is declared, the painter's screen
// background otherwise.
func (p *Painter) widgetBackground(rs style.ResolvedStyle) colorful.Color {
	if c, alpha, ok := rs.Value("background").ColorWithAlpha(); ok {
		return p.blend(c, alpha)
	}
	return p.background
}

func (p *Painter) blend(c colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1.0 {
		return c
	}
	return p.background.BlendRgb(c, alpha)
}

func (p *Painter) applyProperty(s lipgloss.Style, key string, v style.Property, bg colorful.Color) lipgloss.Style {
	switch key {
	case "color":
		if v == "auto" {
			return s.Foreground(contrastColor(bg))
		}
		if c, alpha, ok := v.ColorWithAlpha(); ok {
			blended := bg.BlendRgb(c, alpha)
			if alpha >= 1.0 {
				blended = c
			}
			return s.Foreground(lipgloss.Color(blended.Hex()))
		}
	case "background":
		if v.IsNone() || v == "transparent" {
			return s
		}
		if c, alpha, ok := v.ColorWithAlpha(); ok {
			return s.Background(lipgloss.Color(p.blend(c, alpha).Hex()))
		}
	case "padding", "margin", "border":
		kvs, err := style.SplitShorthand(key, v)
		if err != nil {
			tracer().P("property", key).Infof("paint: %v", err)
			return s
		}
		for _, kv := range kvs {
			s = p.applyProperty(s, kv.Key, kv.Value, bg)
		}
		return s
	case "padding-top", "padding-right", "padding-bottom", "padding-left",
		"margin-top", "margin-right", "margin-bottom", "margin-left":
		return applyEdge(s, key, v)
	case "border-top", "border-right", "border-bottom", "border-left":
		return applyBorder(s, key, v)
	case "width":
		if n, ok := cells(v); ok {
			return s.Width(n)
		}
	case "height":
		if n, ok := cells(v); ok {
			return s.Height(n)
		}
	case "text-style":
		return applyTextStyle(s, v)
	case "text-align":
		switch v {
		case "left":
			return s.Align(lipgloss.Left)
		case "center":
			return s.Align(lipgloss.Center)
		case "right":
			return s.Align(lipgloss.Right)
		}
	default:
		// unknown or layout-level property; not ours to paint
		tracer().P("property", key).Debugf("paint: ignoring property")
	}
	return s
}

// cells extracts an absolute cell count; fractional and %-relative
// scalars need layout context and are left to the layout engine.
func cells(v style.Property) (int, bool) {
	sc, ok := v.Scalar()
	if !ok {
		return 0, false
	}
	var n float64
	if m := sc.Match(); m.Cells(&n) == nil {
		tracer().P("value", v.String()).Debugf("paint: non-absolute scalar, leaving to layout")
		return 0, false
	}
	return int(n), true
}

func applyEdge(s lipgloss.Style, key string, v style.Property) lipgloss.Style {
	n, ok := cells(v)
	if !ok {
		return s
	}
	switch key {
	case "padding-top":
		return s.PaddingTop(n)
	case "padding-right":
		return s.PaddingRight(n)
	case "padding-bottom":
		return s.PaddingBottom(n)
	case "padding-left":
		return s.PaddingLeft(n)
	case "margin-top":
		return s.MarginTop(n)
	case "margin-right":
		return s.MarginRight(n)
	case "margin-bottom":
		return s.MarginBottom(n)
	case "margin-left":
		return s.MarginLeft(n)
	}
	return s
}

// Border kinds of the stylesheet dialect, mapped onto the border sets the
// terminal renderer offers. Kinds without a direct equivalent (tall, wide,
// outer, inner) fall back to the normal border.
var borderKinds = map[string]lipgloss.Border{
	"round":  lipgloss.RoundedBorder(),
	"heavy":  lipgloss.ThickBorder(),
	"thick":  lipgloss.ThickBorder(),
	"double": lipgloss.DoubleBorder(),
	"ascii":  lipgloss.NormalBorder(),
	"solid":  lipgloss.NormalBorder(),
	"tall":   lipgloss.NormalBorder(),
	"wide":   lipgloss.NormalBorder(),
	"outer":  lipgloss.NormalBorder(),
	"inner":  lipgloss.NormalBorder(),
	"panel":  lipgloss.NormalBorder(),
	"dashed": lipgloss.NormalBorder(),
}

func applyBorder(s lipgloss.Style, key string, v style.Property) lipgloss.Style {
	fields := strings.Fields(v.String())
	if len(fields) == 0 {
		return s
	}
	kind := fields[0]
	if kind == "none" || kind == "hidden" || kind == "blank" {
		return setBorderSide(s, key, false)
	}
	b, ok := borderKinds[kind]
	if !ok {
		tracer().P("border", kind).Debugf("paint: unknown border kind")
		b = lipgloss.NormalBorder()
	}
	s = s.BorderStyle(b)
	s = setBorderSide(s, key, true)
	if len(fields) > 1 {
		if c, _, ok := style.Property(strings.Join(fields[1:], " ")).ColorWithAlpha(); ok {
			col := lipgloss.Color(c.Hex())
			switch key {
			case "border-top":
				s = s.BorderTopForeground(col)
			case "border-right":
				s = s.BorderRightForeground(col)
			case "border-bottom":
				s = s.BorderBottomForeground(col)
			case "border-left":
				s = s.BorderLeftForeground(col)
			}
		}
	}
	return s
}

func setBorderSide(s lipgloss.Style, key string, on bool) lipgloss.Style {
	switch key {
	case "border-top":
		return s.BorderTop(on)
	case "border-right":
		return s.BorderRight(on)
	case "border-bottom":
		return s.BorderBottom(on)
	case "border-left":
		return s.BorderLeft(on)
	}
	return s
}

func applyTextStyle(s lipgloss.Style, v style.Property) lipgloss.Style {
	for _, f := range strings.Fields(v.String()) {
		switch f {
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "strike":
			s = s.Strikethrough(true)
		case "reverse":
			s = s.Reverse(true)
		case "blink":
			s = s.Blink(true)
		case "dim":
			s = s.Faint(true)
		case "none", "not":
		default:
			tracer().P("text-style", f).Debugf("paint: unknown text style")
		}
	}
	return s
}

// contrastColor picks black or white, whichever contrasts better with the
// given background.
func contrastColor(bg colorful.Color) lipgloss.Color {
	lum := 0.299*bg.R + 0.587*bg.G + 0.114*bg.B
	if lum > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
