package paint_test

import (
	"testing"

	"github.com/aymerick/douceur/css"
	"github.com/bryanwills/posting/paint"
	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/widget"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// resolved builds a ResolvedStyle from property/value pairs.
func resolved(pairs ...string) style.ResolvedStyle {
	rs := make(style.ResolvedStyle)
	for i := 0; i+1 < len(pairs); i += 2 {
		rs[pairs[i]] = css.Declaration{Property: pairs[i], Value: pairs[i+1]}
	}
	return rs
}

func TestPaintForegroundColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.paint")
	defer teardown()
	//
	p := paint.New()
	w := widget.New("Label")
	p.Apply(w, resolved("color", "#FF0000"))
	s := p.StyleFor(w)
	if fg := s.GetForeground(); fg != lipgloss.Color("#ff0000") {
		t.Errorf("expected red foreground, have %v", fg)
	}
}

func TestPaintAutoColorContrasts(t *testing.T) {
	p := paint.New()
	dark, _ := colorful.Hex("#101010")
	p.SetBackground(dark)
	w := widget.New("Label")
	p.Apply(w, resolved("color", "auto"))
	if fg := p.StyleFor(w).GetForeground(); fg != lipgloss.Color("#ffffff") {
		t.Errorf("expected white on a dark background, have %v", fg)
	}

	light, _ := colorful.Hex("#f0f0f0")
	p2 := paint.New()
	p2.SetBackground(light)
	p2.Apply(w, resolved("color", "auto"))
	if fg := p2.StyleFor(w).GetForeground(); fg != lipgloss.Color("#000000") {
		t.Errorf("expected black on a light background, have %v", fg)
	}
}

func TestPaintColorOpacityBlends(t *testing.T) {
	p := paint.New()
	bg, _ := colorful.Hex("#000000")
	p.SetBackground(bg)
	w := widget.New("Label")
	p.Apply(w, resolved("color", "#FFFFFF 50%"))
	fg := p.StyleFor(w).GetForeground()
	white, _ := colorful.Hex("#FFFFFF")
	want := lipgloss.Color(bg.BlendRgb(white, 0.5).Hex())
	if fg != want {
		t.Errorf("expected foreground blended toward the background, have %v, want %v", fg, want)
	}
}

func TestPaintBackground(t *testing.T) {
	p := paint.New()
	w := widget.New("Panel")
	p.Apply(w, resolved("background", "#1E1E3F"))
	if bg := p.StyleFor(w).GetBackground(); bg != lipgloss.Color("#1e1e3f") {
		t.Errorf("expected panel background, have %v", bg)
	}
}

func TestPaintTransparentBackgroundSkipped(t *testing.T) {
	p := paint.New()
	w := widget.New("Footer")
	p.Apply(w, resolved("background", "transparent"))
	if bg := p.StyleFor(w).GetBackground(); bg != (lipgloss.NoColor{}) {
		t.Errorf("expected no background, have %v", bg)
	}
}

func TestPaintPaddingShorthand(t *testing.T) {
	p := paint.New()
	w := widget.New("Button")
	p.Apply(w, resolved("padding", "1 2"))
	s := p.StyleFor(w)
	if s.GetPaddingTop() != 1 || s.GetPaddingBottom() != 1 {
		t.Errorf("expected vertical padding 1, have %d/%d", s.GetPaddingTop(), s.GetPaddingBottom())
	}
	if s.GetPaddingLeft() != 2 || s.GetPaddingRight() != 2 {
		t.Errorf("expected horizontal padding 2, have %d/%d", s.GetPaddingLeft(), s.GetPaddingRight())
	}
}

func TestPaintMarginEdges(t *testing.T) {
	p := paint.New()
	w := widget.New("Dialog")
	p.Apply(w, resolved("margin-top", "1", "margin-left", "3"))
	s := p.StyleFor(w)
	if s.GetMarginTop() != 1 || s.GetMarginLeft() != 3 {
		t.Errorf("unexpected margins: top %d, left %d", s.GetMarginTop(), s.GetMarginLeft())
	}
}

func TestPaintBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.paint")
	defer teardown()
	//
	p := paint.New()
	w := widget.New("Input")
	p.Apply(w, resolved("border", "round #FF69B4"))
	s := p.StyleFor(w)
	if !s.GetBorderTop() || !s.GetBorderLeft() {
		t.Error("expected all border sides on")
	}
	if c := s.GetBorderTopForeground(); c != lipgloss.Color("#ff69b4") {
		t.Errorf("expected border color, have %v", c)
	}
}

func TestPaintBorderSideOff(t *testing.T) {
	p := paint.New()
	w := widget.New("Input")
	p.Apply(w, resolved("border-left", "none"))
	if p.StyleFor(w).GetBorderLeft() {
		t.Error("expected left border off")
	}
}

func TestPaintWidthHeightCellsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.paint")
	defer teardown()
	//
	p := paint.New()
	w := widget.New("Sidebar")
	p.Apply(w, resolved("width", "30", "height", "1fr"))
	s := p.StyleFor(w)
	if s.GetWidth() != 30 {
		t.Errorf("expected width 30 cells, have %d", s.GetWidth())
	}
	if s.GetHeight() != 0 {
		t.Errorf("expected fractional height left to layout, have %d", s.GetHeight())
	}
}

func TestPaintTextStyle(t *testing.T) {
	p := paint.New()
	w := widget.New("Label")
	p.Apply(w, resolved("text-style", "bold italic underline"))
	s := p.StyleFor(w)
	if !s.GetBold() || !s.GetItalic() || !s.GetUnderline() {
		t.Error("expected bold, italic and underline set")
	}
}

func TestPaintUnknownPropertyIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.paint")
	defer teardown()
	//
	p := paint.New()
	w := widget.New("Label")
	p.Apply(w, resolved("grok-factor", "11", "color", "#00FF00"))
	if fg := p.StyleFor(w).GetForeground(); fg != lipgloss.Color("#00ff00") {
		t.Errorf("expected the known property still applied, have %v", fg)
	}
}

func TestPaintIdempotentApply(t *testing.T) {
	p := paint.New()
	w := widget.New("Button")
	p.Apply(w, resolved("color", "#FF0000"))
	first := p.StyleFor(w)
	p.Apply(w, resolved("color", "#FF0000")) // equal style, must be a no-op
	if p.StyleFor(w).GetForeground() != first.GetForeground() {
		t.Error("expected identical paint attributes after re-apply")
	}
}

func TestPaintForget(t *testing.T) {
	p := paint.New()
	w := widget.New("Button")
	p.Apply(w, resolved("color", "#FF0000"))
	p.Forget(w)
	if fg := p.StyleFor(w).GetForeground(); fg == lipgloss.Color("#ff0000") {
		t.Error("expected paint attributes dropped after Forget")
	}
}
