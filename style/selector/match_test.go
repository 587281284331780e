package selector_test

import (
	"testing"

	"github.com/bryanwills/posting/style/selector"
	"github.com/bryanwills/posting/widget"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildTree sets up
//
//	Screen > CommandPalette > Vertical > CommandList > OptionList
func buildTree() (screen, palette, vertical, list, options *widget.Widget) {
	screen = widget.New("Screen")
	palette = widget.New("CommandPalette")
	vertical = widget.New("Vertical")
	list = widget.New("CommandList")
	options = widget.New("OptionList")
	screen.AppendChild(palette)
	palette.AppendChild(vertical)
	vertical.AppendChild(list)
	list.AppendChild(options)
	return
}

func chainOf(types ...string) selector.Chain {
	var ch selector.Chain
	for _, ty := range types {
		ch = ch.Append(selector.Descendant, selector.Compound{Type: ty})
	}
	return ch
}

func TestMatchCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.style")
	defer teardown()
	//
	w := widget.NewWithID("Input", "url")
	w.AddClass("-invalid")
	w.SetState("focus")
	ch := selector.Chain{Compounds: []selector.Compound{
		{Type: "Input", ID: "url", Classes: []string{"-invalid"}, States: []string{"focus"}},
	}}
	if !selector.Matches(ch, w) {
		t.Error("expected compound selector to match")
	}
	w.RemoveClass("-invalid")
	if selector.Matches(ch, w) {
		t.Error("expected selector to stop matching after class removal")
	}
}

func TestMatchUniversal(t *testing.T) {
	_, _, vertical, _, _ := buildTree()
	ch := selector.Chain{Compounds: []selector.Compound{{Universal: true}}}
	if !selector.Matches(ch, vertical) {
		t.Error("expected universal selector to match any node")
	}
}

func TestMatchDescendantAnyDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.style")
	defer teardown()
	//
	_, _, _, list, _ := buildTree()
	ch := chainOf("CommandPalette", "CommandList")
	if !selector.Matches(ch, list) {
		t.Error("expected descendant combinator to match at any depth")
	}
}

func TestMatchChildImmediateOnly(t *testing.T) {
	_, _, vertical, list, _ := buildTree()
	ch := selector.Chain{
		Compounds: []selector.Compound{
			{Type: "CommandPalette"},
			{Type: "Vertical"},
		},
		Combinators: []selector.Combinator{selector.Child},
	}
	if !selector.Matches(ch, vertical) {
		t.Error("expected child combinator to match a direct child")
	}
	chList := selector.Chain{
		Compounds: []selector.Compound{
			{Type: "CommandPalette"},
			{Type: "CommandList"},
		},
		Combinators: []selector.Combinator{selector.Child},
	}
	if selector.Matches(chList, list) {
		t.Error("expected child combinator not to match across two levels")
	}
}

func TestMatchBacktracking(t *testing.T) {
	// A A B: the nearer A-ancestor is a dead end for the outer A,
	// matching has to backtrack to the farther one.
	outer := widget.New("A")
	inner := widget.New("A")
	b := widget.New("B")
	outer.AppendChild(inner)
	inner.AppendChild(b)
	ch := chainOf("A", "A", "B")
	if !selector.Matches(ch, b) {
		t.Error("expected A A B to match via backtracking")
	}
	ch3 := chainOf("A", "A", "A", "B")
	if selector.Matches(ch3, b) {
		t.Error("expected A A A B not to match with only two A ancestors")
	}
}

func TestMatchPseudoStateIsLive(t *testing.T) {
	_, palette, _, list, _ := buildTree()
	ch := selector.Chain{
		Compounds: []selector.Compound{
			{Type: "CommandPalette", States: []string{"focus-within"}},
			{Type: "CommandList"},
		},
		Combinators: []selector.Combinator{selector.Descendant},
	}
	if selector.Matches(ch, list) {
		t.Error("expected no match while focus-within is inactive")
	}
	palette.SetState("focus-within")
	if !selector.Matches(ch, list) {
		t.Error("expected match once the ancestor state is active")
	}
}
