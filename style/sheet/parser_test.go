package sheet_test

import (
	"errors"
	"testing"

	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/style/selector"
	"github.com/bryanwills/posting/style/sheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// vars is a minimal theme lookup for testing.
type vars map[string]string

func (v vars) Resolve(name string) (style.Property, bool) {
	val, ok := v[name]
	return style.Property(val), ok
}

var testVars = vars{
	"accent":  "#FF69B4",
	"error":   "#FF4500",
	"primary": "#8A2BE2",
}

func TestParseSimpleRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.sheet")
	defer teardown()
	//
	s, err := sheet.Parse(`Button { padding: 0 1; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	rules := s.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, have %d", len(rules))
	}
	if sel := rules[0].Selector().String(); sel != "Button" {
		t.Errorf("expected selector Button, have %q", sel)
	}
	if v := rules[0].Value("padding"); v != "0 1" {
		t.Errorf("expected padding '0 1', have %q", v)
	}
}

func TestParseCompoundSelector(t *testing.T) {
	s, err := sheet.Parse(`Input.-invalid#url:focus { color: red; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	sel := s.Rules()[0].Selector()
	if sel.String() != "Input#url.-invalid:focus" {
		t.Errorf("unexpected selector: %q", sel.String())
	}
	if len(sel.Compounds) != 1 {
		t.Errorf("expected a single compound, have %d", len(sel.Compounds))
	}
}

func TestParseCombinators(t *testing.T) {
	src := `
CommandPalette CommandList { height: auto; }
CommandPalette > Vertical { margin-top: 1; }
`
	s, err := sheet.Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	rules := s.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, have %d", len(rules))
	}
	if rules[0].Selector().Combinators[0] != selector.Descendant {
		t.Error("expected first rule to use the descendant combinator")
	}
	if rules[1].Selector().String() != "CommandPalette > Vertical" {
		t.Errorf("unexpected selector: %q", rules[1].Selector().String())
	}
}

func TestParseNestedBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.sheet")
	defer teardown()
	//
	src := `
Input {
    border: tall $accent;

    &.-invalid {
        border-left: outer $error;
    }

    &:focus {
        border: tall $primary;
    }

    CompletionList {
        display: none;
    }

    > Hint {
        color: $accent;
    }
}
`
	s, err := sheet.Parse(src, testVars)
	if err != nil {
		t.Fatal(err)
	}
	rules := s.Rules()
	if len(rules) != 5 {
		t.Fatalf("expected 5 flattened rules, have %d", len(rules))
	}
	wantSelectors := []string{
		"Input",
		"Input.-invalid",
		"Input:focus",
		"Input CompletionList",
		"Input > Hint",
	}
	for i, want := range wantSelectors {
		if got := rules[i].Selector().String(); got != want {
			t.Errorf("rule %d: expected selector %q, have %q", i, want, got)
		}
	}
	// the enclosing block's declarations rank first in source order
	if rules[0].SourceOrder() >= rules[1].SourceOrder() {
		t.Error("expected enclosing block to rank before its nested blocks")
	}
	if v := rules[1].Value("border-left"); v != "outer #FF4500" {
		t.Errorf("expected substituted variable value, have %q", v)
	}
}

func TestParseSelectorGroup(t *testing.T) {
	s, err := sheet.Parse(`Header, Footer { background: #111111; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	rules := s.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected one rule per group selector, have %d", len(rules))
	}
	if rules[0].SourceOrder() != rules[1].SourceOrder() {
		t.Error("expected group rules to share their source position")
	}
}

func TestParseImportant(t *testing.T) {
	s, err := sheet.Parse(`Button { color: red !important; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := s.Rules()[0]
	if !r.IsImportant("color") {
		t.Error("expected color to be marked important")
	}
	if v := r.Value("color"); v != "red" {
		t.Errorf("expected value 'red' without the priority marker, have %q", v)
	}
}

func TestParseUnknownPropertyRetained(t *testing.T) {
	s, err := sheet.Parse(`Button { grok-factor: 11; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v := s.Rules()[0].Value("grok-factor"); v != "11" {
		t.Errorf("expected unknown property to be retained, have %q", v)
	}
}

func TestParseUnresolvedVariableSkipsDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.sheet")
	defer teardown()
	//
	src := `Button { color: $no-such-color; padding: 1; }`
	s, err := sheet.Parse(src, testVars)
	if err != nil {
		t.Fatal(err)
	}
	r := s.Rules()[0]
	if r.Value("color") != style.NullStyle {
		t.Error("expected the unresolved declaration to be skipped")
	}
	if r.Value("padding") != "1" {
		t.Error("expected the following declaration to survive")
	}
	issues := s.Unresolved()
	if len(issues) != 1 {
		t.Fatalf("expected 1 unresolved-variable issue, have %d", len(issues))
	}
	if issues[0].Name != "no-such-color" {
		t.Errorf("expected issue for no-such-color, have %q", issues[0].Name)
	}
	if !errors.Is(issues[0], sheet.ErrUnresolvedVariable) {
		t.Error("expected issue to wrap ErrUnresolvedVariable")
	}
}

func TestParseErrorsRejectSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "posting.sheet")
	defer teardown()
	//
	cases := []struct {
		name string
		src  string
	}{
		{"unterminated block", `Button { color: red;`},
		{"stray close", `}`},
		{"toplevel declaration", `color: red;`},
		{"toplevel ampersand", `&:focus { color: red; }`},
		{"missing value", `Button { color: ; }`},
		{"missing colon", `Button { color red; }`},
		{"bad bang", `Button { color: red !urgent; }`},
	}
	for _, tc := range cases {
		if _, err := sheet.Parse(tc.src, nil); err == nil {
			t.Errorf("%s: expected a parse error, got none", tc.name)
		} else {
			var perr *sheet.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("%s: expected a *ParseError, have %T", tc.name, err)
			} else if perr.Line == 0 && perr.Column == 0 && perr.Token != "" {
				t.Errorf("%s: expected a location on the error", tc.name)
			}
		}
	}
}

func TestAppendRulesRenumbers(t *testing.T) {
	a, err := sheet.Parse(`Button { color: red; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := sheet.Parse(`Button { color: blue; }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	a.AppendRules(b)
	rules := a.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules after append, have %d", len(rules))
	}
	if rules[1].SourceOrder() <= rules[0].SourceOrder() {
		t.Error("expected appended rules to rank after existing ones")
	}
}

func TestAffectsDescendants(t *testing.T) {
	src := `
App:focus-within CommandList { color: red; }
Button:hover { color: blue; }
`
	s, err := sheet.Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !s.AffectsDescendants(sheet.StateToken("focus-within")) {
		t.Error("expected focus-within to affect descendants (ancestor position)")
	}
	if s.AffectsDescendants(sheet.StateToken("hover")) {
		t.Error("expected hover not to affect descendants (rightmost position only)")
	}
}
