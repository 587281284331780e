package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import (
	"sort"

	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/style/selector"
	"github.com/bryanwills/posting/style/sheet"
	"github.com/bryanwills/posting/widget"
)

// Applier pushes a freshly resolved style into the rendering layer's paint
// attributes. Package paint provides the default implementation.
type Applier interface {
	Apply(w *widget.Widget, rs style.ResolvedStyle)
}

// Styler owns cascade resolution for one widget tree and one rule set.
//
// Resolved styles are memoized per widget. A memo entry stays valid until
// a change notification invalidates it — for the changed widget itself
// and, where the rule set constrains ancestry, for its descendants. After
// a mutation completes no stale style can be observed: reads recompute
// lazily, batch commits recompute eagerly.
type Styler struct {
	sheet   *sheet.StyleSheet
	applier Applier
	gen     uint64 // logical state-change batch counter
	memo    map[*widget.Widget]*memoEntry
	dirty   map[*widget.Widget]scope // pending eager recomputations
	open    bool                     // a batch is open
}

type memoEntry struct {
	styles style.ResolvedStyle
	gen    uint64 // batch during which this entry was computed
}

type scope struct {
	subtree bool
}

// NewStyler creates a Styler for a parsed stylesheet. The rule list is
// treated as immutable; replace it via Reload.
func NewStyler(s *sheet.StyleSheet) *Styler {
	return &Styler{
		sheet: s,
		memo:  make(map[*widget.Widget]*memoEntry),
		dirty: make(map[*widget.Widget]scope),
	}
}

// SetApplier installs the style application layer. May be nil, in which
// case resolved styles are only stored on the widgets.
func (st *Styler) SetApplier(a Applier) {
	st.applier = a
}

// Sheet returns the styler's current rule set.
func (st *Styler) Sheet() *sheet.StyleSheet {
	return st.sheet
}

// Reload replaces the rule set, e.g. after a stylesheet file changed on
// disk. All memoized styles are invalidated.
func (st *Styler) Reload(s *sheet.StyleSheet) {
	st.sheet = s
	st.memo = make(map[*widget.Widget]*memoEntry)
	tracer().Infof("stylesheet reloaded, all styles invalidated")
}

// MatchingRules collects all rules whose selector chain matches the given
// widget, in source order.
func (st *Styler) MatchingRules(w *widget.Widget) []*sheet.Rule {
	var matching []*sheet.Rule
	for _, r := range st.sheet.Rules() {
		if selector.Matches(r.Selector(), w) {
			matching = append(matching, r)
		}
	}
	return matching
}

// Resolve returns the widget's resolved style, recomputing only when the
// memoized result has been invalidated by a change notification.
// Re-resolving twice without an intervening state change yields identical
// results.
func (st *Styler) Resolve(w *widget.Widget) style.ResolvedStyle {
	if e, ok := st.memo[w]; ok {
		return e.styles
	}
	return st.recompute(w)
}

// recompute resolves unconditionally within the current batch and stores
// the result both in the memo and on the widget.
func (st *Styler) recompute(w *widget.Widget) style.ResolvedStyle {
	rs := st.resolve(w)
	st.memo[w] = &memoEntry{styles: rs, gen: st.gen}
	w.SetStyles(rs)
	return rs
}

// resolve is the pure resolution function: matching rules × current state
// sets → resolved style. For each declared property the winning value is
// picked by (a) importance, (b) higher specificity — id over class/pseudo
// count over type — and (c) later source order on ties.
func (st *Styler) resolve(w *widget.Widget) style.ResolvedStyle {
	matching := st.MatchingRules(w)
	sort.SliceStable(matching, func(i, j int) bool {
		c := matching[i].Specificity().Compare(matching[j].Specificity())
		if c != 0 {
			return c < 0
		}
		return matching[i].SourceOrder() < matching[j].SourceOrder()
	})
	rs := make(style.ResolvedStyle)
	for _, r := range matching {
		for _, d := range r.Declarations() {
			if cur, ok := rs[d.Property]; ok && cur.Important && !d.Important {
				continue // importance beats specificity and order
			}
			rs[d.Property] = d
		}
	}
	tracer().P("widget", w.String()).Debugf("resolved %d properties from %d rules",
		len(rs), len(matching))
	return rs
}
