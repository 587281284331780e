package selector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'posting.style'.
func tracer() tracing.Trace {
	return tracing.Select("posting.style")
}

// Node is the matcher's view of a widget. The engine de-couples selector
// matching from any concrete widget implementation by introducing this
// interface; package widget provides the live implementation.
type Node interface {
	TypeName() string         // widget type tag, e.g. "Input"
	ID() string               // widget id or empty
	HasClass(cls string) bool // exact class membership
	HasState(st string) bool  // pseudo-state, evaluated against live state
	ParentNode() Node         // parent or nil for the root
}

// Matches reports wether a selector chain matches a node, given the node's
// current classes, pseudo-states and ancestry.
//
// Matching proceeds right-to-left: the rightmost compound must match the
// node itself; each combinator then constrains ancestors. A child
// combinator pins the immediate parent, a descendant combinator may match
// any ancestor, with backtracking: for a chain like `A B C` every
// ancestor matching B is a candidate anchor for the remaining `A`.
func Matches(ch Chain, n Node) bool {
	if len(ch.Compounds) == 0 || n == nil {
		return false
	}
	last := len(ch.Compounds) - 1
	if !matchCompound(ch.Compounds[last], n) {
		return false
	}
	ok := matchLeft(ch, last-1, n)
	if ok {
		tracer().P("selector", ch.String()).Debugf("matched node %s", n.TypeName())
	}
	return ok
}

// matchLeft matches compound i (and everything left of it) against the
// ancestry of n. n is the node which compound i+1 matched.
func matchLeft(ch Chain, i int, n Node) bool {
	if i < 0 {
		return true
	}
	switch ch.Combinators[i] {
	case Child:
		p := n.ParentNode()
		if p == nil || !matchCompound(ch.Compounds[i], p) {
			return false
		}
		return matchLeft(ch, i-1, p)
	default: // Descendant
		for p := n.ParentNode(); p != nil; p = p.ParentNode() {
			if matchCompound(ch.Compounds[i], p) && matchLeft(ch, i-1, p) {
				return true
			}
		}
		return false
	}
}

func matchCompound(c Compound, n Node) bool {
	if c.Type != "" && c.Type != n.TypeName() {
		return false
	}
	if c.ID != "" && c.ID != n.ID() {
		return false
	}
	for _, cls := range c.Classes {
		if !n.HasClass(cls) {
			return false
		}
	}
	for _, st := range c.States {
		if !n.HasState(st) {
			return false
		}
	}
	return true
}
