package sheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/style/selector"
)

// Rule is one flattened stylesheet rule: a selector chain plus an ordered
// declaration set. Rules are immutable once parsed. The source order index
// is the final tie-break when specificity is equal, later wins.
type Rule struct {
	chain       selector.Chain
	decls       []css.Declaration
	sourceOrder int
	specificity selector.Specificity
}

// Selector returns the rule's selector chain.
func (r *Rule) Selector() selector.Chain {
	return r.chain
}

// Declarations returns the rule's declarations in source order.
func (r *Rule) Declarations() []css.Declaration {
	return r.decls
}

// SourceOrder returns the rule's position in parse order, counted across
// appended sheets.
func (r *Rule) SourceOrder() int {
	return r.sourceOrder
}

// Specificity returns the selector chain's specificity, computed once at
// parse time.
func (r *Rule) Specificity() selector.Specificity {
	return r.specificity
}

// Properties returns the property keys of the rule, e.g. "margin-top".
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.decls))
	for _, d := range r.decls {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key within this rule,
// e.g. "15".
func (r *Rule) Value(key string) style.Property {
	for _, d := range r.decls {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return style.NullStyle
}

// IsImportant returns true if a property key is marked as important ("!").
func (r *Rule) IsImportant(key string) bool {
	for _, d := range r.decls {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.chain.String())
	sb.WriteString(" {")
	for _, d := range r.decls {
		sb.WriteString(" " + d.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// --- StyleSheet -------------------------------------------------------

// StyleSheet is an ordered, immutable-after-load list of rules, together
// with the bookkeeping the re-styler needs to bound recomputation scope.
type StyleSheet struct {
	rules     []*Rule
	issues    []*VariableError
	ancestors map[string]bool // selector tokens occurring left of a combinator
	nextOrder int
}

// Empty is a predicate wether this stylesheet contains any rules.
func (s *StyleSheet) Empty() bool {
	return s == nil || len(s.rules) == 0
}

// Rules returns all the rules of the stylesheet in source order.
func (s *StyleSheet) Rules() []*Rule {
	if s == nil {
		return nil
	}
	return s.rules
}

// Unresolved returns the unresolved-variable issues collected during
// parsing. The affected declarations have been skipped.
func (s *StyleSheet) Unresolved() []*VariableError {
	if s == nil {
		return nil
	}
	return s.issues
}

// AppendRules appends all rules from another stylesheet, renumbering their
// source order so that the appended rules rank after the existing ones.
func (s *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	for _, r := range other.rules {
		nr := &Rule{
			chain:       r.chain,
			decls:       r.decls,
			specificity: r.specificity,
			sourceOrder: s.nextOrder + r.sourceOrder,
		}
		s.rules = append(s.rules, nr)
	}
	s.nextOrder += other.nextOrder
	s.issues = append(s.issues, other.issues...)
	for tok := range other.ancestors {
		s.rememberAncestorToken(tok)
	}
}

func (s *StyleSheet) rememberAncestorToken(tok string) {
	if s.ancestors == nil {
		s.ancestors = make(map[string]bool)
	}
	s.ancestors[tok] = true
}

// indexAncestors records every selector token of the non-rightmost
// compounds of a chain. The re-styler consults this index to decide
// wether a class/state change on a node can alter matching for its
// descendants at all.
func (s *StyleSheet) indexAncestors(ch selector.Chain) {
	if len(ch.Compounds) < 2 {
		return
	}
	for _, c := range ch.Compounds[:len(ch.Compounds)-1] {
		if c.Universal {
			s.rememberAncestorToken("*")
		}
		if c.Type != "" {
			s.rememberAncestorToken(c.Type)
		}
		if c.ID != "" {
			s.rememberAncestorToken("#" + c.ID)
		}
		for _, cls := range c.Classes {
			s.rememberAncestorToken(ClassToken(cls))
		}
		for _, st := range c.States {
			s.rememberAncestorToken(StateToken(st))
		}
	}
}

// AffectsDescendants reports wether a change of the given selector token
// on some node could change rule matching for the node's descendants,
// i.e. wether any rule constrains ancestry with this token.
func (s *StyleSheet) AffectsDescendants(token string) bool {
	if s == nil || s.ancestors == nil {
		return false
	}
	return s.ancestors[token] || s.ancestors["*"]
}

// ClassToken encodes a class name as a selector token for
// AffectsDescendants.
func ClassToken(cls string) string {
	return "." + cls
}

// StateToken encodes a pseudo-state name as a selector token for
// AffectsDescendants.
func StateToken(st string) string {
	return ":" + st
}

func (s *StyleSheet) addRule(ch selector.Chain, decls []css.Declaration, order int) {
	r := &Rule{
		chain:       ch,
		decls:       decls,
		sourceOrder: order,
		specificity: ch.Specificity(),
	}
	s.rules = append(s.rules, r)
	s.indexAncestors(ch)
}
