/*
Package selector models stylesheet selectors as composable chains and
matches them against live widget nodes.

A selector chain is an ordered sequence of compound selectors joined by
combinators:

	CommandPalette > Vertical OptionList.-compact:focus

Chains are built once, at parse time: nested rule blocks and `&`
self-references are flattened into plain chains by the sheet parser, so
matching never has to interpret nesting at runtime.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package selector

import "strings"

// Combinator joins two compound selectors within a chain.
type Combinator uint8

const (
	// Descendant matches an ancestor at any depth (whitespace combinator).
	Descendant Combinator = iota
	// Child matches the immediate parent only ('>' combinator).
	Child
)

func (c Combinator) String() string {
	if c == Child {
		return " > "
	}
	return " "
}

// Compound is one selector component: an optional type name (or the
// universal selector), an optional id, and sets of required classes and
// pseudo-states. All constraints of a compound must hold simultaneously
// for a node to match, e.g. `Input.-invalid:focus`.
type Compound struct {
	Type      string   // widget type name, empty for none
	Universal bool     // '*', matches any node
	ID        string   // '#id', empty for none
	Classes   []string // '.class' components, exact membership tests
	States    []string // ':pseudo' components, tested against live state
}

// IsEmpty is a predicate wether the compound carries no constraint at all.
func (c Compound) IsEmpty() bool {
	return !c.Universal && c.Type == "" && c.ID == "" &&
		len(c.Classes) == 0 && len(c.States) == 0
}

func (c Compound) String() string {
	var sb strings.Builder
	if c.Universal {
		sb.WriteString("*")
	}
	sb.WriteString(c.Type)
	if c.ID != "" {
		sb.WriteString("#" + c.ID)
	}
	for _, cls := range c.Classes {
		sb.WriteString("." + cls)
	}
	for _, st := range c.States {
		sb.WriteString(":" + st)
	}
	return sb.String()
}

// Chain is an ordered sequence of compounds with combinators between them.
// The rightmost compound constrains the matched node itself; compounds to
// the left constrain its ancestry. Invariant:
// len(Combinators) == len(Compounds)-1 for non-empty chains.
type Chain struct {
	Compounds   []Compound
	Combinators []Combinator
}

func (ch Chain) String() string {
	var sb strings.Builder
	for i, c := range ch.Compounds {
		if i > 0 {
			sb.WriteString(ch.Combinators[i-1].String())
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Append returns a new chain with a compound attached at the right end.
func (ch Chain) Append(comb Combinator, c Compound) Chain {
	nch := Chain{
		Compounds:   make([]Compound, 0, len(ch.Compounds)+1),
		Combinators: make([]Combinator, 0, len(ch.Compounds)),
	}
	nch.Compounds = append(nch.Compounds, ch.Compounds...)
	nch.Combinators = append(nch.Combinators, ch.Combinators...)
	if len(nch.Compounds) > 0 {
		nch.Combinators = append(nch.Combinators, comb)
	}
	nch.Compounds = append(nch.Compounds, c)
	return nch
}

// Extend returns the concatenation of two chains, joined by comb. Nested
// rule blocks use this to inherit their enclosing block's selector context.
func (ch Chain) Extend(comb Combinator, tail Chain) Chain {
	nch := ch
	for i, c := range tail.Compounds {
		if i == 0 {
			nch = nch.Append(comb, c)
		} else {
			nch = nch.Append(tail.Combinators[i-1], c)
		}
	}
	return nch
}

// MergeLast returns a new chain whose last compound is merged with c.
// This implements the `&` self-reference of nested blocks: `&.-invalid`
// inside an `Input` block yields the compound `Input.-invalid`.
func (ch Chain) MergeLast(c Compound) Chain {
	if len(ch.Compounds) == 0 {
		return Chain{Compounds: []Compound{c}}
	}
	nch := Chain{
		Compounds:   append([]Compound{}, ch.Compounds...),
		Combinators: append([]Combinator{}, ch.Combinators...),
	}
	last := nch.Compounds[len(nch.Compounds)-1]
	if c.Type != "" {
		last.Type = c.Type
	}
	if c.Universal {
		last.Universal = true
	}
	if c.ID != "" {
		last.ID = c.ID
	}
	last.Classes = append(append([]string{}, last.Classes...), c.Classes...)
	last.States = append(append([]string{}, last.States...), c.States...)
	nch.Compounds[len(nch.Compounds)-1] = last
	return nch
}

// --- Specificity ------------------------------------------------------

// Specificity is the tiered ranking used to pick among multiple matching
// rules: id count, class plus pseudo-state count, type count. Ties are
// broken by source order, which is not part of the specificity itself.
type Specificity [3]int

// Specificity computes the specificity of a whole chain.
func (ch Chain) Specificity() Specificity {
	var s Specificity
	for _, c := range ch.Compounds {
		if c.ID != "" {
			s[0]++
		}
		s[1] += len(c.Classes) + len(c.States)
		if c.Type != "" {
			s[2]++
		}
	}
	return s
}

// Compare returns -1, 0 or 1 as s ranks below, equal to, or above other.
func (s Specificity) Compare(other Specificity) int {
	for i := 0; i < 3; i++ {
		if s[i] != other[i] {
			if s[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
