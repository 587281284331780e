package sheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/style/selector"
	"github.com/gorilla/css/scanner"
)

// VariableLookup supplies concrete values for `$name` references. The
// theme is an external collaborator; injecting it as a read-only lookup
// keeps parsing testable in isolation. A nil lookup leaves every variable
// unresolved.
type VariableLookup interface {
	Resolve(name string) (style.Property, bool)
}

// Parse converts stylesheet text into a StyleSheet. Rules are flattened
// (nesting and `&` resolved into plain selector chains) and numbered by
// source order. A malformed sheet yields a *ParseError and no sheet at
// all; unresolved `$variables` merely skip their declaration and are
// reported via StyleSheet.Unresolved.
func Parse(src string, vars VariableLookup) (*StyleSheet, error) {
	p := &parser{vars: vars, sheet: &StyleSheet{}}
	p.tokenize(src)
	if _, err := p.parseBlockBody(nil, 0); err != nil {
		return nil, err
	}
	p.sheet.nextOrder = p.order
	// nested blocks close before their enclosing block emits, so bring the
	// rule list back into source order
	sort.SliceStable(p.sheet.rules, func(i, j int) bool {
		return p.sheet.rules[i].sourceOrder < p.sheet.rules[j].sourceOrder
	})
	tracer().Debugf("parsed stylesheet with %d rules", len(p.sheet.rules))
	return p.sheet, nil
}

// ParseFile loads and parses one stylesheet file. On a parse error the
// file is rejected as a whole.
func ParseFile(path string, vars VariableLookup) (*StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	s, err := Parse(string(data), vars)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	return s, nil
}

// --- Parser -----------------------------------------------------------

type parser struct {
	tokens []*scanner.Token
	pos    int
	vars   VariableLookup
	sheet  *StyleSheet
	order  int
}

func (p *parser) tokenize(src string) {
	s := scanner.New(src)
	for {
		t := s.Next()
		if t.Type == scanner.TokenEOF {
			return
		}
		if t.Type == scanner.TokenComment || t.Type == scanner.TokenBOM ||
			t.Type == scanner.TokenCDO || t.Type == scanner.TokenCDC {
			continue
		}
		p.tokens = append(p.tokens, t)
		if t.Type == scanner.TokenError {
			return
		}
	}
}

func (p *parser) peek() *scanner.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return p.tokens[p.pos]
}

func (p *parser) next() *scanner.Token {
	t := p.peek()
	if t != nil {
		p.pos++
	}
	return t
}

func isChar(t *scanner.Token, ch string) bool {
	return t != nil && t.Type == scanner.TokenChar && t.Value == ch
}

func (p *parser) skipSpace() {
	for t := p.peek(); t != nil && t.Type == scanner.TokenS; t = p.peek() {
		p.pos++
	}
}

func (p *parser) consumeChar(ch string) bool {
	if isChar(p.peek(), ch) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorAt(t *scanner.Token, reason string) error {
	if t == nil {
		line, col := 0, 0
		if len(p.tokens) > 0 {
			last := p.tokens[len(p.tokens)-1]
			line, col = last.Line, last.Column
		}
		return &ParseError{Line: line, Column: col, Reason: reason}
	}
	return &ParseError{Line: t.Line, Column: t.Column, Token: t.Value, Reason: reason}
}

// nextIsRule looks ahead to disambiguate `Input:focus {` from
// `border: tall;`. Whichever of '{' or ';'/'}' comes first decides.
func (p *parser) nextIsRule() bool {
	for i := p.pos; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if t.Type != scanner.TokenChar {
			continue
		}
		switch t.Value {
		case "{":
			return true
		case ";", "}":
			return false
		}
	}
	return false
}

// parseBlockBody parses the inside of a rule block (or, at depth 0, the
// whole sheet). It returns the block's own declarations; nested blocks
// emit their flattened rules directly into the sheet. The order index for
// a block is reserved when the block opens, so a block's declarations
// always rank before those of its nested blocks, whatever the textual
// interleaving.
func (p *parser) parseBlockBody(ctx []selector.Chain, depth int) ([]css.Declaration, error) {
	var decls []css.Declaration
	for {
		p.skipSpace()
		for p.consumeChar(";") {
			p.skipSpace()
		}
		t := p.peek()
		if t == nil {
			if depth > 0 {
				return nil, p.errorAt(nil, "unterminated block")
			}
			return decls, nil
		}
		if t.Type == scanner.TokenError {
			return nil, p.errorAt(t, "bad token")
		}
		if isChar(t, "}") {
			if depth == 0 {
				return nil, p.errorAt(t, "unexpected '}'")
			}
			p.next()
			return decls, nil
		}
		if p.nextIsRule() {
			group, err := p.parseSelectorGroup(ctx, depth)
			if err != nil {
				return nil, err
			}
			p.skipSpace()
			if !p.consumeChar("{") {
				return nil, p.errorAt(p.peek(), "expected '{'")
			}
			reserved := p.order
			p.order++
			inner, err := p.parseBlockBody(group, depth+1)
			if err != nil {
				return nil, err
			}
			if len(inner) > 0 {
				for _, ch := range group {
					p.sheet.addRule(ch, inner, reserved)
				}
			}
		} else {
			if depth == 0 {
				return nil, p.errorAt(t, "declaration outside of a rule block")
			}
			d, skip, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			if !skip {
				decls = append(decls, d)
			}
		}
	}
}

// --- Selectors --------------------------------------------------------

// partial is one selector of a group as written, before combination with
// the enclosing block's selector context.
type partial struct {
	anchored bool                // selector started with '&'
	lead     selector.Combinator // combinator joining to the parent context
	chain    selector.Chain
}

func (p *parser) parseSelectorGroup(ctx []selector.Chain, depth int) ([]selector.Chain, error) {
	var group []selector.Chain
	for {
		part, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		if depth == 0 && part.anchored {
			return nil, p.errorAt(p.peek(), "'&' outside of a rule block")
		}
		if depth == 0 && part.lead == selector.Child {
			return nil, p.errorAt(p.peek(), "combinator without left-hand selector")
		}
		group = append(group, combine(ctx, part)...)
		p.skipSpace()
		if !p.consumeChar(",") {
			return group, nil
		}
	}
}

func combine(ctx []selector.Chain, part partial) []selector.Chain {
	if len(ctx) == 0 {
		return []selector.Chain{part.chain}
	}
	out := make([]selector.Chain, 0, len(ctx))
	for _, parent := range ctx {
		if part.anchored {
			nch := parent
			if len(part.chain.Compounds) > 0 {
				nch = parent.MergeLast(part.chain.Compounds[0])
				for i := 1; i < len(part.chain.Compounds); i++ {
					nch = nch.Append(part.chain.Combinators[i-1], part.chain.Compounds[i])
				}
			}
			out = append(out, nch)
		} else {
			out = append(out, parent.Extend(part.lead, part.chain))
		}
	}
	return out
}

// parseSelector parses a single selector up to (not consuming) ',' or '{'.
func (p *parser) parseSelector() (partial, error) {
	part := partial{lead: selector.Descendant}
	var chain selector.Chain
	var comp selector.Compound
	compActive := false
	linkComb := selector.Descendant // joins chain's last compound to comp
	var sep *selector.Combinator    // separator seen after comp ended

	push := func() {
		if !compActive {
			return
		}
		if len(chain.Compounds) == 0 {
			chain = selector.Chain{Compounds: []selector.Compound{comp}}
		} else {
			chain = chain.Append(linkComb, comp)
		}
		comp = selector.Compound{}
		compActive = false
	}
	begin := func() {
		if compActive && sep != nil {
			c := *sep
			push()
			linkComb = c
			sep = nil
		}
		if !compActive && sep != nil {
			// leading combinator of a nested selector, e.g. `> Vertical`
			part.lead = *sep
			sep = nil
		}
		compActive = true
	}

	for {
		t := p.peek()
		if t == nil {
			return part, p.errorAt(nil, "unterminated selector")
		}
		switch {
		case t.Type == scanner.TokenS:
			p.next()
			if compActive && sep == nil {
				d := selector.Descendant
				sep = &d
			}
		case isChar(t, ","), isChar(t, "{"):
			push()
			if len(chain.Compounds) == 0 && !part.anchored {
				return part, p.errorAt(t, "empty selector")
			}
			part.chain = chain
			return part, nil
		case isChar(t, ">"):
			p.next()
			if !compActive && len(chain.Compounds) == 0 && part.anchored {
				return part, p.errorAt(t, "combinator directly after '&'")
			}
			c := selector.Child
			sep = &c
		case t.Type == scanner.TokenIdent:
			p.next()
			begin()
			if comp.Type != "" {
				return part, p.errorAt(t, "two type names in one selector component")
			}
			comp.Type = t.Value
		case t.Type == scanner.TokenHash:
			p.next()
			begin()
			comp.ID = strings.TrimPrefix(t.Value, "#")
		case isChar(t, "*"):
			p.next()
			begin()
			comp.Universal = true
		case isChar(t, "&"):
			p.next()
			if len(chain.Compounds) > 0 || compActive {
				return part, p.errorAt(t, "misplaced '&'")
			}
			part.anchored = true
			begin()
		case isChar(t, "."):
			p.next()
			id := p.peek()
			if id == nil || id.Type != scanner.TokenIdent {
				return part, p.errorAt(id, "expected class name after '.'")
			}
			p.next()
			begin()
			comp.Classes = append(comp.Classes, id.Value)
		case isChar(t, ":"):
			p.next()
			id := p.peek()
			if id == nil || id.Type != scanner.TokenIdent {
				return part, p.errorAt(id, "expected pseudo-state name after ':'")
			}
			p.next()
			begin()
			comp.States = append(comp.States, id.Value)
		default:
			return part, p.errorAt(t, "unexpected token in selector")
		}
	}
}

// --- Declarations -----------------------------------------------------

// parseDeclaration parses `property: value tokens… [!important] ;`.
// The skip return is true when the declaration referenced an unresolvable
// theme variable and has to be treated as absent.
func (p *parser) parseDeclaration() (css.Declaration, bool, error) {
	t := p.next()
	if t == nil || t.Type != scanner.TokenIdent {
		return css.Declaration{}, false, p.errorAt(t, "expected property name")
	}
	prop := t.Value
	p.skipSpace()
	if !p.consumeChar(":") {
		return css.Declaration{}, false, p.errorAt(p.peek(), "expected ':' after property name")
	}
	var parts []string
	important := false
	skip := false
	for {
		t := p.peek()
		if t == nil {
			return css.Declaration{}, false, p.errorAt(nil, "unterminated declaration")
		}
		if isChar(t, ";") {
			p.next()
			break
		}
		if isChar(t, "}") {
			break // block end closes the last declaration
		}
		switch {
		case t.Type == scanner.TokenS:
			p.next()
		case t.Type == scanner.TokenError:
			return css.Declaration{}, false, p.errorAt(t, "bad token in declaration value")
		case isChar(t, "{"):
			return css.Declaration{}, false, p.errorAt(t, "unexpected '{' in declaration value")
		case isChar(t, "$"):
			p.next()
			id := p.peek()
			if id == nil || id.Type != scanner.TokenIdent {
				return css.Declaration{}, false, p.errorAt(id, "expected variable name after '$'")
			}
			p.next()
			if p.vars != nil {
				if v, ok := p.vars.Resolve(id.Value); ok {
					parts = append(parts, v.String())
					continue
				}
			}
			tracer().P("variable", id.Value).Infof("skipping declaration '%s': unresolved variable", prop)
			p.sheet.issues = append(p.sheet.issues, &VariableError{
				Name: id.Value, Line: id.Line, Column: id.Column,
			})
			skip = true
		case isChar(t, "!"):
			p.next()
			p.skipSpace()
			id := p.peek()
			if id == nil || id.Type != scanner.TokenIdent || id.Value != "important" {
				return css.Declaration{}, false, p.errorAt(id, "expected 'important' after '!'")
			}
			p.next()
			important = true
		default:
			p.next()
			parts = append(parts, t.Value)
		}
	}
	if len(parts) == 0 && !skip {
		return css.Declaration{}, false, p.errorAt(t, "missing value for property "+prop)
	}
	return css.Declaration{
		Property:  prop,
		Value:     strings.Join(parts, " "),
		Important: important,
	}, skip, nil
}
