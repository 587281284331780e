package widget

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import (
	"sort"
	"strings"

	"github.com/bryanwills/posting/style"
	"github.com/bryanwills/posting/style/selector"
	"github.com/bryanwills/posting/tree"
)

// Well-known pseudo-states. State names are open-ended; the styling
// engine treats any string the interaction layer sets as a testable
// pseudo-state (e.g. "focus-within").
const (
	StateFocus    = "focus"
	StateBlur     = "blur"
	StateHover    = "hover"
	StateDisabled = "disabled"
	StateEnabled  = "enabled"
)

// Widget is a styleable node, the building block of the widget tree.
type Widget struct {
	tree.Node[*Widget] // we build on top of general purpose tree
	typeName           string
	id                 string
	classes            map[string]bool
	states             map[string]bool
	computedStyles     style.ResolvedStyle
}

// New creates a widget with a given type tag, e.g. "Input" or "Button".
func New(typeName string) *Widget {
	w := &Widget{typeName: typeName}
	w.Payload = w // Payload will always reference the widget itself
	return w
}

// NewWithID creates a widget with a type tag and an id.
func NewWithID(typeName, id string) *Widget {
	w := New(typeName)
	w.id = id
	return w
}

// FromNode gets the widget from a generic tree node.
func FromNode(n *tree.Node[*Widget]) *Widget {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TypeName returns the widget's type tag.
func (w *Widget) TypeName() string {
	return w.typeName
}

// ID returns the widget's id, or "" if it has none.
func (w *Widget) ID() string {
	return w.id
}

// AppendChild mounts a child widget under w and returns w for chaining.
func (w *Widget) AppendChild(ch *Widget) *Widget {
	if ch != nil {
		w.AddChild(&ch.Node)
	}
	return w
}

// ParentWidget returns the parent widget or nil for the root.
func (w *Widget) ParentWidget() *Widget {
	p := w.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// ParentNode is part of interface selector.Node.
func (w *Widget) ParentNode() selector.Node {
	p := w.ParentWidget()
	if p == nil {
		return nil // untyped nil, so selector code can test against nil
	}
	return p
}

// --- Classes and pseudo-states ----------------------------------------

// HasClass is part of interface selector.Node.
func (w *Widget) HasClass(cls string) bool {
	return w.classes[cls]
}

// AddClass adds a class to the widget's class set. It reports wether the
// set actually changed.
func (w *Widget) AddClass(cls string) bool {
	if w.classes[cls] {
		return false
	}
	if w.classes == nil {
		w.classes = make(map[string]bool)
	}
	w.classes[cls] = true
	return true
}

// RemoveClass removes a class from the widget's class set. It reports
// wether the set actually changed.
func (w *Widget) RemoveClass(cls string) bool {
	if !w.classes[cls] {
		return false
	}
	delete(w.classes, cls)
	return true
}

// Classes returns the widget's classes in sorted order.
func (w *Widget) Classes() []string {
	cls := make([]string, 0, len(w.classes))
	for c := range w.classes {
		cls = append(cls, c)
	}
	sort.Strings(cls)
	return cls
}

// HasState is part of interface selector.Node.
func (w *Widget) HasState(st string) bool {
	return w.states[st]
}

// SetState activates a pseudo-state. It reports wether the state set
// actually changed.
func (w *Widget) SetState(st string) bool {
	if w.states[st] {
		return false
	}
	if w.states == nil {
		w.states = make(map[string]bool)
	}
	w.states[st] = true
	return true
}

// ClearState deactivates a pseudo-state. It reports wether the state set
// actually changed.
func (w *Widget) ClearState(st string) bool {
	if !w.states[st] {
		return false
	}
	delete(w.states, st)
	return true
}

// States returns the widget's active pseudo-states in sorted order.
func (w *Widget) States() []string {
	sts := make([]string, 0, len(w.states))
	for s := range w.states {
		sts = append(sts, s)
	}
	sort.Strings(sts)
	return sts
}

// --- Computed styles --------------------------------------------------

// Styles returns the widget's currently resolved style. nil until the
// cascade resolver has styled the widget.
func (w *Widget) Styles() style.ResolvedStyle {
	return w.computedStyles
}

// SetStyles sets the resolved style of a widget. Called by the cascade
// resolver; clients should treat the resolved style as read-only.
func (w *Widget) SetStyles(styles style.ResolvedStyle) {
	w.computedStyles = styles
}

func (w *Widget) String() string {
	var sb strings.Builder
	sb.WriteString(w.typeName)
	if w.id != "" {
		sb.WriteString("#" + w.id)
	}
	for _, c := range w.Classes() {
		sb.WriteString("." + c)
	}
	for _, s := range w.States() {
		sb.WriteString(":" + s)
	}
	return sb.String()
}

var _ selector.Node = &Widget{}
