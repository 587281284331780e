package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import (
	"github.com/bryanwills/posting/style/sheet"
	"github.com/bryanwills/posting/tree"
	"github.com/bryanwills/posting/widget"
)

// ChangeKind names a widget mutation the re-styler reacts to.
type ChangeKind uint8

const (
	ClassAdded ChangeKind = iota
	ClassRemoved
	StateSet
	StateCleared
	Mounted
	Unmounted
)

func (k ChangeKind) String() string {
	switch k {
	case ClassAdded:
		return "class-added"
	case ClassRemoved:
		return "class-removed"
	case StateSet:
		return "state-set"
	case StateCleared:
		return "state-cleared"
	case Mounted:
		return "mounted"
	case Unmounted:
		return "unmounted"
	}
	return "unknown"
}

// Notifier is the change-notification interface the UI framework calls
// into whenever a widget mutates. token is the class or state name for
// class/state changes and empty for mount/unmount.
type Notifier interface {
	NotifyChange(w *widget.Widget, kind ChangeKind, token string)
}

var _ Notifier = &Styler{}

// NotifyChange invalidates the memoized styles affected by a mutation and
// schedules recomputation. Outside an open batch the notification forms a
// one-change batch and is processed immediately; within a batch (see
// Begin/Commit) notifications coalesce, so one UI tick re-resolves every
// affected widget at most once.
//
// Recomputation scope is bounded: descendants are only invalidated when
// the changed token occurs left of a combinator somewhere in the rule set
// (e.g. a `:focus-within` ancestor rule) — otherwise a change can only
// alter matching for the node itself.
func (st *Styler) NotifyChange(w *widget.Widget, kind ChangeKind, token string) {
	if w == nil {
		return
	}
	switch kind {
	case Unmounted:
		// the subtree left the tree: forget it, nothing to recompute
		st.forgetSubtree(w)
		return
	case Mounted:
		st.invalidate(w, scope{subtree: true})
	case ClassAdded, ClassRemoved:
		sub := st.sheet.AffectsDescendants(sheet.ClassToken(token))
		st.invalidate(w, scope{subtree: sub})
	case StateSet, StateCleared:
		sub := st.sheet.AffectsDescendants(sheet.StateToken(token))
		st.invalidate(w, scope{subtree: sub})
	}
	tracer().P("widget", w.String()).Debugf("change %s(%s) noted", kind, token)
	if !st.open {
		st.commit()
	}
}

// Begin opens a coalescing batch. Change notifications are collected and
// processed together on Commit — the usual pattern is one batch per UI
// tick.
func (st *Styler) Begin() {
	st.open = true
}

// Commit processes all coalesced change notifications and closes the
// batch. Every affected widget is recomputed at most once, even when
// several overlapping notifications name it. Notifications triggered
// re-entrantly while committing (e.g. from an Applier) start a follow-up
// batch, which Commit drains before returning.
func (st *Styler) Commit() {
	st.open = false
	st.commit()
}

func (st *Styler) commit() {
	for len(st.dirty) > 0 {
		st.gen++
		batch := st.dirty
		st.dirty = make(map[*widget.Widget]scope)
		for w, sc := range batch {
			st.restyle(w, sc)
		}
	}
}

// restyle eagerly recomputes a widget and, if the scope demands it, its
// subtree. The per-batch generation guard keeps overlapping subtree
// scopes from recomputing any node twice.
func (st *Styler) restyle(w *widget.Widget, sc scope) {
	if !sc.subtree {
		st.restyleOne(w)
		return
	}
	tree.Descend(&w.Node, func(n *tree.Node[*widget.Widget]) bool {
		st.restyleOne(n.Payload)
		return true
	})
}

func (st *Styler) restyleOne(w *widget.Widget) {
	if e, ok := st.memo[w]; ok && e.gen == st.gen {
		return // already recomputed in this batch
	}
	rs := st.recompute(w)
	if st.applier != nil {
		st.applier.Apply(w, rs)
	}
}

// invalidate drops the memo entries in scope, so that no stale style can
// be read even before the batch commits.
func (st *Styler) invalidate(w *widget.Widget, sc scope) {
	cur, pending := st.dirty[w]
	if !sc.subtree {
		delete(st.memo, w)
		if !pending {
			st.dirty[w] = sc
		}
		return
	}
	tree.Descend(&w.Node, func(n *tree.Node[*widget.Widget]) bool {
		delete(st.memo, n.Payload)
		return true
	})
	if !pending || !cur.subtree {
		st.dirty[w] = sc
	}
}

func (st *Styler) forgetSubtree(w *widget.Widget) {
	tree.Descend(&w.Node, func(n *tree.Node[*widget.Widget]) bool {
		delete(st.memo, n.Payload)
		delete(st.dirty, n.Payload)
		return true
	})
}

// --- Convenience mutators ---------------------------------------------

// AddClass adds a class to a widget and notifies the re-styler if the
// class set actually changed.
func (st *Styler) AddClass(w *widget.Widget, cls string) {
	if w.AddClass(cls) {
		st.NotifyChange(w, ClassAdded, cls)
	}
}

// RemoveClass removes a class from a widget and notifies the re-styler
// if the class set actually changed.
func (st *Styler) RemoveClass(w *widget.Widget, cls string) {
	if w.RemoveClass(cls) {
		st.NotifyChange(w, ClassRemoved, cls)
	}
}

// SetState activates a pseudo-state on a widget and notifies the
// re-styler if the state set actually changed.
func (st *Styler) SetState(w *widget.Widget, state string) {
	if w.SetState(state) {
		st.NotifyChange(w, StateSet, state)
	}
}

// ClearState deactivates a pseudo-state on a widget and notifies the
// re-styler if the state set actually changed.
func (st *Styler) ClearState(w *widget.Widget, state string) {
	if w.ClearState(state) {
		st.NotifyChange(w, StateCleared, state)
	}
}
