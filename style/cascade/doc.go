/*
Package cascade resolves stylesheet rules against a live widget tree.

Overview

For every widget, the resolver collects all rules whose selector chain
matches, orders them by importance, specificity and source order, and
merges their declarations into one resolved style. Resolution is a pure
function of (rule list × current class/state sets); the resolver memoizes
it per widget and invalidates the memo through the re-styler whenever the
widget's (or an ancestor's) class or state set changes.

The re-styler coalesces change notifications into batches: within one
batch every affected widget is recomputed at most once, and recomputation
scope is bounded to the changed node plus the descendants which the rule
set can provably affect (rules constraining ancestry, e.g. a
`:focus-within` ancestor rule). A focus change never forces a full-tree
re-resolution.

Resolution runs synchronously on the caller's goroutine; the rule list is
immutable after load, so no locking is involved.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'posting.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("posting.cascade")
}
