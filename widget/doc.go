/*
Package widget is a straightforward default implementation of a styleable
widget tree.

Overview

A Widget represents one live UI element: a type tag, an optional id, a
mutable set of classes and a mutable set of pseudo-states (focus, hover,
disabled, …). Widgets form a tree on top of the general purpose tree type
(package tree); in a fully object oriented language we would subclass the
tree node, but in Go we resort to composition, thus embedding a generic
tree node in the widget type.

Classes and pseudo-states are mutated by the surrounding UI framework;
the styling engine only reads them. Mutations have to be reported to the
re-styler (package cascade) via its change-notification interface.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package widget

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'posting.widget'.
func tracer() tracing.Trace {
	return tracing.Select("posting.widget")
}
