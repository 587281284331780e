/*
Package style defines the value types of the styling engine: raw property
values, declarations, and resolved style maps.

A stylesheet rule declares properties like

    color: $text;
    padding: 0 1;

The raw values end up wrapped in type Property, which provides the type
conversion helpers the rest of the engine relies on (colors, scalars,
shorthand expansion). Resolution of rules against a widget tree lives in
sub-packages of this package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'posting.style'.
func tracer() tracing.Trace {
	return tracing.Select("posting.style")
}
