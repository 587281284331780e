/*
Package sheet parses stylesheet text into an ordered list of structured
rules.

The dialect is the terminal stylesheet format the application consumes:
selector blocks with nested declarations, type selectors, `.class`, `#id`,
`:pseudo-state`, `&` self-reference for nesting, `$theme-variable`
references, and property values with unit suffixes like `%`, `fr`, or bare
numbers for cell counts:

	Input {
	    border: tall $accent;

	    &.-invalid {
	        border-left: outer $error;
	    }
	}

	CommandPalette > Vertical {
	    margin-top: 1;
	}

Tokenization is done with the gorilla CSS scanner; the parser on top
flattens nested blocks into plain selector chains at parse time, so the
matcher never sees nesting. Rules are immutable once parsed.

Unknown property names are retained as opaque key/value pairs for forward
compatibility. A malformed sheet is rejected as a whole; partial
stylesheets are never applied. Unresolved theme variables are a distinct,
non-fatal condition: the declaration is skipped and the issue is surfaced
on the parsed sheet.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package sheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'posting.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("posting.sheet")
}
