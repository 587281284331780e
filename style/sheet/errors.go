package sheet

import (
	"errors"
	"fmt"
)

// ErrUnresolvedVariable is the error kind for `$variable` references which
// the theme lookup cannot resolve. Declarations carrying such a reference
// are skipped (treated as absent) rather than failing the whole sheet, to
// keep the UI rendering; the condition is surfaced via StyleSheet.Unresolved.
var ErrUnresolvedVariable = errors.New("unresolved theme variable")

// ParseError describes a malformed stylesheet. Loading aborts with the
// whole sheet rejected.
type ParseError struct {
	Line   int
	Column int
	Token  string // the offending token, possibly empty at EOF
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("parse error at %d:%d near %q: %s", e.Line, e.Column, e.Token, e.Reason)
}

// VariableError records one unresolved `$variable` reference.
type VariableError struct {
	Name   string // variable name without the '$'
	Line   int
	Column int
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("%v $%s at %d:%d", ErrUnresolvedVariable, e.Name, e.Line, e.Column)
}

func (e *VariableError) Unwrap() error {
	return ErrUnresolvedVariable
}
