package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
)

// Property is a raw value for a style property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsAuto denotes a property with value "auto".
func (p Property) IsAuto() bool {
	return p == "auto"
}

// IsNone denotes a property with value "none".
func (p Property) IsNone() bool {
	return p == "none"
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Resolved style ---------------------------------------------------

// ResolvedStyle is the outcome of cascade resolution for one widget:
// a mapping from property name to the winning declaration. It is derived
// data, memoized per widget, and recomputed whenever the widget's class or
// state set (or that of an ancestor) changes.
//
// Declarations are of the douceur CSS object type; the engine carries them
// through unchanged so that unknown properties survive resolution as opaque
// key/value pairs.
type ResolvedStyle map[string]css.Declaration

// Value returns the winning raw value for a property key, or NullStyle.
func (rs ResolvedStyle) Value(key string) Property {
	if d, ok := rs[key]; ok {
		return Property(d.Value)
	}
	return NullStyle
}

// Has is a predicate wether a property key has a resolved declaration.
func (rs ResolvedStyle) Has(key string) bool {
	_, ok := rs[key]
	return ok
}

// Equals compares two resolved styles for deep equality. The application
// layer uses this to make re-application of an unchanged style a no-op.
func (rs ResolvedStyle) Equals(other ResolvedStyle) bool {
	if len(rs) != len(other) {
		return false
	}
	for k, d := range rs {
		o, ok := other[k]
		if !ok || o.Value != d.Value || o.Important != d.Important {
			return false
		}
	}
	return true
}

func (rs ResolvedStyle) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for k, d := range rs {
		fmt.Fprintf(&sb, " %s: %s;", k, d.Value)
	}
	sb.WriteString(" }")
	return sb.String()
}

// --- Shorthand properties ---------------------------------------------

// IsShorthand returns wether a property key is a shorthand which
// SplitShorthand can expand into fine grained properties.
func IsShorthand(key string) bool {
	switch key {
	case "padding", "margin", "border", "offset":
		return true
	}
	return false
}

// SplitShorthand splits up a shorthand property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitShorthand("padding", "0 1")
//
// will return
//
//	"padding-top"    => "0"
//	"padding-right"  => "1"
//	"padding-bottom" => "0"
//	"padding-left"   => "1"
//
// Border shorthands distribute the full value to all four edges:
// "border: tall $accent" styles every edge with "tall $accent".
func SplitShorthand(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "padding":
		return feazeCompound4("padding", fourDirs, fields)
	case "margin":
		return feazeCompound4("margin", fourDirs, fields)
	case "offset":
		if len(fields) != 2 {
			return nil, fmt.Errorf("expecting 2 values for offset, have %d", len(fields))
		}
		return []KeyValue{
			{"offset-x", Property(fields[0])},
			{"offset-y", Property(fields[1])},
		}, nil
	case "border":
		r := make([]KeyValue, 4)
		for i, dir := range fourDirs {
			r[i] = KeyValue{"border-" + dir, value}
		}
		return r, nil
	}
	return nil, fmt.Errorf("not recognized as shorthand property: %s", key)
}

// Edge shorthands distribute 1, 2 or 4 values to the four edges, with the
// usual top/right/bottom/left rotation.
func feazeCompound4(pre string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l == 3 || l > 4 {
		return nil, fmt.Errorf("expecting 1, 2 or 4 values for %s", pre)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{pre + "-" + dirs[0], Property(fields[0])}
	switch l {
	case 1:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[0])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[0])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[0])}
	case 2:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[1])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[0])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[1])}
	case 4:
		r[1] = KeyValue{pre + "-" + dirs[1], Property(fields[1])}
		r[2] = KeyValue{pre + "-" + dirs[2], Property(fields[2])}
		r[3] = KeyValue{pre + "-" + dirs[3], Property(fields[3])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
