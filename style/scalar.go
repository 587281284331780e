package style

import (
	"strconv"
	"strings"
)

const (
	scalarNone uint32 = 0

	scalarCells    uint32 = 0x0001
	scalarAuto     uint32 = 0x0002
	scalarPercent  uint32 = 0x0004
	scalarFraction uint32 = 0x0008
)

// ScalarT is an option type for stylesheet dimension values. Terminal
// geometry knows absolute cell counts, fractions of free space ("fr"),
// percentages of the container, and "auto".
type ScalarT struct {
	n     float64
	flags uint32
}

/*
type ScalarT
	= Auto
	| Cells n
	| Percentage n
	| Fraction n
*/

// Auto creates the scalar value "auto".
func Auto() ScalarT {
	return ScalarT{flags: scalarAuto}
}

// Cells creates a scalar with an absolute cell count.
func Cells(n float64) ScalarT {
	return ScalarT{n: n, flags: scalarCells}
}

// Percentage creates a %-relative scalar.
func Percentage(n float64) ScalarT {
	return ScalarT{n: n, flags: scalarPercent}
}

// Fraction creates a fraction-of-free-space scalar ("fr" unit).
func Fraction(n float64) ScalarT {
	return ScalarT{n: n, flags: scalarFraction}
}

// Scalar parses a property value into a ScalarT. Returns ok=false for
// values which are no scalars at all (colors, keywords other than auto).
func (p Property) Scalar() (ScalarT, bool) {
	v := strings.TrimSpace(p.String())
	switch {
	case v == "auto":
		return Auto(), true
	case strings.HasSuffix(v, "%"):
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			return Percentage(n), true
		}
	case strings.HasSuffix(v, "fr"):
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "fr"), 64); err == nil {
			return Fraction(n), true
		}
	default:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return Cells(n), true
		}
	}
	return ScalarT{}, false
}

// ---------------------------------------------------------------------------

func (s ScalarT) Match() *ScalarMatcher {
	return &ScalarMatcher{scalar: s}
}

type ScalarMatcher struct {
	scalar ScalarT
}

func (m *ScalarMatcher) IsKind(s ScalarT) *ScalarMatcher {
	if m.scalar.flags == s.flags {
		return m
	}
	return nil
}

func (m *ScalarMatcher) Cells(n *float64) *ScalarMatcher {
	if m.scalar.flags&scalarCells > 0 {
		if n != nil {
			*n = m.scalar.n
		}
		return m
	}
	return nil
}

func (m *ScalarMatcher) Percentage(n *float64) *ScalarMatcher {
	if m.scalar.flags&scalarPercent > 0 {
		if n != nil {
			*n = m.scalar.n
		}
		return m
	}
	return nil
}

func (m *ScalarMatcher) Fraction(n *float64) *ScalarMatcher {
	if m.scalar.flags&scalarFraction > 0 {
		if n != nil {
			*n = m.scalar.n
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type ScalarPatterns[T any] struct {
	Auto     T
	Cells    T
	Percent  T
	Fraction T
	Default  T
}

func ScalarPattern[T any](s ScalarT) *ScalarExpr[T] {
	return &ScalarExpr[T]{scalar: s}
}

type ScalarExpr[T any] struct {
	scalar ScalarT
}

func (m *ScalarExpr[T]) OneOf(patterns ScalarPatterns[T]) T {
	switch {
	case m.scalar.flags&scalarAuto > 0:
		return patterns.Auto
	case m.scalar.flags&scalarCells > 0:
		return patterns.Cells
	case m.scalar.flags&scalarPercent > 0:
		return patterns.Percent
	case m.scalar.flags&scalarFraction > 0:
		return patterns.Fraction
	}
	return patterns.Default
}

func (m *ScalarExpr[T]) With(n *float64) *ScalarExpr[T] {
	*n = m.scalar.n
	return m
}

func (m *ScalarExpr[T]) Const(x T) T {
	return x
}
