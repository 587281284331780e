/*
Package styledump implements helpers to debug a styled widget tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package styledump

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bryanwills/posting/widget"
	tp "github.com/xlab/treeprint"
)

// Dump renders a widget tree as an indented text diagram, one line per
// widget, annotated with the widget's resolved style properties. Intended
// for debugging and for golden output in tests.
func Dump(root *widget.Widget) string {
	if root == nil {
		return ""
	}
	d := tp.New()
	d.SetValue(label(root))
	addChildren(d, root)
	return d.String()
}

func addChildren(branch tp.Tree, w *widget.Widget) {
	for _, ch := range w.Children() {
		cw := widget.FromNode(ch)
		if cw == nil {
			continue
		}
		if ch.ChildCount() == 0 {
			branch.AddNode(label(cw))
			continue
		}
		sub := branch.AddBranch(label(cw))
		addChildren(sub, cw)
	}
}

func label(w *widget.Widget) string {
	var sb strings.Builder
	sb.WriteString(w.String())
	rs := w.Styles()
	if len(rs) == 0 {
		return sb.String()
	}
	keys := make([]string, 0, len(rs))
	for k := range rs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb.WriteString("  [")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%s: %s", k, rs.Value(k))
	}
	sb.WriteString("]")
	return sb.String()
}
