package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors

*/

import "fmt"

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for Walk to collect a selection of nodes.
type Predicate[T comparable] func(node *Node[T]) (match bool, err error)

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) (bool, error) {
		return true, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(node *Node[T]) (bool, error) {
		return node.ChildCount() == 0, nil
	}
}

// Visitor is called by Descend for every node of a (sub-)tree, parents
// before children. Returning false prunes the node's subtree.
type Visitor[T comparable] func(node *Node[T]) (descend bool)

// Descend walks the subtree rooted at node in depth-first pre-order,
// calling v for every node. Children are visited in insertion order.
//
// Style resolution is synchronous and bounded by tree depth, so the walk is
// strictly sequential. A node reachable twice means the tree is no tree any
// more; Descend treats cyclic ancestry as a fatal invariant violation.
func Descend[T comparable](node *Node[T], v Visitor[T]) {
	if node == nil {
		return
	}
	seen := make(map[*Node[T]]bool)
	descend(node, v, seen)
}

func descend[T comparable](node *Node[T], v Visitor[T], seen map[*Node[T]]bool) {
	if seen[node] {
		panic(fmt.Sprintf("tree: cyclic ancestry at %v", node))
	}
	seen[node] = true
	if !v(node) {
		return
	}
	for _, ch := range node.Children() {
		descend(ch, v, seen)
	}
}

// Walk collects all nodes of the subtree rooted at node which match the
// given predicate, in depth-first pre-order.
func Walk[T comparable](node *Node[T], p Predicate[T]) ([]*Node[T], error) {
	var selection []*Node[T]
	var lasterr error
	Descend(node, func(n *Node[T]) bool {
		if lasterr != nil {
			return false
		}
		m, err := p(n)
		if err != nil {
			lasterr = err
			return false
		}
		if m {
			selection = append(selection, n)
		}
		return true
	})
	return selection, lasterr
}

// AncestorsOf returns the chain of ancestors of node, nearest first,
// excluding the node itself.
func AncestorsOf[T comparable](node *Node[T]) []*Node[T] {
	var chain []*Node[T]
	seen := make(map[*Node[T]]bool)
	seen[node] = true
	for p := node.Parent(); p != nil; p = p.Parent() {
		if seen[p] {
			panic(fmt.Sprintf("tree: cyclic ancestry at %v", p))
		}
		seen[p] = true
		chain = append(chain, p)
	}
	return chain
}
