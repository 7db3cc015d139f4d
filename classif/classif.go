// Package classif holds the classification tree: the static hierarchy of
// feature type names that raw OSM tags are matched against. The tree is
// loaded once at startup and is immutable and safe for concurrent readers
// afterwards; the matcher only holds non-owning references into it.
package classif

import (
	"strings"
)

// Node is one entry of the classification tree. Children are ordered and
// uniquely named; the order defines the sibling indices used by Type
// packing, so it must not change after load.
type Node struct {
	name     string
	drawable bool
	index    int
	parent   *Node
	children []*Node
	byName   map[string]*Node
}

func (n *Node) Name() string { return n.name }

// Index is the node's position among its siblings.
func (n *Node) Index() int { return n.index }

// Child returns the direct child with the exact given name, or nil.
func (n *Node) Child(name string) *Node {
	return n.byName[name]
}

func (n *Node) add(child *Node) {
	child.index = len(n.children)
	child.parent = n
	n.children = append(n.children, child)
	if n.byName == nil {
		n.byName = make(map[string]*Node)
	}
	n.byName[child.name] = child
}

// Tree is the shared, read-only classification hierarchy.
type Tree struct {
	root *Node
}

func (t *Tree) Root() *Node { return t.root }

// TypeByPath packs the type for the node reached by following path from
// the root, name by name. ok is false if any segment is missing.
func (t *Tree) TypeByPath(path ...string) (Type, bool) {
	typ := EmptyType
	current := t.root
	for _, name := range path {
		child := current.Child(name)
		if child == nil {
			return 0, false
		}
		typ = typ.Push(child.index)
		current = child
	}
	return typ, true
}

// NodeByType resolves a packed type back to its tree node, or nil if the
// type does not describe a path in this tree.
func (t *Tree) NodeByType(typ Type) *Node {
	current := t.root
	for level := 0; level < MaxDepth; level++ {
		idx := typ.Index(level)
		if idx < 0 {
			break
		}
		if idx >= len(current.children) {
			return nil
		}
		current = current.children[idx]
	}
	return current
}

// PathByType returns the slash-joined node names for a packed type, for
// logging and dump output. Unknown types map to "".
func (t *Tree) PathByType(typ Type) string {
	var names []string
	current := t.root
	for level := 0; level < MaxDepth; level++ {
		idx := typ.Index(level)
		if idx < 0 {
			break
		}
		if idx >= len(current.children) {
			return ""
		}
		current = current.children[idx]
		names = append(names, current.name)
	}
	return strings.Join(names, "/")
}

// IsDrawable reports whether the node behind typ is marked drawable in
// the tree definition. It is the default drawability predicate of the
// classifier; rendering style modules may supply their own.
func (t *Tree) IsDrawable(typ Type) bool {
	node := t.NodeByType(typ)
	return node != nil && node != t.root && node.drawable
}
