// Package node holds the row wrapper handed to the body by the data source.
package node

import "strconv"

// Key identifies a row. It is stable across pages and re-renders.
type Key string

// IntKey formats a numeric row key.
func IntKey(i int) Key {
	return Key(strconv.Itoa(i))
}

// Node wraps one raw record. The data source owns it; the body only reads it
// for the duration of a render pass.
type Node struct {
	Key Key
	Raw any

	// Hierarchy metadata. The body never walks the tree itself, it only
	// forwards keys to the data source which owns propagation. ChildKeys may
	// name nodes that are not among the rows handed to the table.
	Level     int
	ParentKey Key
	ChildKeys []Key
}

// New wraps raw as a top-level node.
func New(key Key, raw any) *Node {
	return &Node{Key: key, Raw: raw}
}

func (n *Node) IsLeaf() bool {
	return len(n.ChildKeys) == 0
}
