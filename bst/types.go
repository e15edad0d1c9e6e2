// SPDX-License-Identifier: MIT

package bst

import (
	"strconv"

	"github.com/katalvlaran/stepviz/step"
)

// Algorithm names recorded in Run.Name.
const (
	NameInsert    = "bst-insert"
	NameSearch    = "bst-search"
	NameDelete    = "bst-delete"
	NameInOrder   = "bst-inorder"
	NamePreOrder  = "bst-preorder"
	NamePostOrder = "bst-postorder"
)

// NodeID addresses a node in the arena.
type NodeID int

// Nil is the absent node.
const Nil NodeID = -1

// String returns the decimal ID.
func (id NodeID) String() string { return strconv.Itoa(int(id)) }

// Node is the flat, renderable form of one tree node.
type Node struct {
	ID    NodeID `json:"id" yaml:"id"`
	Key   int    `json:"key" yaml:"key"`
	Left  NodeID `json:"left" yaml:"left"`
	Right NodeID `json:"right" yaml:"right"`
}

// Snapshot is the renderable tree state at one instant.
type Snapshot struct {
	// Nodes lists the live nodes in ID order.
	Nodes []Node `json:"nodes" yaml:"nodes"`

	// Root is the root node, or Nil for an empty tree.
	Root NodeID `json:"root" yaml:"root"`

	// Path is the chain of live nodes walked by the operation so far.
	Path []NodeID `json:"path" yaml:"path"`

	// Current is the node the step concerns, or Nil.
	Current NodeID `json:"current" yaml:"current"`

	// Output is the key sequence emitted by a traversal so far.
	Output []int `json:"output,omitempty" yaml:"output,omitempty"`
}

// Run is the Run type produced by every Tree operation.
type Run = step.Run[Snapshot]

// InOrderKeys returns the keys of s in in-order.
func (s Snapshot) InOrderKeys() []int {
	byID := make(map[NodeID]Node, len(s.Nodes))
	for _, n := range s.Nodes {
		byID[n.ID] = n
	}
	out := make([]int, 0, len(s.Nodes))
	var walk func(NodeID)
	walk = func(id NodeID) {
		if id == Nil {
			return
		}
		n := byID[id]
		walk(n.Left)
		out = append(out, n.Key)
		walk(n.Right)
	}
	walk(s.Root)
	return out
}

// subject names node id holding key.
func subject(id NodeID, key int) step.Subject {
	s := step.OnValue(key)
	s.Node = id.String()
	return s
}
