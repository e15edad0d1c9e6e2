// SPDX-License-Identifier: MIT

package bst

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

type order int

const (
	inOrder order = iota
	preOrder
	postOrder
)

// InOrder records a left, node, right traversal.
func (t *Tree) InOrder() (*Run, error) { return t.traverse(NameInOrder, inOrder) }

// PreOrder records a node, left, right traversal.
func (t *Tree) PreOrder() (*Run, error) { return t.traverse(NamePreOrder, preOrder) }

// PostOrder records a left, right, node traversal.
func (t *Tree) PostOrder() (*Run, error) { return t.traverse(NamePostOrder, postOrder) }

func (t *Tree) traverse(name string, ord order) (*Run, error) {
	t.lazyInit()
	rec := step.NewRecorder[Snapshot](name, t.size+1)
	var (
		out  []int
		path []NodeID
	)
	visit := func(id NodeID) {
		k := t.nodes[id].key
		out = append(out, k)
		rec.Record(step.KindVisit, subject(id, k), t.snap(path, id, out),
			fmt.Sprintf("Visit %d", k))
	}

	var walk func(NodeID)
	walk = func(id NodeID) {
		if id == Nil {
			return
		}
		path = append(path, id)
		if ord == preOrder {
			visit(id)
		}
		walk(t.nodes[id].left)
		if ord == inOrder {
			visit(id)
		}
		walk(t.nodes[id].right)
		if ord == postOrder {
			visit(id)
		}
		path = path[:len(path)-1]
	}
	walk(t.root)

	if out == nil {
		out = []int{}
	}
	return rec.Finish(step.KindDone, step.None, t.snap(nil, Nil, out),
		fmt.Sprintf("Traversal output: %v", out))
}
