// SPDX-License-Identifier: MIT

package bst

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

type node struct {
	key                 int
	left, right, parent NodeID
	live                bool
}

// Tree is a binary search tree over distinct int keys. The zero value is an
// empty tree ready to use.
type Tree struct {
	nodes []node
	root  NodeID
	size  int
}

// NewTree builds a tree by inserting values in order. Repeated values are
// ignored.
func NewTree(values ...int) *Tree {
	t := &Tree{root: Nil}
	for _, v := range values {
		t.insert(v)
	}
	return t
}

// Len returns the number of keys.
func (t *Tree) Len() int { return t.size }

// Root returns the root ID, or Nil.
func (t *Tree) Root() NodeID {
	t.lazyInit()
	return t.root
}

// lazyInit points an unallocated tree's root at Nil. Once a node exists the
// arena is non-nil and root is always maintained.
func (t *Tree) lazyInit() {
	if t.nodes == nil {
		t.root = Nil
	}
}

// Values returns the keys in ascending (in-order) order.
func (t *Tree) Values() []int {
	t.lazyInit()
	out := make([]int, 0, t.size)
	t.walkIn(t.root, func(id NodeID) { out = append(out, t.nodes[id].key) })
	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	t.lazyInit()
	var h func(NodeID) int
	h = func(id NodeID) int {
		if id == Nil {
			return 0
		}
		return 1 + max(h(t.nodes[id].left), h(t.nodes[id].right))
	}
	return h(t.root)
}

func (t *Tree) walkIn(id NodeID, fn func(NodeID)) {
	if id == Nil {
		return
	}
	t.walkIn(t.nodes[id].left, fn)
	fn(id)
	t.walkIn(t.nodes[id].right, fn)
}

func (t *Tree) alloc(key int, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{key: key, left: Nil, right: Nil, parent: parent, live: true})
	t.size++
	return id
}

// insert adds v without recording; used by NewTree.
func (t *Tree) insert(v int) {
	t.lazyInit()
	if t.root == Nil {
		t.root = t.alloc(v, Nil)
		return
	}
	cur := t.root
	for {
		k := t.nodes[cur].key
		switch {
		case v == k:
			return
		case v < k:
			if t.nodes[cur].left == Nil {
				t.nodes[cur].left = t.alloc(v, cur)
				return
			}
			cur = t.nodes[cur].left
		default:
			if t.nodes[cur].right == Nil {
				t.nodes[cur].right = t.alloc(v, cur)
				return
			}
			cur = t.nodes[cur].right
		}
	}
}

// Insert adds v and records the descent. A key already present records a
// duplicate step and leaves the tree unchanged.
func (t *Tree) Insert(v int) (*Run, error) {
	t.lazyInit()
	rec := step.NewRecorder[Snapshot](NameInsert, t.Height()+3)
	var path []NodeID

	if t.root == Nil {
		t.root = t.alloc(v, Nil)
		path = append(path, t.root)
		rec.Record(step.KindInsert, subject(t.root, v), t.snap(path, t.root, nil),
			fmt.Sprintf("Tree is empty: %d becomes the root", v))
		return t.finish(rec, path)
	}

	cur := t.root
	for {
		path = append(path, cur)
		k := t.nodes[cur].key
		if v == k {
			rec.Record(step.KindDuplicate, subject(cur, k), t.snap(path, cur, nil),
				fmt.Sprintf("%d is already in the tree; nothing to insert", v))
			break
		}

		left := v < k
		child := t.nodes[cur].right
		side := "right"
		if left {
			child = t.nodes[cur].left
			side = "left"
		}
		rec.Record(step.KindDescend, subject(cur, k), t.snap(path, cur, nil),
			fmt.Sprintf("%d %s %d: go %s", v, cmp(v, k), k, side))

		if child != Nil {
			cur = child
			continue
		}
		id := t.alloc(v, cur)
		if left {
			t.nodes[cur].left = id
		} else {
			t.nodes[cur].right = id
		}
		path = append(path, id)
		rec.Record(step.KindInsert, subject(id, v), t.snap(path, id, nil),
			fmt.Sprintf("Insert %d as %s child of %d", v, side, k))
		break
	}

	return t.finish(rec, path)
}

// Search records the descent looking for v.
func (t *Tree) Search(v int) (*Run, error) {
	t.lazyInit()
	rec := step.NewRecorder[Snapshot](NameSearch, t.Height()+2)
	path, cur := t.descend(rec, v)
	if cur == Nil {
		rec.Record(step.KindNotFound, step.OnValue(v), t.snap(path, Nil, nil),
			fmt.Sprintf("%d is not in the tree", v))
	} else {
		rec.Record(step.KindFound, subject(cur, v), t.snap(path, cur, nil),
			fmt.Sprintf("Found %d", v))
	}
	return t.finish(rec, path)
}

// descend walks from the root towards v, recording one descend step per
// node that does not hold v. It returns the path and the node holding v,
// or Nil.
func (t *Tree) descend(rec *step.Recorder[Snapshot], v int) ([]NodeID, NodeID) {
	var path []NodeID
	cur := t.root
	for cur != Nil {
		path = append(path, cur)
		k := t.nodes[cur].key
		if v == k {
			return path, cur
		}
		next, side := t.nodes[cur].right, "right"
		if v < k {
			next, side = t.nodes[cur].left, "left"
		}
		rec.Record(step.KindDescend, subject(cur, k), t.snap(path, cur, nil),
			fmt.Sprintf("%d %s %d: go %s", v, cmp(v, k), k, side))
		cur = next
	}
	return path, Nil
}

// Delete removes v. A node with two children takes the key of its in-order
// successor, and the successor node is unlinked instead.
func (t *Tree) Delete(v int) (*Run, error) {
	t.lazyInit()
	rec := step.NewRecorder[Snapshot](NameDelete, 2*t.Height()+4)
	path, cur := t.descend(rec, v)
	if cur == Nil {
		rec.Record(step.KindNotFound, step.OnValue(v), t.snap(path, Nil, nil),
			fmt.Sprintf("%d is not in the tree; nothing to delete", v))
		return t.finish(rec, path)
	}
	rec.Record(step.KindFound, subject(cur, v), t.snap(path, cur, nil),
		fmt.Sprintf("Found %d", v))

	if t.nodes[cur].left != Nil && t.nodes[cur].right != Nil {
		succ := t.nodes[cur].right
		path = append(path, succ)
		rec.Record(step.KindDescend, subject(succ, t.nodes[succ].key), t.snap(path, succ, nil),
			fmt.Sprintf("%d has two children: look for the minimum of its right subtree", v))
		for t.nodes[succ].left != Nil {
			succ = t.nodes[succ].left
			path = append(path, succ)
			rec.Record(step.KindDescend, subject(succ, t.nodes[succ].key), t.snap(path, succ, nil),
				fmt.Sprintf("Go left to %d", t.nodes[succ].key))
		}
		sk := t.nodes[succ].key
		t.nodes[cur].key = sk
		rec.Record(step.KindReplace, subject(cur, sk), t.snap(path, cur, nil),
			fmt.Sprintf("Replace %d with its successor %d", v, sk))
		cur = succ
	}

	key := t.nodes[cur].key
	child := t.unlink(cur)
	note := fmt.Sprintf("Remove leaf node %d", key)
	if child != Nil {
		note = fmt.Sprintf("Remove node %d; its child %d takes its place", key, t.nodes[child].key)
	}
	rec.Record(step.KindDelete, subject(cur, key), t.snap(path, Nil, nil), note)

	return t.finish(rec, path)
}

// unlink splices out id, which has at most one child, and returns that child.
func (t *Tree) unlink(id NodeID) NodeID {
	n := t.nodes[id]
	child := n.left
	if child == Nil {
		child = n.right
	}
	if child != Nil {
		t.nodes[child].parent = n.parent
	}
	switch {
	case n.parent == Nil:
		t.root = child
	case t.nodes[n.parent].left == id:
		t.nodes[n.parent].left = child
	default:
		t.nodes[n.parent].right = child
	}
	t.nodes[id] = node{left: Nil, right: Nil, parent: Nil}
	t.size--
	return child
}

func (t *Tree) finish(rec *step.Recorder[Snapshot], path []NodeID) (*Run, error) {
	return rec.Finish(step.KindDone, step.None, t.snap(path, Nil, nil),
		fmt.Sprintf("Tree holds %d key(s): %v", t.size, t.Values()))
}

// snap copies the live arena. Dead nodes are dropped from path.
func (t *Tree) snap(path []NodeID, current NodeID, output []int) Snapshot {
	nodes := make([]Node, 0, t.size)
	for i, n := range t.nodes {
		if n.live {
			nodes = append(nodes, Node{ID: NodeID(i), Key: n.key, Left: n.left, Right: n.right})
		}
	}
	live := make([]NodeID, 0, len(path))
	for _, id := range path {
		if t.nodes[id].live {
			live = append(live, id)
		}
	}
	return Snapshot{
		Nodes:   nodes,
		Root:    t.root,
		Path:    live,
		Current: current,
		Output:  step.CloneInts(output),
	}
}

func cmp(a, b int) string {
	if a < b {
		return "<"
	}
	return ">"
}
