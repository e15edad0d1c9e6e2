// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/bst"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/kmp"
	"github.com/katalvlaran/stepviz/linear"
	"github.com/katalvlaran/stepviz/rabinkarp"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

var (
	arrayKeys = []string{"values", "random"}
	graphKeys = []string{"vertices", "edges", "directed", "random", "grid", "diagonal", "start", "max_depth"}
	textKeys  = []string{"text", "pattern"}
	treeKeys  = []string{"values", "value"}
)

func init() {
	sorts := []struct {
		name, summary string
		fn            func([]int, ...sorting.Option) (*sorting.Run, error)
	}{
		{sorting.NameSelection, "Selection sort: grow a sorted prefix by selecting the minimum", sorting.Selection},
		{sorting.NameInsertion, "Insertion sort: shift each key left into the sorted prefix", sorting.Insertion},
		{sorting.NameBubble, "Bubble sort: swap adjacent pairs until a pass makes no swap", sorting.Bubble},
		{sorting.NameCounting, "Counting sort: tally keys, then write them back in order", sorting.Counting},
	}
	for _, s := range sorts {
		register(Info{
			Name: s.name, Family: FamilySorting, Summary: s.summary,
			Params: append(append([]string{}, arrayKeys...), "order"),
		}, sortGen(s.fn))
	}

	register(Info{
		Name: search.NameLinear, Family: FamilySearching,
		Summary: "Linear search: check each index in turn",
		Params:  append(append([]string{}, arrayKeys...), "target"),
	}, searchGen(search.Linear, false))
	register(Info{
		Name: search.NameBinary, Family: FamilySearching,
		Summary: "Binary search: halve a sorted range around its midpoint",
		Params:  append(append([]string{}, arrayKeys...), "target"),
	}, searchGen(search.Binary, true))

	register(Info{
		Name: bfs.Name, Family: FamilyGraph,
		Summary: "Breadth-first search from a start vertex (FIFO queue)",
		Params:  graphKeys,
	}, genBFS)
	register(Info{
		Name: dfs.Name, Family: FamilyGraph,
		Summary: "Depth-first search from a start vertex (explicit stack)",
		Params:  append(append([]string{}, graphKeys...), "full"),
	}, genDFS)
	register(Info{
		Name: dfs.NameTopo, Family: FamilyGraph,
		Summary: "Topological sort of a directed acyclic graph by DFS finish order",
		Params:  []string{"vertices", "edges", "random"},
	}, genTopo)

	register(Info{
		Name: kmp.Name, Family: FamilyString,
		Summary: "Knuth-Morris-Pratt: build the LPS table, then match without backtracking",
		Params:  textKeys,
	}, genKMP)
	register(Info{
		Name: rabinkarp.Name, Family: FamilyString,
		Summary: "Rabin-Karp: compare rolling window hashes, verify on equality",
		Params:  textKeys,
	}, genRabinKarp)

	for _, op := range []struct {
		name, summary string
		keyed         bool
	}{
		{bst.NameInsert, "BST insert: descend to a leaf and attach the key", true},
		{bst.NameSearch, "BST search: descend comparing keys", true},
		{bst.NameDelete, "BST delete: unlink the node, promoting its successor when it has two children", true},
		{bst.NameInOrder, "BST in-order traversal (left, node, right)", false},
		{bst.NamePreOrder, "BST pre-order traversal (node, left, right)", false},
		{bst.NamePostOrder, "BST post-order traversal (left, right, node)", false},
	} {
		keys := []string{"values"}
		if op.keyed {
			keys = treeKeys
		}
		register(Info{Name: op.name, Family: FamilyTree, Summary: op.summary, Params: keys}, treeGen(op.name))
	}

	register(Info{
		Name: linear.NameList, Family: FamilyLinear,
		Summary: "Linked list: insert-front|insert-back|insert-at|delete-front|delete-back|delete-at|find",
		Params:  []string{"values", "op", "value", "position"},
	}, genList)
	register(Info{
		Name: linear.NameStack, Family: FamilyLinear,
		Summary: "Bounded stack: push|pop|peek",
		Params:  []string{"values", "op", "value", "capacity"},
	}, genStack)
	register(Info{
		Name: linear.NameQueue, Family: FamilyLinear,
		Summary: "Bounded queue: enqueue|dequeue|peek",
		Params:  []string{"values", "op", "value", "capacity"},
	}, genQueue)
}

func sortGen(fn func([]int, ...sorting.Option) (*sorting.Run, error)) generateFunc {
	return func(ctx context.Context, params map[string]any) (Trace, error) {
		var p arrayParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		if p.Target != nil {
			return nil, fmt.Errorf("%w: target is not a sorting parameter", ErrBadParams)
		}
		order, err := sorting.ParseOrder(p.Order)
		if err != nil {
			return nil, err
		}
		vals, err := p.values(false)
		if err != nil {
			return nil, err
		}
		return wrap(fn(vals, sorting.WithContext(ctx), sorting.WithOrder(order)))
	}
}

func searchGen(fn func([]int, int, ...search.Option) (*search.Run, error), sorted bool) generateFunc {
	return func(ctx context.Context, params map[string]any) (Trace, error) {
		var p arrayParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		if p.Order != "" {
			return nil, fmt.Errorf("%w: order is not a search parameter", ErrBadParams)
		}
		target, err := need(p.Target, "target")
		if err != nil {
			return nil, err
		}
		vals, err := p.values(sorted)
		if err != nil {
			return nil, err
		}
		return wrap(fn(vals, target, search.WithContext(ctx)))
	}
}

func genBFS(ctx context.Context, params map[string]any) (Trace, error) {
	var p graphParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Full {
		return nil, fmt.Errorf("%w: full applies to dfs only", ErrBadParams)
	}
	g, start, err := p.build(false)
	if err != nil {
		return nil, err
	}
	return wrap(bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithMaxDepth(p.MaxDepth)))
}

func genDFS(ctx context.Context, params map[string]any) (Trace, error) {
	var p graphParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	g, start, err := p.build(false)
	if err != nil {
		return nil, err
	}
	opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithMaxDepth(p.MaxDepth)}
	if p.Full {
		opts = append(opts, dfs.WithFullTraversal())
	}
	return wrap(dfs.DFS(g, start, opts...))
}

func genTopo(ctx context.Context, params map[string]any) (Trace, error) {
	var p graphParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Start != "" || p.MaxDepth != 0 || p.Full {
		return nil, fmt.Errorf("%w: topological-sort takes only vertices, edges and random", ErrBadParams)
	}
	g, _, err := p.build(true)
	if err != nil {
		return nil, err
	}
	return wrap(dfs.TopologicalSort(g, dfs.WithCancelContext(ctx)))
}

func genKMP(ctx context.Context, params map[string]any) (Trace, error) {
	var p textParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return wrap(kmp.Search(p.Text, p.Pattern, kmp.WithContext(ctx)))
}

func genRabinKarp(ctx context.Context, params map[string]any) (Trace, error) {
	var p textParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return wrap(rabinkarp.Search(p.Text, p.Pattern, rabinkarp.WithContext(ctx)))
}

func treeGen(name string) generateFunc {
	return func(_ context.Context, params map[string]any) (Trace, error) {
		var p treeParams
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		t := bst.NewTree(p.Values...)
		switch name {
		case bst.NameInOrder:
			return wrap(t.InOrder())
		case bst.NamePreOrder:
			return wrap(t.PreOrder())
		case bst.NamePostOrder:
			return wrap(t.PostOrder())
		}

		v, err := need(p.Value, "value")
		if err != nil {
			return nil, err
		}
		switch name {
		case bst.NameInsert:
			return wrap(t.Insert(v))
		case bst.NameSearch:
			return wrap(t.Search(v))
		default:
			return wrap(t.Delete(v))
		}
	}
}

func genList(_ context.Context, params map[string]any) (Trace, error) {
	var p linearParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Capacity != 0 {
		return nil, fmt.Errorf("%w: a linked list has no capacity", ErrBadParams)
	}
	l := linear.NewList(p.Values...)
	switch p.Op {
	case "insert-front", "insert-back", "insert-at":
		v, err := need(p.Value, "value")
		if err != nil {
			return nil, err
		}
		switch p.Op {
		case "insert-front":
			return wrap(l.InsertFront(v))
		case "insert-back":
			return wrap(l.InsertBack(v))
		}
		return wrap(l.InsertAt(p.Position, v))
	case "delete-front":
		return wrap(l.DeleteFront())
	case "delete-back":
		return wrap(l.DeleteBack())
	case "delete-at":
		return wrap(l.DeleteAt(p.Position))
	case "find":
		v, err := need(p.Value, "value")
		if err != nil {
			return nil, err
		}
		return wrap(l.Find(v))
	}
	return nil, badOp(linear.NameList, p.Op)
}

func genStack(_ context.Context, params map[string]any) (Trace, error) {
	var p linearParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Position != 0 {
		return nil, fmt.Errorf("%w: a stack has no positions", ErrBadParams)
	}
	s, err := linear.NewStack(p.Capacity, p.Values...)
	if err != nil {
		return nil, err
	}
	switch p.Op {
	case "push":
		v, err := need(p.Value, "value")
		if err != nil {
			return nil, err
		}
		return wrap(s.Push(v))
	case "pop":
		return wrap(s.Pop())
	case "peek":
		return wrap(s.Peek())
	}
	return nil, badOp(linear.NameStack, p.Op)
}

func genQueue(_ context.Context, params map[string]any) (Trace, error) {
	var p linearParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Position != 0 {
		return nil, fmt.Errorf("%w: a queue has no positions", ErrBadParams)
	}
	q, err := linear.NewQueue(p.Capacity, p.Values...)
	if err != nil {
		return nil, err
	}
	switch p.Op {
	case "enqueue":
		v, err := need(p.Value, "value")
		if err != nil {
			return nil, err
		}
		return wrap(q.Enqueue(v))
	case "dequeue":
		return wrap(q.Dequeue())
	case "peek":
		return wrap(q.Peek())
	}
	return nil, badOp(linear.NameQueue, p.Op)
}

// wrap keeps a failed generator from yielding a non-nil Trace.
func wrap(t Trace, err error) (Trace, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func badOp(name, op string) error {
	return fmt.Errorf("%w: %s has no op %q", ErrBadParams, name, op)
}
