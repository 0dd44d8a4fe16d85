// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package prefix

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned when no symbol has a nonzero count.
var ErrEmpty = errors.New("no symbol to encode")

// Kind tags a tree node.
type Kind uint8

const (
	Leaf Kind = iota
	Internal
)

// NoChild marks a missing child index.
const NoChild = -1

// Node is a tree node. Leaves carry a symbol, internal nodes carry the
// indexes of their children in Tree.Nodes.
type Node struct {
	Kind   Kind
	Symbol Symbol
	Freq   uint64
	Left   int32
	Right  int32
}

// Tree is a Huffman tree stored as an arena of nodes. Every node is the
// child of at most one parent. Every internal node has two children,
// except the wrapper of a single-symbol tree which only has a left child.
type Tree struct {
	Nodes []Node
	Root  int32
}

// queueItem orders nodes by frequency, then by arrival.
type queueItem struct {
	node int32
	freq uint64
	seq  int
}

type nodeQueue []queueItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Build constructs the Huffman tree of f. The two lowest nodes are merged
// until one remains; the first popped becomes the left child.
func Build(f *Frequencies) (*Tree, error) {
	num := f.Distinct()
	if num == 0 {
		return nil, ErrEmpty
	}
	t := &Tree{Nodes: make([]Node, 0, 2*num)}
	q := make(nodeQueue, 0, num)
	for sym, freq := range f {
		if freq == 0 {
			continue
		}
		idx := t.add(Node{Kind: Leaf, Symbol: Symbol(sym), Freq: freq, Left: NoChild, Right: NoChild})
		q = append(q, queueItem{node: idx, freq: freq, seq: int(idx)})
	}
	heap.Init(&q)

	if q.Len() == 1 {
		leaf := q[0]
		t.Root = t.add(Node{Kind: Internal, Freq: leaf.freq, Left: leaf.node, Right: NoChild})
		return t, nil
	}
	for q.Len() > 1 {
		left := heap.Pop(&q).(queueItem)
		right := heap.Pop(&q).(queueItem)
		freq := left.freq + right.freq
		idx := t.add(Node{Kind: Internal, Freq: freq, Left: left.node, Right: right.node})
		heap.Push(&q, queueItem{node: idx, freq: freq, seq: int(idx)})
	}
	t.Root = q[0].node
	return t, nil
}

func (t *Tree) add(n Node) int32 {
	t.Nodes = append(t.Nodes, n)
	return int32(len(t.Nodes) - 1)
}

// Walk visits every node depth first, left before right, with its depth
// below the root.
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	if len(t.Nodes) == 0 {
		return
	}
	type frame struct {
		node  int32
		depth int
	}
	stack := []frame{{t.Root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.Nodes[top.node]
		fn(n, top.depth)
		if n.Kind != Internal {
			continue
		}
		if n.Right != NoChild {
			stack = append(stack, frame{n.Right, top.depth + 1})
		}
		if n.Left != NoChild {
			stack = append(stack, frame{n.Left, top.depth + 1})
		}
	}
}

// Lengths returns the depth of every leaf. Symbols not in the tree get 0.
// Depths beyond 255 cannot occur: reaching them needs counts above 2^64.
func (t *Tree) Lengths() (l Lengths) {
	t.Walk(func(n *Node, depth int) {
		if n.Kind == Leaf {
			l[n.Symbol] = uint8(depth)
		}
	})
	return l
}
