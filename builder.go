package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build constructs a Huffman tree from the given frequency table.
//
// The two lowest-weight nodes are repeatedly merged into a new Internal node,
// with the lighter one as child 0, until a single root remains.  Ties between
// equal weights go to the node that entered the worklist first: leaves enter
// in the table's first-occurrence order, and each merged node enters after
// every node that precedes it.  The resulting tree is therefore a pure
// function of the table.
//
// A table with one Symbol yields a lone *Leaf.  An empty table yields
// ErrEmptyInput.
//
func Build(table *FrequencyTable) (Node, error) {
	numSymbols := table.Len()
	if numSymbols == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap with one leaf per symbol.

	items := make([]weightedNode, 0, numSymbols)
	for _, e := range table.entries {
		items = append(items, weightedNode{
			node:   NewLeaf(e.Symbol, e.Count),
			weight: e.Count,
			seq:    uint64(len(items)),
		})
	}
	if numSymbols == 1 {
		return items[0].node, nil
	}

	h := nodeHeap{items}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  Each merge shrinks the heap by one.

	nextSeq := uint64(numSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		parent := NewInternal(a.node, b.node)
		heap.Push(&h, weightedNode{node: parent, weight: parent.Weight(), seq: nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(weightedNode)
	assert.Assertf(nextSeq == uint64(2*numSymbols-1), "expected %d nodes, built %d", 2*numSymbols-1, nextSeq)
	return root.node, nil
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node   Node
	weight uint64
	seq    uint64
}

type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
