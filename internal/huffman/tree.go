package huffman

import "container/heap"

// node is a Huffman tree node. Leaves carry a symbol; internal nodes carry
// only the combined frequency of their two children. Nodes are transient:
// the tree is discarded once code assignment completes.
type node struct {
	symbol int // 0..255 for leaves, -1 for internal nodes
	freq   uint64
	seq    int // insertion sequence number, breaks frequency ties
	left   *node
	right  *node
}

func (n *node) leaf() bool { return n.symbol >= 0 }

// nodeHeap is a min-heap of tree nodes ordered by (frequency, insertion
// sequence). The sequence component makes merge order deterministic within
// a run when frequencies tie.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

var _ heap.Interface = (*nodeHeap)(nil)

// buildTree builds the Huffman tree over all symbols with nonzero frequency.
// Leaves are inserted in ascending symbol order; the two lowest-frequency
// nodes are repeatedly merged, first popped becoming the left child. Returns
// nil when no symbol has a nonzero frequency.
func buildTree(freqs FreqTable) *node {
	h := make(nodeHeap, 0, NumSymbols)
	seq := 0
	for b := 0; b < NumSymbols; b++ {
		if freqs[b] == 0 {
			continue
		}
		h = append(h, &node{symbol: b, freq: freqs[b], seq: seq})
		seq++
	}
	if len(h) == 0 {
		return nil
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			symbol: -1,
			freq:   a.freq + b.freq,
			seq:    seq,
			left:   a,
			right:  b,
		})
		seq++
	}
	return heap.Pop(&h).(*node)
}
