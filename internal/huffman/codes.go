package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// MaxCodeLen bounds the bit length of any assigned code; Code.Bits cannot
// hold more. A 256-symbol alphabet only reaches this depth under a
// pathologically skewed frequency distribution, but the contract exists:
// exceeding it aborts the whole build rather than silently truncating.
const MaxCodeLen = 64

// Code is one symbol's Huffman code: the bit value and its length in bits.
// The most significant of the Len valid bits is the first bit on the wire.
type Code struct {
	Bits uint64
	Len  int
}

// CodeTable maps every byte value to its assigned code. Symbols that never
// occurred keep Len 0 and must not be encoded.
type CodeTable [NumSymbols]Code

// assignCodes walks the tree depth-first with an explicit stack and records
// (value, length) for each leaf. Left edges append a 0 bit, right edges a 1.
func assignCodes(root *node) (CodeTable, error) {
	var table CodeTable
	if root == nil {
		return table, nil
	}
	if root.leaf() {
		// A single-symbol alphabet still needs a nonzero-length code,
		// otherwise every occurrence would encode to zero bits.
		table[root.symbol] = Code{Bits: 0, Len: 1}
		return table, nil
	}

	type frame struct {
		n    *node
		code Code
	}
	stack := make([]frame, 0, MaxCodeLen*2)
	stack = append(stack, frame{n: root})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n.leaf() {
			table[f.n.symbol] = f.code
			continue
		}
		assert.Assertf(f.n.left != nil && f.n.right != nil,
			"internal node with missing child at depth %d", f.code.Len)
		if f.code.Len >= MaxCodeLen {
			return CodeTable{}, ErrCodeOverflow
		}
		// Push right first so the left subtree is visited first.
		stack = append(stack, frame{
			n:    f.n.right,
			code: Code{Bits: f.code.Bits<<1 | 1, Len: f.code.Len + 1},
		})
		stack = append(stack, frame{
			n:    f.n.left,
			code: Code{Bits: f.code.Bits << 1, Len: f.code.Len + 1},
		})
	}
	return table, nil
}
