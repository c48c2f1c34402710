package huffman

// Codebook is an immutable character-level Huffman code table derived from a
// fixed set of strings. Construction runs the full pipeline (frequency count,
// tree build, code assignment) in strict sequence; the tree is discarded once
// assignment completes. A built Codebook is read-only and may be shared by
// concurrent encoders without locking.
type Codebook struct {
	table CodeTable
	freqs FreqTable
	used  int
}

// NewCodebook derives a prefix-free code per distinct byte across all the
// given strings. An input containing no bytes at all yields an empty
// codebook: Empty reports that state and every Encode call fails.
func NewCodebook(strs []string) (*Codebook, error) {
	return NewCodebookFromFrequencies(CountFrequencies(strs))
}

// NewCodebookFromFrequencies builds a codebook from an existing frequency
// table. The only failure mode is ErrCodeOverflow.
func NewCodebookFromFrequencies(freqs FreqTable) (*Codebook, error) {
	root := buildTree(freqs)
	table, err := assignCodes(root)
	if err != nil {
		return nil, err
	}

	cb := &Codebook{table: table, freqs: freqs}
	for _, c := range table {
		if c.Len > 0 {
			cb.used++
		}
	}
	return cb, nil
}

// Empty reports whether no symbol has an assigned code. Callers must handle
// this degenerate state before encoding anything.
func (cb *Codebook) Empty() bool { return cb.used == 0 }

// SymbolCount returns the number of symbols with an assigned code.
func (cb *Codebook) SymbolCount() int { return cb.used }

// Code returns the code assigned to a byte value. A zero Len means the
// symbol never occurred in the input set.
func (cb *Codebook) Code(b byte) Code { return cb.table[b] }

// Frequency returns the occurrence count recorded for a byte value.
func (cb *Codebook) Frequency(b byte) uint64 { return cb.freqs[b] }

// Symbols returns the byte values with an assigned code, in ascending order.
func (cb *Codebook) Symbols() []byte {
	out := make([]byte, 0, cb.used)
	for i := 0; i < NumSymbols; i++ {
		if cb.table[i].Len > 0 {
			out = append(out, byte(i))
		}
	}
	return out
}

// WeightedLength returns the sum over all symbols of frequency times code
// length: the total bit length of re-encoding the entire input set.
func (cb *Codebook) WeightedLength() uint64 {
	var total uint64
	for i := 0; i < NumSymbols; i++ {
		total += cb.freqs[i] * uint64(cb.table[i].Len)
	}
	return total
}
