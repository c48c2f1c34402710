package huffman

// NumSymbols is the size of the byte alphabet. Every possible byte value is
// a potential symbol; only those with nonzero frequency take part in the tree.
const NumSymbols = 256

// FreqTable holds one occurrence count per byte value, indexed directly.
// Absent symbols simply have a count of 0.
type FreqTable [NumSymbols]uint64

// CountFrequencies scans the given strings and counts how often each byte
// value occurs across all of them. Input order does not affect the result.
func CountFrequencies(strs []string) FreqTable {
	var ft FreqTable
	for _, s := range strs {
		ft.Add(s)
	}
	return ft
}

// Add accumulates the byte counts of one more string.
func (ft *FreqTable) Add(s string) {
	for i := 0; i < len(s); i++ {
		ft[s[i]]++
	}
}

// UsedSymbols returns the number of byte values with a nonzero count.
func (ft *FreqTable) UsedSymbols() int {
	n := 0
	for _, c := range ft {
		if c > 0 {
			n++
		}
	}
	return n
}
