// Package huffman derives character-level Huffman codes for a fixed set of
// strings and encodes strings against the resulting code table.
//
// The pipeline is: count byte frequencies across the whole string set, build
// a binary tree over the symbols with nonzero frequency using a min-heap,
// then walk the tree to assign each leaf a prefix-free (value, length) code.
// The resulting Codebook is immutable and safe for concurrent readers.
package huffman
