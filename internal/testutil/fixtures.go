// Package testutil provides shared fixtures for tests.
package testutil

import (
	"github.com/telemetry-codec/internal/commands"
	"github.com/telemetry-codec/internal/huffman"
)

// TextbookFrequencies returns the classic six-symbol frequency distribution
// whose optimal code lengths are known: f=1, c=d=e=3, a=b=4.
func TextbookFrequencies() huffman.FreqTable {
	var ft huffman.FreqTable
	ft['a'] = 5
	ft['b'] = 9
	ft['c'] = 12
	ft['d'] = 13
	ft['e'] = 16
	ft['f'] = 45
	return ft
}

// SampleStrings returns a two-string input with frequencies a:3, b:2, c:1,
// yielding code lengths a=1, b=2, c=2.
func SampleStrings() []string {
	return []string{"aab", "abc"}
}

// SampleSet returns a small command set for report tests.
func SampleSet() *commands.Set {
	return &commands.Set{
		Name: "sample",
		Entries: []commands.Entry{
			{Short: "aab", Comment: "first sample"},
			{Short: "abc", Comment: "second sample"},
		},
	}
}
