package huffman

import "errors"

var (
	// ErrCodeOverflow is returned when a derived code length exceeds
	// MaxCodeLen. The build is aborted for the whole run; a partial table
	// would break the uniqueness guarantees of the codes already assigned.
	ErrCodeOverflow = errors.New("huffman code length exceeds maximum width")

	// ErrUnknownSymbol is returned when encoding a byte that never occurred
	// during frequency counting and therefore has no assigned code.
	// Recoverable per encode call.
	ErrUnknownSymbol = errors.New("symbol has no assigned code")
)
