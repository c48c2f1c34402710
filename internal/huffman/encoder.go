package huffman

import (
	"fmt"
	"strings"
)

// Encoded reports the size of one encoded string. Bytes is the bit count
// rounded up to whole bytes.
type Encoded struct {
	Bits  int `json:"bits"`
	Bytes int `json:"bytes"`
}

// Encode sums the code lengths of every byte in s. It fails with
// ErrUnknownSymbol if any byte has no assigned code; silently emitting zero
// bits for such a byte would collapse distinct strings onto the same bit
// sequence. The codebook is never mutated.
func (cb *Codebook) Encode(s string) (Encoded, error) {
	bits := 0
	for i := 0; i < len(s); i++ {
		c := cb.table[s[i]]
		if c.Len == 0 {
			return Encoded{}, unknownSymbolError(s[i], i)
		}
		bits += c.Len
	}
	return Encoded{Bits: bits, Bytes: (bits + 7) / 8}, nil
}

// BitString returns the concatenated codes of s as a literal '0'/'1' string,
// most significant bit of each code first.
func (cb *Codebook) BitString(s string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := cb.table[s[i]]
		if c.Len == 0 {
			return "", unknownSymbolError(s[i], i)
		}
		appendBits(&sb, c)
	}
	return sb.String(), nil
}

// Pack encodes s into packed bytes, most significant bit first, padding the
// final byte with zero bits. The returned bit count excludes the padding.
func (cb *Codebook) Pack(s string) ([]byte, int, error) {
	var out []byte
	var cur byte
	bits, nbits := 0, 0
	for i := 0; i < len(s); i++ {
		c := cb.table[s[i]]
		if c.Len == 0 {
			return nil, 0, unknownSymbolError(s[i], i)
		}
		bits += c.Len
		for j := c.Len - 1; j >= 0; j-- {
			cur <<= 1
			if (c.Bits>>uint(j))&1 == 1 {
				cur |= 1
			}
			nbits++
			if nbits == 8 {
				out = append(out, cur)
				cur, nbits = 0, 0
			}
		}
	}
	if nbits > 0 {
		out = append(out, cur<<uint(8-nbits))
	}
	return out, bits, nil
}

// CodeString renders a single code as '0'/'1' characters.
func CodeString(c Code) string {
	var sb strings.Builder
	appendBits(&sb, c)
	return sb.String()
}

func appendBits(sb *strings.Builder, c Code) {
	for i := c.Len - 1; i >= 0; i-- {
		if (c.Bits>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
}

func unknownSymbolError(b byte, offset int) error {
	return fmt.Errorf("byte 0x%02X at offset %d: %w", b, offset, ErrUnknownSymbol)
}
