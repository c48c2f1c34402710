package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBitString reverses cb's code table over a bit string. The codes are
// prefix-free so a greedy scan is unambiguous.
func decodeBitString(t *testing.T, cb *Codebook, bits string) string {
	t.Helper()

	byCode := make(map[string]byte)
	for _, b := range cb.Symbols() {
		byCode[CodeString(cb.Code(b))] = b
	}

	var out []byte
	start := 0
	for i := 1; i <= len(bits); i++ {
		if b, ok := byCode[bits[start:i]]; ok {
			out = append(out, b)
			start = i
		}
	}
	require.Equal(t, len(bits), start, "trailing bits did not decode")
	return string(out)
}

func TestCodebook_BitString(t *testing.T) {
	cb, err := NewCodebook([]string{"aab", "abc"})
	require.NoError(t, err)

	bits, err := cb.BitString("aab")
	require.NoError(t, err)
	assert.Len(t, bits, 4)
	assert.Equal(t, "aab", decodeBitString(t, cb, bits))

	bits, err = cb.BitString("abc")
	require.NoError(t, err)
	assert.Len(t, bits, 5)
	assert.Equal(t, "abc", decodeBitString(t, cb, bits))
}

func TestCodebook_BitString_RoundTrip(t *testing.T) {
	input := []string{"Pltog", "Plstat", "lcKi", "lcKd", "efTog", "rgTk", "lcLcTog"}
	cb, err := NewCodebook(input)
	require.NoError(t, err)

	for _, s := range input {
		bits, err := cb.BitString(s)
		require.NoError(t, err)
		assert.Equal(t, s, decodeBitString(t, cb, bits), "round trip of %q", s)
	}
}

func TestCodebook_Encode_UnknownSymbol(t *testing.T) {
	cb, err := NewCodebook([]string{"abc"})
	require.NoError(t, err)

	_, err = cb.Encode("abz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "0x7A")
	assert.Contains(t, err.Error(), "offset 2")

	_, err = cb.BitString("zzz")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestCodebook_Encode_EmptyString(t *testing.T) {
	cb, err := NewCodebook([]string{"abc"})
	require.NoError(t, err)

	enc, err := cb.Encode("")
	require.NoError(t, err)
	assert.Equal(t, Encoded{Bits: 0, Bytes: 0}, enc)
}

func TestCodebook_Pack(t *testing.T) {
	cb, err := NewCodebook([]string{"aab", "abc"})
	require.NoError(t, err)

	packed, bitCount, err := cb.Pack("aab")
	require.NoError(t, err)
	assert.Equal(t, 4, bitCount)
	require.Len(t, packed, 1)

	// Packed bytes carry the bit string MSB first, zero padded.
	bits, err := cb.BitString("aab")
	require.NoError(t, err)
	for i := 0; i < bitCount; i++ {
		got := packed[i/8]>>(7-i%8)&1 == 1
		assert.Equal(t, bits[i] == '1', got, "bit %d", i)
	}
	for i := bitCount; i < 8*len(packed); i++ {
		assert.Zero(t, packed[i/8]>>(7-i%8)&1, "padding bit %d", i)
	}
}

func TestCodebook_Pack_ByteCountMatchesEncode(t *testing.T) {
	cb, err := NewCodebook([]string{"Pltog", "Plstat", "efTog"}) // varied lengths
	require.NoError(t, err)

	for _, s := range []string{"Pltog", "Plstat", "efTog", "PPPP"} {
		enc, err := cb.Encode(s)
		require.NoError(t, err)
		packed, bitCount, err := cb.Pack(s)
		require.NoError(t, err)

		assert.Equal(t, enc.Bits, bitCount, "bits for %q", s)
		assert.Equal(t, enc.Bytes, len(packed), "bytes for %q", s)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{"empty", Code{}, ""},
		{"single zero bit", Code{Bits: 0, Len: 1}, "0"},
		{"single one bit", Code{Bits: 1, Len: 1}, "1"},
		{"leading zeros kept", Code{Bits: 0b011, Len: 3}, "011"},
		{"all ones", Code{Bits: 0b1111, Len: 4}, "1111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeString(tt.code))
		})
	}
}
