package huffman

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of bit strings kept by a
// CachedEncoder.
const DefaultCacheSize = 256

// CachedEncoder wraps a Codebook with an LRU cache of computed bit strings.
// Telemetry commands are re-encoded on every send, so repeated encodes of the
// same command become a cache lookup. The cache is read-through and safe for
// concurrent use.
type CachedEncoder struct {
	cb    *Codebook
	cache *lru.Cache[string, string]
}

// NewCachedEncoder creates a CachedEncoder over the given codebook. A size
// of 0 or less selects DefaultCacheSize.
func NewCachedEncoder(cb *Codebook, size int) (*CachedEncoder, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedEncoder{cb: cb, cache: cache}, nil
}

// BitString returns the bit string for s, computing and caching it on miss.
func (e *CachedEncoder) BitString(s string) (string, error) {
	if bits, ok := e.cache.Get(s); ok {
		return bits, nil
	}
	bits, err := e.cb.BitString(s)
	if err != nil {
		return "", err
	}
	e.cache.Add(s, bits)
	return bits, nil
}

// Encode reports the bit and byte size of s, served from the cache when
// possible.
func (e *CachedEncoder) Encode(s string) (Encoded, error) {
	bits, err := e.BitString(s)
	if err != nil {
		return Encoded{}, err
	}
	return Encoded{Bits: len(bits), Bytes: (len(bits) + 7) / 8}, nil
}

// Len returns the number of cached entries.
func (e *CachedEncoder) Len() int { return e.cache.Len() }

// Codebook returns the underlying codebook.
func (e *CachedEncoder) Codebook() *Codebook { return e.cb }
