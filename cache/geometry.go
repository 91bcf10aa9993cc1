// Package cache models a set-associative cache with LRU replacement. Only
// tags and recency are tracked; no data contents are stored.
package cache

// A Geometry holds the shape of a set-associative cache. All derived values
// are computed once from the three configuration integers.
type Geometry struct {
	SetIndexBits    int
	BlockOffsetBits int
	Associativity   int

	NumSets      int
	BlockSize    int
	SetIndexMask uint64
}

// MakeGeometry derives the full geometry from the three configuration
// integers. Callers must have validated that all three are positive and that
// setIndexBits+blockOffsetBits fits in a 64-bit address.
func MakeGeometry(setIndexBits, blockOffsetBits, associativity int) Geometry {
	numSets := 1 << setIndexBits

	return Geometry{
		SetIndexBits:    setIndexBits,
		BlockOffsetBits: blockOffsetBits,
		Associativity:   associativity,
		NumSets:         numSets,
		BlockSize:       1 << blockOffsetBits,
		SetIndexMask:    uint64(numSets - 1),
	}
}

// TotalSize returns the maximum number of bytes the cache can hold.
func (g Geometry) TotalSize() uint64 {
	return uint64(g.NumSets) * uint64(g.Associativity) * uint64(g.BlockSize)
}

// SetIndex extracts the set-index field of an address.
func (g Geometry) SetIndex(addr uint64) uint64 {
	return (addr >> uint(g.BlockOffsetBits)) & g.SetIndexMask
}

// Tag extracts the tag field of an address. The block-offset bits are
// discarded, as block contents are not modeled.
func (g Geometry) Tag(addr uint64) uint64 {
	return addr >> uint(g.SetIndexBits+g.BlockOffsetBits)
}
