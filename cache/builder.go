package cache

// Builder can build caches.
type Builder struct {
	setIndexBits    int
	blockOffsetBits int
	associativity   int
	victimFinder    VictimFinder
}

// MakeBuilder creates a builder with default parameters: 4 set-index bits,
// 4-way associativity, 64-byte blocks, LRU replacement.
func MakeBuilder() Builder {
	return Builder{
		setIndexBits:    4,
		blockOffsetBits: 6,
		associativity:   4,
	}
}

// WithSetIndexBits sets the number of set-index bits of the builder.
func (b Builder) WithSetIndexBits(setIndexBits int) Builder {
	b.setIndexBits = setIndexBits
	return b
}

// WithBlockOffsetBits sets the number of block-offset bits of the builder.
func (b Builder) WithBlockOffsetBits(blockOffsetBits int) Builder {
	b.blockOffsetBits = blockOffsetBits
	return b
}

// WithAssociativity sets the number of ways per set of the builder.
func (b Builder) WithAssociativity(associativity int) Builder {
	b.associativity = associativity
	return b
}

// WithVictimFinder sets the replacement policy of the builder.
func (b Builder) WithVictimFinder(victimFinder VictimFinder) Builder {
	b.victimFinder = victimFinder
	return b
}

// Build creates the cache.
func (b Builder) Build() *Cache {
	b.mustHaveValidGeometry()

	c := &Cache{
		geometry:     MakeGeometry(b.setIndexBits, b.blockOffsetBits, b.associativity),
		victimFinder: b.victimFinder,
	}

	if c.victimFinder == nil {
		c.victimFinder = NewLRUVictimFinder()
	}

	c.tags = newTagArray(c.geometry)

	return c
}

func (b Builder) mustHaveValidGeometry() {
	if b.setIndexBits <= 0 || b.blockOffsetBits <= 0 || b.associativity <= 0 {
		panic("cache geometry parameters must be positive")
	}

	if b.setIndexBits+b.blockOffsetBits > 64 {
		panic("set-index and block-offset bits must fit in a 64-bit address")
	}
}
