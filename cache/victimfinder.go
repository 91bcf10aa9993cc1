package cache

// A VictimFinder decides which block in a set should be evicted.
type VictimFinder interface {
	FindVictim(set *Set) Block
}

// LRUVictimFinder selects the block with the smallest recency stamp.
type LRUVictimFinder struct {
}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	f := new(LRUVictimFinder)
	return f
}

// FindVictim returns the least recently used block in a set. Empty blocks
// keep their initial zero recency and are therefore picked before any block
// that has ever been accessed. Ties go to the lowest way index.
func (f *LRUVictimFinder) FindVictim(set *Set) Block {
	victim := set.Blocks[0]

	for _, block := range set.Blocks[1:] {
		if block.Recency < victim.Recency {
			victim = block
		}
	}

	return victim
}
