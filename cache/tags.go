package cache

// A Block of a cache is the metadata associated with one cache line. Recency
// is the logical timestamp of the last access and is meaningful only when
// IsValid is true; an empty block keeps its initial zero recency.
type Block struct {
	IsValid bool
	Tag     uint64
	Recency uint64
	SetID   int
	WayID   int
}

// A Set is the list of blocks a given address may be stored at.
type Set struct {
	Blocks []Block
}

// tagArray is the fixed sets-by-ways table of blocks.
type tagArray struct {
	geometry Geometry
	sets     []Set
}

func newTagArray(geometry Geometry) *tagArray {
	t := &tagArray{geometry: geometry}
	t.Reset()

	return t
}

// GetSet returns the set that a certain address maps to.
func (t *tagArray) GetSet(addr uint64) (set *Set, setID int) {
	setID = int(t.geometry.SetIndex(addr))
	set = &t.sets[setID]

	return
}

// Lookup finds the block that holds the tag of addr. The second return value
// reports whether a valid matching block was found.
func (t *tagArray) Lookup(addr uint64) (Block, bool) {
	set, _ := t.GetSet(addr)
	tag := t.geometry.Tag(addr)

	for _, block := range set.Blocks {
		if block.IsValid && block.Tag == tag {
			return block, true
		}
	}

	return Block{}, false
}

// Update writes the block back to its (set, way) position.
func (t *tagArray) Update(block Block) {
	t.sets[block.SetID].Blocks[block.WayID] = block
}

// Reset marks all the blocks in the array invalid with zero recency.
func (t *tagArray) Reset() {
	t.sets = make([]Set, t.geometry.NumSets)
	for i := 0; i < t.geometry.NumSets; i++ {
		for j := 0; j < t.geometry.Associativity; j++ {
			t.sets[i].Blocks = append(t.sets[i].Blocks, Block{
				SetID: i,
				WayID: j,
			})
		}
	}
}
