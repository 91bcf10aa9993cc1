package cache

// Stats accumulates the aggregate outcome counters of one replay session.
// Hits+Misses always equals the number of accesses performed.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// An AccessResult describes how the cache responded to a single access.
type AccessResult struct {
	Hit        bool
	Evicted    bool
	EvictedTag uint64
	SetID      int
	WayID      int
}

// A Cache simulates one level of a set-associative cache. Each access is a
// pure tag-and-recency bookkeeping step; no data moves and no latency is
// modeled. A Cache is not safe for concurrent use.
type Cache struct {
	geometry     Geometry
	tags         *tagArray
	victimFinder VictimFinder

	clock uint64
	stats Stats
}

// Geometry returns the geometry the cache was built with.
func (c *Cache) Geometry() Geometry {
	return c.geometry
}

// Stats returns a copy of the counters accumulated so far.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Reset clears all blocks, the clock, and the counters.
func (c *Cache) Reset() {
	c.tags.Reset()
	c.clock = 0
	c.stats = Stats{}
}

// tick advances the global access clock. The first stamp handed out is 1, so
// a stamped block is always distinguishable from an empty one.
func (c *Cache) tick() uint64 {
	c.clock++
	return c.clock
}

// Access performs one access to addr. On a hit the matching block's recency
// is refreshed. On a miss the victim finder picks a block to overwrite; the
// eviction counter advances only when the victim held live data.
func (c *Cache) Access(addr uint64) AccessResult {
	if block, found := c.tags.Lookup(addr); found {
		block.Recency = c.tick()
		c.tags.Update(block)
		c.stats.Hits++

		return AccessResult{
			Hit:   true,
			SetID: block.SetID,
			WayID: block.WayID,
		}
	}

	c.stats.Misses++

	set, _ := c.tags.GetSet(addr)
	victim := c.victimFinder.FindVictim(set)

	result := AccessResult{
		SetID: victim.SetID,
		WayID: victim.WayID,
	}

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedTag = victim.Tag
	}

	victim.IsValid = true
	victim.Tag = c.geometry.Tag(addr)
	victim.Recency = c.tick()
	c.tags.Update(victim)

	return result
}
