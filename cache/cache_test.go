package cache_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/csim/cache"
)

var _ = Describe("Cache", func() {
	var c *cache.Cache

	BeforeEach(func() {
		// 4 sets, 2-way, 16-byte blocks.
		c = cache.MakeBuilder().
			WithSetIndexBits(2).
			WithAssociativity(2).
			WithBlockOffsetBits(4).
			Build()
	})

	It("should miss on a cold cache", func() {
		result := c.Access(0x1000)

		Expect(result.Hit).To(BeFalse())
		Expect(result.Evicted).To(BeFalse())
		Expect(c.Stats()).To(Equal(cache.Stats{Misses: 1}))
	})

	It("should hit when the same address repeats", func() {
		c.Access(0x1000)
		result := c.Access(0x1000)

		Expect(result.Hit).To(BeTrue())
		Expect(c.Stats()).To(Equal(cache.Stats{Hits: 1, Misses: 1}))
	})

	It("should hit anywhere within one block", func() {
		c.Access(0x1000)
		result := c.Access(0x100f)

		Expect(result.Hit).To(BeTrue())
	})

	It("should fill all ways of a set before evicting", func() {
		// Three tags, all mapping to set 0 of a 2-way cache.
		c.Access(0x0000)
		c.Access(0x0100)
		Expect(c.Stats().Evictions).To(Equal(uint64(0)))

		result := c.Access(0x0200)

		Expect(result.Evicted).To(BeTrue())
		Expect(c.Stats()).To(Equal(cache.Stats{Misses: 3, Evictions: 1}))
	})

	It("should evict the least recently used block", func() {
		// A, B, A, C into one set: B is the LRU victim when C arrives.
		c.Access(0x0000) // A
		c.Access(0x0100) // B
		c.Access(0x0000) // A again, refreshing its recency
		result := c.Access(0x0200) // C

		Expect(result.Evicted).To(BeTrue())
		Expect(result.EvictedTag).To(Equal(uint64(0x4)))

		Expect(c.Access(0x0000).Hit).To(BeTrue())
	})

	It("should keep sets isolated from each other", func() {
		c.Access(0x0000) // set 0
		c.Access(0x0010) // set 1
		c.Access(0x0020) // set 2

		Expect(c.Access(0x0000).Hit).To(BeTrue())
		Expect(c.Access(0x0010).Hit).To(BeTrue())
		Expect(c.Access(0x0020).Hit).To(BeTrue())
		Expect(c.Stats().Evictions).To(Equal(uint64(0)))
	})

	It("should count one access per invocation", func() {
		addrs := []uint64{0x0, 0x100, 0x0, 0x200, 0x10, 0x0}
		for _, addr := range addrs {
			c.Access(addr)
		}

		stats := c.Stats()
		Expect(stats.Hits + stats.Misses).To(Equal(uint64(len(addrs))))
	})

	It("should clear all state on reset", func() {
		c.Access(0x1000)
		c.Access(0x2000)

		c.Reset()

		Expect(c.Stats()).To(Equal(cache.Stats{}))
		Expect(c.Access(0x1000).Hit).To(BeFalse())
	})

	It("should replay the direct-mapped two-set example", func() {
		dm := cache.MakeBuilder().
			WithSetIndexBits(1).
			WithAssociativity(1).
			WithBlockOffsetBits(1).
			Build()

		dm.Access(0) // miss, fills set 0
		dm.Access(2) // miss, fills set 1
		dm.Access(4) // miss, evicts tag 0 from set 0

		Expect(dm.Stats()).To(Equal(cache.Stats{
			Hits:      0,
			Misses:    3,
			Evictions: 1,
		}))
	})
})
