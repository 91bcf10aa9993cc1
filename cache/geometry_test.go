package cache

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Geometry", func() {
	It("should derive the set count, block size, and mask", func() {
		g := MakeGeometry(4, 6, 2)

		Expect(g.NumSets).To(Equal(16))
		Expect(g.BlockSize).To(Equal(64))
		Expect(g.SetIndexMask).To(Equal(uint64(0xf)))
		Expect(g.TotalSize()).To(Equal(uint64(2048)))
	})

	It("should decompose an address into set index and tag", func() {
		g := MakeGeometry(4, 6, 2)

		addr := uint64(0x7ff000214190)
		Expect(g.SetIndex(addr)).To(Equal((addr >> 6) & 0xf))
		Expect(g.Tag(addr)).To(Equal(addr >> 10))
	})

	It("should map the low bits of an address to the block offset only", func() {
		g := MakeGeometry(1, 1, 1)

		// 2 sets, 2-byte blocks. Addresses 0 and 4 land in set 0 with
		// different tags; address 2 lands in set 1.
		Expect(g.SetIndex(0)).To(Equal(uint64(0)))
		Expect(g.Tag(0)).To(Equal(uint64(0)))
		Expect(g.SetIndex(2)).To(Equal(uint64(1)))
		Expect(g.SetIndex(4)).To(Equal(uint64(0)))
		Expect(g.Tag(4)).To(Equal(uint64(2)))
	})

	It("should be total over the full 64-bit address space", func() {
		g := MakeGeometry(16, 6, 8)

		addr := ^uint64(0)
		Expect(g.SetIndex(addr)).To(Equal(uint64(0xffff)))
		Expect(g.Tag(addr)).To(Equal(addr >> 22))
	})
})
