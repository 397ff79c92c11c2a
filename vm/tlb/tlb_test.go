package tlb

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/vm"
)

var _ = Describe("TLB", func() {
	var tlb *Cache

	BeforeEach(func() {
		tlb = MakeBuilder().WithNumEntries(2).Build("TLB")
	})

	It("should miss when empty", func() {
		_, found := tlb.Lookup(vm.PageNumber(1), 1)

		Expect(found).To(BeFalse())
	})

	It("should hit after insertion", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)

		frame, found := tlb.Lookup(vm.PageNumber(1), 2)

		Expect(found).To(BeTrue())
		Expect(frame).To(Equal(0))
	})

	It("should update an existing entry in place", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)
		tlb.Insert(vm.PageNumber(2), 1, 2)
		tlb.Insert(vm.PageNumber(1), 1, 3)

		frame, found := tlb.Lookup(vm.PageNumber(1), 4)
		Expect(found).To(BeTrue())
		Expect(frame).To(Equal(1))

		frame, found = tlb.Lookup(vm.PageNumber(2), 5)
		Expect(found).To(BeTrue())
		Expect(frame).To(Equal(1))
	})

	It("should evict the least recently used entry when full", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)
		tlb.Insert(vm.PageNumber(2), 1, 2)

		tlb.Lookup(vm.PageNumber(1), 3)
		tlb.Insert(vm.PageNumber(3), 0, 4)

		_, found := tlb.Lookup(vm.PageNumber(2), 5)
		Expect(found).To(BeFalse())

		_, found = tlb.Lookup(vm.PageNumber(1), 6)
		Expect(found).To(BeTrue())

		_, found = tlb.Lookup(vm.PageNumber(3), 7)
		Expect(found).To(BeTrue())
	})

	It("should break last-used ties by the lowest entry index", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)
		tlb.Insert(vm.PageNumber(2), 1, 1)

		tlb.Insert(vm.PageNumber(3), 0, 2)

		_, found := tlb.Lookup(vm.PageNumber(1), 3)
		Expect(found).To(BeFalse())

		_, found = tlb.Lookup(vm.PageNumber(2), 4)
		Expect(found).To(BeTrue())
	})

	It("should refresh recency on lookup hits", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)
		tlb.Insert(vm.PageNumber(2), 1, 2)

		tlb.Lookup(vm.PageNumber(1), 3)

		tlb.Insert(vm.PageNumber(3), 0, 4)

		_, found := tlb.Lookup(vm.PageNumber(1), 5)
		Expect(found).To(BeTrue())
	})

	It("should invalidate all entries for a page", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)

		tlb.Invalidate(vm.PageNumber(1))

		_, found := tlb.Lookup(vm.PageNumber(1), 2)
		Expect(found).To(BeFalse())
	})

	It("should reuse invalidated entries before evicting", func() {
		tlb.Insert(vm.PageNumber(1), 0, 1)
		tlb.Insert(vm.PageNumber(2), 1, 2)

		tlb.Invalidate(vm.PageNumber(1))
		tlb.Insert(vm.PageNumber(3), 0, 3)

		_, found := tlb.Lookup(vm.PageNumber(2), 4)
		Expect(found).To(BeTrue())

		_, found = tlb.Lookup(vm.PageNumber(3), 5)
		Expect(found).To(BeTrue())
	})
})
