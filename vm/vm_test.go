package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Address translation", func() {
	It("should map addresses in the first page to page 0", func() {
		Expect(PageNumberOf(0x0000)).To(Equal(PageNumber(0)))
		Expect(PageNumberOf(0x0fff)).To(Equal(PageNumber(0)))
	})

	It("should map page-aligned addresses to their page index", func() {
		Expect(PageNumberOf(0x1000)).To(Equal(PageNumber(1)))
		Expect(PageNumberOf(0x2000)).To(Equal(PageNumber(2)))
	})

	It("should translate the highest 32-bit address", func() {
		Expect(PageNumberOf(0xffffffff)).
			To(Equal(PageNumber(0xffffffff / PageSize)))
	})

	It("should compute the in-page offset", func() {
		Expect(PageOffsetOf(0x1abc)).To(Equal(uint64(0xabc)))
		Expect(PageOffsetOf(0x2000)).To(Equal(uint64(0)))
	})
})
