package stats

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/vm"
)

var _ = ginkgo.Describe("Collector", func() {
	var c *Collector

	ginkgo.BeforeEach(func() {
		c = NewCollector()
	})

	ginkgo.It("should produce no rates for an empty run", func() {
		r := c.Snapshot()

		Expect(r.TotalAccesses).To(Equal(uint64(0)))
		Expect(r.HasRates).To(BeFalse())
		Expect(r.HasTLBRates).To(BeFalse())
	})

	ginkgo.It("should count reads and writes separately", func() {
		c.CountAccess(vm.AccessRead)
		c.CountAccess(vm.AccessRead)
		c.CountAccess(vm.AccessWrite)

		r := c.Snapshot()

		Expect(r.Reads).To(Equal(uint64(2)))
		Expect(r.Writes).To(Equal(uint64(1)))
		Expect(r.TotalAccesses).To(Equal(uint64(3)))
	})

	ginkgo.It("should derive fault and hit rates", func() {
		for i := 0; i < 4; i++ {
			c.CountAccess(vm.AccessRead)
		}
		c.CountPageFault()

		r := c.Snapshot()

		Expect(r.HasRates).To(BeTrue())
		Expect(r.FaultRate).To(BeNumerically("~", 0.25, 1e-12))
		Expect(r.HitRate).To(BeNumerically("~", 0.75, 1e-12))
	})

	ginkgo.It("should produce no TLB rates without TLB lookups", func() {
		c.CountAccess(vm.AccessRead)

		r := c.Snapshot()

		Expect(r.HasRates).To(BeTrue())
		Expect(r.HasTLBRates).To(BeFalse())
	})

	ginkgo.It("should compute AMAT from the closed form", func() {
		for i := 0; i < 10; i++ {
			c.CountAccess(vm.AccessRead)
		}
		for i := 0; i < 8; i++ {
			c.CountTLBHit()
		}
		c.CountTLBMiss()
		c.CountTLBMiss()
		c.CountPageFault()

		r := c.Snapshot()

		Expect(r.HasTLBRates).To(BeTrue())
		Expect(r.TLBHitRate).To(BeNumerically("~", 0.8, 1e-12))
		Expect(r.AMAT).To(BeNumerically("~", 1000020.8, 1e-6))
	})
})
