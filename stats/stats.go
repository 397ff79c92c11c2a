// Package stats accumulates the counters of a simulation run and derives
// hit rates and the average memory access time.
package stats

import "github.com/sarchlab/pagesim/vm"

// Latencies used by the AMAT estimate, in cycles.
const (
	TLBLatency  = 1.0
	MemLatency  = 100.0
	DiskLatency = 10000000.0
)

// A Collector accumulates the counters of one run. Counters only ever
// increase; they are never reset mid-run.
type Collector struct {
	reads      uint64
	writes     uint64
	pageFaults uint64
	tlbHits    uint64
	tlbMisses  uint64
	writeBacks uint64
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// CountAccess counts one read or write.
func (c *Collector) CountAccess(kind vm.AccessKind) {
	if kind == vm.AccessWrite {
		c.writes++
	} else {
		c.reads++
	}
}

// CountPageFault counts one page fault.
func (c *Collector) CountPageFault() {
	c.pageFaults++
}

// CountTLBHit counts one TLB hit.
func (c *Collector) CountTLBHit() {
	c.tlbHits++
}

// CountTLBMiss counts one TLB miss.
func (c *Collector) CountTLBMiss() {
	c.tlbMisses++
}

// CountWriteBack counts one dirty eviction.
func (c *Collector) CountWriteBack() {
	c.writeBacks++
}

// A Report is an immutable snapshot of the counters with the derived
// rates. HasRates and HasTLBRates guard the rates whose denominators can
// be zero: an empty run has no fault rate, and a run without TLB lookups
// has no TLB hit rate and no AMAT.
type Report struct {
	Reads         uint64
	Writes        uint64
	TotalAccesses uint64
	PageFaults    uint64
	TLBHits       uint64
	TLBMisses     uint64
	WriteBacks    uint64

	HasRates  bool
	FaultRate float64
	HitRate   float64

	HasTLBRates bool
	TLBHitRate  float64
	AMAT        float64
}

// Snapshot derives a Report from the current counters.
func (c *Collector) Snapshot() Report {
	r := Report{
		Reads:         c.reads,
		Writes:        c.writes,
		TotalAccesses: c.reads + c.writes,
		PageFaults:    c.pageFaults,
		TLBHits:       c.tlbHits,
		TLBMisses:     c.tlbMisses,
		WriteBacks:    c.writeBacks,
	}

	if r.TotalAccesses > 0 {
		r.HasRates = true
		r.FaultRate = float64(r.PageFaults) / float64(r.TotalAccesses)
		r.HitRate = 1.0 - r.FaultRate
	}

	tlbTotal := r.TLBHits + r.TLBMisses
	if tlbTotal > 0 {
		r.HasTLBRates = true
		r.TLBHitRate = float64(r.TLBHits) / float64(tlbTotal)
		r.AMAT = r.TLBHitRate*TLBLatency +
			(1.0-r.TLBHitRate)*MemLatency +
			r.FaultRate*DiskLatency
	}

	return r
}
