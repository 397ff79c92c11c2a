// Package frame provides a fixed-capacity page-frame cache that emulates
// physical memory. Victim selection on a full cache is delegated to a
// VictimFinder.
package frame

import "github.com/sarchlab/pagesim/vm"

// A Slot is one physical page frame. It holds at most one page's identity
// together with the metadata that the victim finders and the write policy
// read.
type Slot struct {
	Page       vm.PageNumber
	Occupied   bool
	Dirty      bool
	LastUsed   uint64
	Referenced bool
}

// A Result describes the outcome of resolving one access against the cache.
type Result struct {
	// Hit is true when the page was already resident.
	Hit bool

	// FrameIndex is the frame that holds the page after the access.
	FrameIndex int

	// Evicted is the page that lost its frame to this access. It is only
	// meaningful when HasEviction is true.
	Evicted     vm.PageNumber
	HasEviction bool

	// WroteBack is true when the evicted frame was dirty under the
	// write-back policy, charging one write-back.
	WroteBack bool
}

// A Cache is a fixed array of page frames. It owns occupancy, dirty bits,
// and recency metadata. It never talks to the TLB or the statistics
// directly; the caller propagates evictions and counters from the returned
// Result.
type Cache struct {
	name         string
	slots        []Slot
	victimFinder VictimFinder
	writePolicy  vm.WritePolicy
}

// Name returns the name of the cache.
func (c *Cache) Name() string {
	return c.name
}

// Capacity returns the number of frames.
func (c *Cache) Capacity() int {
	return len(c.slots)
}

// Resolve processes one access for page. A resident page is a hit and only
// refreshes metadata. Otherwise the access faults: an empty frame is filled
// if one exists, and only a completely full cache consults the victim
// finder. The caller must invalidate the evicted page in the TLB before
// processing the next access.
func (c *Cache) Resolve(
	page vm.PageNumber,
	kind vm.AccessKind,
	tick uint64,
) Result {
	for i := range c.slots {
		if c.slots[i].Occupied && c.slots[i].Page == page {
			c.Touch(i, kind, tick)
			return Result{Hit: true, FrameIndex: i}
		}
	}

	victim := c.emptySlot()
	if victim < 0 {
		victim = c.victimFinder.FindVictim(c.slots)
	}

	result := Result{FrameIndex: victim}

	s := &c.slots[victim]
	if s.Occupied {
		result.Evicted = s.Page
		result.HasEviction = true

		if c.writePolicy == vm.WriteBack && s.Dirty {
			result.WroteBack = true
		}
	}

	s.Page = page
	s.Occupied = true
	s.Dirty = false
	s.Referenced = false
	c.Touch(victim, kind, tick)

	return result
}

// Touch refreshes the metadata of one frame as if it were accessed at tick.
// The caller uses it to account for accesses that the TLB satisfied without
// a frame scan.
func (c *Cache) Touch(frameIndex int, kind vm.AccessKind, tick uint64) {
	s := &c.slots[frameIndex]
	s.LastUsed = tick
	s.Referenced = true

	if kind == vm.AccessWrite && c.writePolicy == vm.WriteBack {
		s.Dirty = true
	}
}

// Contents returns a copy of the frame array, in frame-index order.
func (c *Cache) Contents() []Slot {
	return append([]Slot(nil), c.slots...)
}

func (c *Cache) emptySlot() int {
	for i := range c.slots {
		if !c.slots[i].Occupied {
			return i
		}
	}

	return -1
}
