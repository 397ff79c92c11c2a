// Package tlb provides a small fully-associative translation lookaside
// buffer that maps virtual page numbers to frame indices.
package tlb

import "github.com/sarchlab/pagesim/vm"

type entry struct {
	valid    bool
	page     vm.PageNumber
	frame    int
	lastUsed uint64
}

// A Cache is a fully-associative TLB. It replaces entries with a strict LRU
// policy of its own, independent of the frame cache's eviction policy. Ties
// on the last-used tick are broken by the lowest entry index, so runs are
// reproducible.
type Cache struct {
	name    string
	entries []entry
}

// Name returns the name of the TLB.
func (c *Cache) Name() string {
	return c.name
}

// Capacity returns the number of entries the TLB can hold.
func (c *Cache) Capacity() int {
	return len(c.entries)
}

// Lookup searches the TLB for page. On a hit it refreshes the entry's
// last-used tick and returns the cached frame index.
func (c *Cache) Lookup(page vm.PageNumber, tick uint64) (frame int, found bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if e.valid && e.page == page {
			e.lastUsed = tick
			return e.frame, true
		}
	}

	return 0, false
}

// Insert records a page-to-frame mapping. An existing entry for the page is
// updated in place. Otherwise the first invalid entry is filled, and if all
// entries are valid the least recently used one is overwritten.
func (c *Cache) Insert(page vm.PageNumber, frame int, tick uint64) {
	for i := range c.entries {
		e := &c.entries[i]
		if e.valid && e.page == page {
			e.frame = frame
			e.lastUsed = tick
			return
		}
	}

	victim := -1
	for i := range c.entries {
		if !c.entries[i].valid {
			victim = i
			break
		}
	}

	if victim < 0 {
		victim = 0
		for i := 1; i < len(c.entries); i++ {
			if c.entries[i].lastUsed < c.entries[victim].lastUsed {
				victim = i
			}
		}
	}

	c.entries[victim] = entry{
		valid:    true,
		page:     page,
		frame:    frame,
		lastUsed: tick,
	}
}

// Invalidate drops any entry that maps page. The caller must invoke it
// whenever the page loses its frame, before the next access is processed,
// so that the TLB never serves a stale mapping.
func (c *Cache) Invalidate(page vm.PageNumber) {
	for i := range c.entries {
		e := &c.entries[i]
		if e.valid && e.page == page {
			e.valid = false
		}
	}
}
