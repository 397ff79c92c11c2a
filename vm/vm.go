// Package vm defines the value types shared across the virtual memory
// simulator: page numbers, access kinds, and write policies.
package vm

// PageSize is the number of bytes in a page. All address translation in the
// simulator assumes this fixed page size.
const PageSize = 4096

// A PageNumber identifies a virtual page.
type PageNumber uint64

// PageNumberOf returns the virtual page number that contains addr.
func PageNumberOf(addr uint32) PageNumber {
	return PageNumber(uint64(addr) / PageSize)
}

// PageOffsetOf returns the offset of addr within its page.
func PageOffsetOf(addr uint32) uint64 {
	return uint64(addr) % PageSize
}

// An AccessKind tells whether an access reads or writes memory.
type AccessKind int

// The two kinds of memory access.
const (
	AccessRead AccessKind = iota
	AccessWrite
)

func (k AccessKind) String() string {
	if k == AccessWrite {
		return "write"
	}
	return "read"
}

// A WritePolicy decides when a write is committed to the backing store.
// Write-through commits every write immediately. Write-back defers the cost
// to eviction time, tracked with a per-frame dirty bit.
type WritePolicy int

// The supported write policies.
const (
	WriteThrough WritePolicy = iota
	WriteBack
)

func (p WritePolicy) String() string {
	if p == WriteBack {
		return "Write-Back"
	}
	return "Write-Through"
}
