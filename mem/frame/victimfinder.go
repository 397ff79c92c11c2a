package frame

// A VictimFinder decides which frame should be reclaimed. It is only
// consulted when every frame is occupied.
type VictimFinder interface {
	FindVictim(slots []Slot) int
}

// FIFOVictimFinder evicts frames in insertion order. It keeps a rotating
// pointer that advances after every eviction regardless of later hits.
type FIFOVictimFinder struct {
	nextVictim int
}

// NewFIFOVictimFinder returns a newly constructed FIFO victim finder.
func NewFIFOVictimFinder() *FIFOVictimFinder {
	return &FIFOVictimFinder{}
}

// FindVictim returns the frame at the rotating pointer and advances it.
func (f *FIFOVictimFinder) FindVictim(slots []Slot) int {
	victim := f.nextVictim
	f.nextVictim = (f.nextVictim + 1) % len(slots)

	return victim
}

// LRUVictimFinder evicts the least recently used frame. It holds no state
// of its own; it reads the last-used ticks that the cache maintains.
type LRUVictimFinder struct{}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	return &LRUVictimFinder{}
}

// FindVictim returns the frame with the smallest last-used tick. Ties go to
// the lowest frame index.
func (f *LRUVictimFinder) FindVictim(slots []Slot) int {
	victim := 0
	for i := 1; i < len(slots); i++ {
		if slots[i].LastUsed < slots[victim].LastUsed {
			victim = i
		}
	}

	return victim
}

// ClockVictimFinder approximates LRU with the second-chance algorithm. A
// rotating hand scans the frames; a referenced frame has its bit cleared
// and is passed over once, an unreferenced frame becomes the victim.
type ClockVictimFinder struct {
	hand int
}

// NewClockVictimFinder returns a newly constructed CLOCK victim finder.
func NewClockVictimFinder() *ClockVictimFinder {
	return &ClockVictimFinder{}
}

// FindVictim scans from the hand for the first unreferenced frame. Each
// frame's reference bit can be cleared at most once before the frame
// becomes a candidate, so the scan must finish within two sweeps. Going
// past that bound means the bit maintenance is broken.
func (f *ClockVictimFinder) FindVictim(slots []Slot) int {
	for visited := 0; visited < 2*len(slots); visited++ {
		s := &slots[f.hand]

		if !s.Referenced {
			victim := f.hand
			f.hand = (f.hand + 1) % len(slots)

			return victim
		}

		s.Referenced = false
		f.hand = (f.hand + 1) % len(slots)
	}

	panic("clock scan found no victim within two sweeps")
}
