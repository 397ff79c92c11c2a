package frame

import "github.com/sarchlab/pagesim/vm"

// A Builder can build frame caches.
type Builder struct {
	capacity     int
	victimFinder VictimFinder
	writePolicy  vm.WritePolicy
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		capacity:    3,
		writePolicy: vm.WriteThrough,
	}
}

// WithCapacity sets the number of frames.
func (b Builder) WithCapacity(n int) Builder {
	b.capacity = n
	return b
}

// WithVictimFinder sets the eviction policy used when the cache is full.
func (b Builder) WithVictimFinder(vf VictimFinder) Builder {
	b.victimFinder = vf
	return b
}

// WithWritePolicy sets the write policy. Only write-back maintains dirty
// bits and charges write-backs at eviction time.
func (b Builder) WithWritePolicy(p vm.WritePolicy) Builder {
	b.writePolicy = p
	return b
}

// Build creates a frame cache with the given name.
func (b Builder) Build(name string) *Cache {
	if b.capacity <= 0 {
		panic("frame cache must have at least one frame")
	}

	if b.victimFinder == nil {
		panic("frame cache requires a victim finder")
	}

	return &Cache{
		name:         name,
		slots:        make([]Slot, b.capacity),
		victimFinder: b.victimFinder,
		writePolicy:  b.writePolicy,
	}
}
