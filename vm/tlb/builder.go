package tlb

// A Builder can build TLBs.
type Builder struct {
	numEntries int
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		numEntries: 16,
	}
}

// WithNumEntries sets the number of entries in the TLB.
func (b Builder) WithNumEntries(n int) Builder {
	b.numEntries = n
	return b
}

// Build creates a TLB with the given name.
func (b Builder) Build(name string) *Cache {
	if b.numEntries <= 0 {
		panic("tlb must have at least one entry")
	}

	return &Cache{
		name:    name,
		entries: make([]entry, b.numEntries),
	}
}
