package sim

import (
	"errors"
	"fmt"

	"github.com/sarchlab/pagesim/mem/frame"
	"github.com/sarchlab/pagesim/stats"
	"github.com/sarchlab/pagesim/vm"
	"github.com/sarchlab/pagesim/vm/tlb"
)

// ErrConfiguration reports a configuration that cannot produce a valid
// engine.
var ErrConfiguration = errors.New("invalid configuration")

// A Policy selects the frame eviction algorithm.
type Policy string

// The supported eviction policies.
const (
	PolicyFIFO  Policy = "FIFO"
	PolicyLRU   Policy = "LRU"
	PolicyClock Policy = "CLOCK"
)

// ParsePolicy maps a policy name to a Policy, accepting any casing.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "fifo", "FIFO":
		return PolicyFIFO, nil
	case "lru", "LRU":
		return PolicyLRU, nil
	case "clock", "CLOCK":
		return PolicyClock, nil
	default:
		return "", fmt.Errorf("%w: unknown policy %q", ErrConfiguration, name)
	}
}

// A Builder can build simulation engines.
type Builder struct {
	policy      Policy
	numFrames   int
	tlbEntries  int
	writePolicy vm.WritePolicy
}

// MakeBuilder returns a Builder with default parameters: FIFO eviction,
// 3 frames, no TLB, write-through.
func MakeBuilder() Builder {
	return Builder{
		policy:      PolicyFIFO,
		numFrames:   3,
		writePolicy: vm.WriteThrough,
	}
}

// WithPolicy sets the frame eviction policy.
func (b Builder) WithPolicy(p Policy) Builder {
	b.policy = p
	return b
}

// WithNumFrames sets the number of physical frames.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithTLBEntries sets the TLB capacity. Zero or a negative value disables
// the TLB.
func (b Builder) WithTLBEntries(n int) Builder {
	b.tlbEntries = n
	return b
}

// WithWritePolicy sets the write policy.
func (b Builder) WithWritePolicy(p vm.WritePolicy) Builder {
	b.writePolicy = p
	return b
}

// Build creates an engine with the given name. It refuses configurations
// that would produce undefined cache sizes.
func (b Builder) Build(name string) (*Engine, error) {
	if b.numFrames <= 0 {
		return nil, fmt.Errorf(
			"%w: number of frames must be positive, got %d",
			ErrConfiguration, b.numFrames)
	}

	victimFinder, err := b.victimFinder()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		name:        name,
		policy:      b.policy,
		writePolicy: b.writePolicy,
		collector:   stats.NewCollector(),
	}

	e.frames = frame.MakeBuilder().
		WithCapacity(b.numFrames).
		WithVictimFinder(victimFinder).
		WithWritePolicy(b.writePolicy).
		Build(name + ".FrameCache")

	if b.tlbEntries > 0 {
		e.tlb = tlb.MakeBuilder().
			WithNumEntries(b.tlbEntries).
			Build(name + ".TLB")
	}

	return e, nil
}

func (b Builder) victimFinder() (frame.VictimFinder, error) {
	switch b.policy {
	case PolicyFIFO:
		return frame.NewFIFOVictimFinder(), nil
	case PolicyLRU:
		return frame.NewLRUVictimFinder(), nil
	case PolicyClock:
		return frame.NewClockVictimFinder(), nil
	default:
		return nil, fmt.Errorf(
			"%w: unknown policy %q", ErrConfiguration, b.policy)
	}
}
