// Package sim orchestrates one simulation run: it replays trace records
// through the TLB and the frame cache and accumulates statistics.
package sim

import (
	"io"

	"github.com/sarchlab/pagesim/hooking"
	"github.com/sarchlab/pagesim/mem/frame"
	"github.com/sarchlab/pagesim/stats"
	"github.com/sarchlab/pagesim/trace"
	"github.com/sarchlab/pagesim/vm"
)

// HookPosAccessComplete marks the completion of one access. The hook item
// is the Access.
var HookPosAccessComplete = &hooking.HookPos{Name: "AccessComplete"}

// HookPosRunComplete marks the end of a run. The hook item is the Report.
var HookPosRunComplete = &hooking.HookPos{Name: "RunComplete"}

// An OutcomeKind tags how an access was resolved.
type OutcomeKind int

// The possible access outcomes. A skipped access carried an operation
// marker the simulator does not understand.
const (
	OutcomeSkipped OutcomeKind = iota
	OutcomeTLBHit
	OutcomeFrameHit
	OutcomePageFault
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeTLBHit:
		return "tlb-hit"
	case OutcomeFrameHit:
		return "frame-hit"
	case OutcomePageFault:
		return "page-fault"
	default:
		return "skipped"
	}
}

// An Access is the fully resolved outcome of one trace record.
type Access struct {
	Tick uint64
	Op   byte
	Addr uint32
	Kind vm.AccessKind
	Page vm.PageNumber

	Outcome OutcomeKind

	// TLBMissed is true when the TLB was consulted and missed. It stays
	// false when the TLB is disabled.
	TLBMissed bool

	// FrameIndex is the frame serving the access, or -1 for skipped
	// records.
	FrameIndex int

	// Frames is the frame occupancy after the access.
	Frames []frame.Slot
}

// An Engine owns all the mutable state of one run: the frame cache, the
// optional TLB, the statistics, and the logical clock. Engines are not
// safe for concurrent use; sweep configurations by running one engine per
// goroutine instead.
type Engine struct {
	hooking.HookableBase

	name        string
	policy      Policy
	writePolicy vm.WritePolicy
	frames      *frame.Cache
	tlb         tlbCache
	collector   *stats.Collector
	tick        uint64
}

// tlbCache is the slice of the TLB that the engine relies on.
type tlbCache interface {
	Capacity() int
	Lookup(page vm.PageNumber, tick uint64) (frameIndex int, found bool)
	Insert(page vm.PageNumber, frameIndex int, tick uint64)
	Invalidate(page vm.PageNumber)
}

// Name returns the name of the engine.
func (e *Engine) Name() string {
	return e.name
}

// Stats returns a snapshot of the counters so far. Hooks and the monitor
// use it to observe mid-run numbers.
func (e *Engine) Stats() stats.Report {
	return e.collector.Snapshot()
}

// Process fully resolves one trace record before returning: TLB lookup,
// frame resolution, eager TLB invalidation of any evicted page, TLB
// refill, and statistics. Records with unknown operation markers advance
// the clock but touch nothing else.
func (e *Engine) Process(rec trace.Record) Access {
	e.tick++

	access := Access{
		Tick:       e.tick,
		Op:         rec.Op,
		Addr:       rec.Addr,
		FrameIndex: -1,
	}

	switch rec.Op {
	case trace.OpRead:
		access.Kind = vm.AccessRead
	case trace.OpWrite:
		access.Kind = vm.AccessWrite
	default:
		access.Outcome = OutcomeSkipped
		return access
	}

	access.Page = vm.PageNumberOf(rec.Addr)
	e.collector.CountAccess(access.Kind)

	if e.tlb != nil {
		if frameIndex, found := e.tlb.Lookup(access.Page, e.tick); found {
			e.collector.CountTLBHit()
			e.frames.Touch(frameIndex, access.Kind, e.tick)

			access.Outcome = OutcomeTLBHit
			access.FrameIndex = frameIndex
			access.Frames = e.frames.Contents()

			e.completeAccess(access)

			return access
		}

		e.collector.CountTLBMiss()
		access.TLBMissed = true
	}

	result := e.frames.Resolve(access.Page, access.Kind, e.tick)
	access.FrameIndex = result.FrameIndex

	if result.Hit {
		access.Outcome = OutcomeFrameHit
	} else {
		access.Outcome = OutcomePageFault
		e.collector.CountPageFault()

		// The evicted page must disappear from the TLB before the next
		// record is processed.
		if result.HasEviction && e.tlb != nil {
			e.tlb.Invalidate(result.Evicted)
		}

		if result.WroteBack {
			e.collector.CountWriteBack()
		}
	}

	if e.tlb != nil {
		e.tlb.Insert(access.Page, result.FrameIndex, e.tick)
	}

	access.Frames = e.frames.Contents()
	e.completeAccess(access)

	return access
}

func (e *Engine) completeAccess(access Access) {
	e.InvokeHook(hooking.HookCtx{
		Domain: e,
		Pos:    HookPosAccessComplete,
		Item:   access,
	})
}

// Run replays records from the reader until it is exhausted and returns
// the final report. A syntactically broken trace terminates the run.
func (e *Engine) Run(r *trace.Reader) (Report, error) {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Report{}, err
		}

		e.Process(rec)
	}

	return e.Report(), nil
}

// Report returns the final statistics snapshot together with the active
// configuration, and announces the end of the run to the hooks.
func (e *Engine) Report() Report {
	report := Report{
		Policy:      e.policy,
		WritePolicy: e.writePolicy,
		NumFrames:   e.frames.Capacity(),
		Stats:       e.collector.Snapshot(),
	}

	if e.tlb != nil {
		report.TLBEntries = e.tlb.Capacity()
	}

	e.InvokeHook(hooking.HookCtx{
		Domain: e,
		Pos:    HookPosRunComplete,
		Item:   report,
	})

	return report
}

// A Report is the final outcome of a run.
type Report struct {
	Policy      Policy
	WritePolicy vm.WritePolicy
	NumFrames   int
	TLBEntries  int
	Stats       stats.Report
}
