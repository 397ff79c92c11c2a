package sim

import (
	"log"
	"strconv"

	"github.com/sarchlab/pagesim/hooking"
)

// An AccessLogger is a hook that writes the per-access outcomes and the
// final report to a logger, in the classic trace-replay format.
type AccessLogger struct {
	*log.Logger
}

// NewAccessLogger returns an AccessLogger that writes to the given logger.
func NewAccessLogger(logger *log.Logger) *AccessLogger {
	return &AccessLogger{Logger: logger}
}

// Func writes the hooked item.
func (l *AccessLogger) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosAccessComplete:
		l.logAccess(ctx.Item.(Access))
	case HookPosRunComplete:
		logReport(l.Logger, ctx.Item.(Report))
	}
}

// A ReportLogger is a hook that writes only the final report, for runs
// where the per-access log is suppressed.
type ReportLogger struct {
	*log.Logger
}

// NewReportLogger returns a ReportLogger that writes to the given logger.
func NewReportLogger(logger *log.Logger) *ReportLogger {
	return &ReportLogger{Logger: logger}
}

// Func writes the hooked item.
func (l *ReportLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos == HookPosRunComplete {
		logReport(l.Logger, ctx.Item.(Report))
	}
}

func (l *AccessLogger) logAccess(access Access) {
	if access.Outcome == OutcomeSkipped {
		return
	}

	if access.TLBMissed {
		l.Printf(" -> TLB MISS")
	}

	switch access.Outcome {
	case OutcomeTLBHit:
		l.Printf("Operation: %c | Address: 0x%x | VPN: %d -> TLB HIT (frame %d)",
			access.Op, access.Addr, access.Page, access.FrameIndex)
	case OutcomeFrameHit:
		l.Printf("Operation: %c | Address: 0x%x | VPN: %d -> HIT",
			access.Op, access.Addr, access.Page)
	case OutcomePageFault:
		l.Printf("Operation: %c | Address: 0x%x | VPN: %d -> PAGE FAULT",
			access.Op, access.Addr, access.Page)
	}

	l.logFrames(access)
}

func (l *AccessLogger) logFrames(access Access) {
	line := "Frames: ["
	for _, slot := range access.Frames {
		if slot.Occupied {
			line += " " + strconv.FormatUint(uint64(slot.Page), 10)
		} else {
			line += " -"
		}
	}
	line += " ]"

	l.Print(line)
}

func logReport(l *log.Logger, r Report) {
	l.Printf("")
	l.Printf("--- Stats ---")
	l.Printf("Algorithm: %s", r.Policy)
	l.Printf("Write policy: %s", r.WritePolicy)
	l.Printf("Frames: %d", r.NumFrames)
	l.Printf("Reads: %d", r.Stats.Reads)
	l.Printf("Writes: %d", r.Stats.Writes)
	l.Printf("Total accesses: %d", r.Stats.TotalAccesses)
	l.Printf("Total page faults: %d", r.Stats.PageFaults)

	if r.Stats.HasRates {
		l.Printf("Memory hit rate: %.2f%%", r.Stats.HitRate*100.0)
		l.Printf("Page fault rate: %.2f%%", r.Stats.FaultRate*100.0)
	}

	if r.TLBEntries > 0 {
		l.Printf("TLB entries: %d", r.TLBEntries)
		l.Printf("TLB hits: %d", r.Stats.TLBHits)
		l.Printf("TLB misses: %d", r.Stats.TLBMisses)

		if r.Stats.HasTLBRates {
			l.Printf("TLB hit rate: %.2f%%", r.Stats.TLBHitRate*100.0)
			l.Printf("Approx. AMAT: %.2f cycles", r.Stats.AMAT)
		}
	}

	l.Printf("Write-backs (dirty evictions): %d", r.Stats.WriteBacks)
}
