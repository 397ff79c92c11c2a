package recording

import (
	"github.com/sarchlab/pagesim/hooking"
	"github.com/sarchlab/pagesim/sim"
)

const (
	accessTableName = "trace_accesses"
	reportTableName = "run_reports"
)

type accessRow struct {
	Tick       uint64
	Op         string
	Addr       uint64
	Page       uint64
	Outcome    string
	FrameIndex int
}

type reportRow struct {
	Policy      string
	WritePolicy string
	NumFrames   int
	TLBEntries  int
	Reads       uint64
	Writes      uint64
	PageFaults  uint64
	TLBHits     uint64
	TLBMisses   uint64
	WriteBacks  uint64
	FaultRate   float64
	TLBHitRate  float64
	AMAT        float64
}

// An AccessRecorder is a hook that records every resolved access and the
// final report of a run.
type AccessRecorder struct {
	recorder DataRecorder
}

// NewAccessRecorder creates an AccessRecorder that writes through the
// given DataRecorder, creating the tables it needs.
func NewAccessRecorder(r DataRecorder) *AccessRecorder {
	r.CreateTable(accessTableName, accessRow{})
	r.CreateTable(reportTableName, reportRow{})

	return &AccessRecorder{recorder: r}
}

// Func records the hooked item.
func (a *AccessRecorder) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case sim.HookPosAccessComplete:
		a.recordAccess(ctx.Item.(sim.Access))
	case sim.HookPosRunComplete:
		a.recordReport(ctx.Item.(sim.Report))
	}
}

func (a *AccessRecorder) recordAccess(access sim.Access) {
	if access.Outcome == sim.OutcomeSkipped {
		return
	}

	a.recorder.InsertData(accessTableName, accessRow{
		Tick:       access.Tick,
		Op:         string(access.Op),
		Addr:       uint64(access.Addr),
		Page:       uint64(access.Page),
		Outcome:    access.Outcome.String(),
		FrameIndex: access.FrameIndex,
	})
}

func (a *AccessRecorder) recordReport(report sim.Report) {
	a.recorder.InsertData(reportTableName, reportRow{
		Policy:      string(report.Policy),
		WritePolicy: report.WritePolicy.String(),
		NumFrames:   report.NumFrames,
		TLBEntries:  report.TLBEntries,
		Reads:       report.Stats.Reads,
		Writes:      report.Stats.Writes,
		PageFaults:  report.Stats.PageFaults,
		TLBHits:     report.Stats.TLBHits,
		TLBMisses:   report.Stats.TLBMisses,
		WriteBacks:  report.Stats.WriteBacks,
		FaultRate:   report.Stats.FaultRate,
		TLBHitRate:  report.Stats.TLBHitRate,
		AMAT:        report.Stats.AMAT,
	})

	a.recorder.Flush()
}
