package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/sim"
	"github.com/sarchlab/pagesim/stats"
	"github.com/sarchlab/pagesim/trace"
)

var _ = Describe("Monitor", func() {
	var (
		monitor *Monitor
		engine  *sim.Engine
	)

	BeforeEach(func() {
		var err error
		engine, err = sim.MakeBuilder().WithNumFrames(2).Build("Engine")
		Expect(err).ToNot(HaveOccurred())

		monitor = NewMonitor()
		monitor.RegisterEngine(engine)
	})

	It("should serve the current statistics", func() {
		engine.Process(trace.Record{Op: trace.OpRead, Addr: 0x1000})

		w := httptest.NewRecorder()
		monitor.listStats(w, httptest.NewRequest("GET", "/api/stats", nil))

		var report stats.Report
		Expect(json.Unmarshal(w.Body.Bytes(), &report)).To(Succeed())
		Expect(report.Reads).To(Equal(uint64(1)))
		Expect(report.PageFaults).To(Equal(uint64(1)))
	})

	It("should list registered components", func() {
		w := httptest.NewRecorder()
		monitor.listComponents(w,
			httptest.NewRequest("GET", "/api/list_components", nil))

		var names []string
		Expect(json.Unmarshal(w.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(ConsistOf("Engine"))
	})

	It("should serve progress bars", func() {
		bar := monitor.CreateProgressBar("trace replay", 100)
		bar.IncrementFinished(40)

		w := httptest.NewRecorder()
		monitor.listProgressBars(w,
			httptest.NewRequest("GET", "/api/progress", nil))

		var bars []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &bars)).To(Succeed())
		Expect(bars).To(HaveLen(1))
		Expect(bars[0]["finished"]).To(BeNumerically("==", 40))
	})

	It("should remove completed progress bars", func() {
		bar := monitor.CreateProgressBar("trace replay", 100)
		monitor.CompleteProgressBar(bar)

		w := httptest.NewRecorder()
		monitor.listProgressBars(w,
			httptest.NewRequest("GET", "/api/progress", nil))

		Expect(w.Body.String()).To(Equal("[]"))
	})
})
