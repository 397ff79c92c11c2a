package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/pagesim/monitoring"
	"github.com/sarchlab/pagesim/recording"
	"github.com/sarchlab/pagesim/sim"
	"github.com/sarchlab/pagesim/trace"
	"github.com/sarchlab/pagesim/vm"
)

var (
	algorithmFlag   string
	numFramesFlag   int
	tlbEntriesFlag  int
	writePolicyFlag string
	quietFlag       bool
	recordFlag      bool
	recordPathFlag  string
	monitorFlag     bool
	monitorPortFlag int
	openBrowserFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "pagesim [flags] <tracefile>",
	Short: "Replay a memory access trace through a TLB and a page-frame cache.",
	Long: "pagesim simulates virtual-to-physical address translation. It " +
		"replays a trace of reads and writes through a small " +
		"fully-associative TLB and a fixed set of page frames governed by " +
		"a FIFO, LRU, or CLOCK eviction policy, and reports hit rates, " +
		"fault rates, write-backs, and an AMAT estimate.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSimulation,
}

func init() {
	// Optional .env file with defaults such as PAGESIM_MONITOR_PORT. It
	// must load before the flag defaults are captured.
	_ = godotenv.Load()

	flags := rootCmd.Flags()
	flags.StringVarP(&algorithmFlag, "algorithm", "a", "fifo",
		"eviction policy: fifo, lru, or clock")
	flags.IntVarP(&numFramesFlag, "frames", "f", 3,
		"number of physical page frames")
	flags.IntVarP(&tlbEntriesFlag, "tlb-entries", "t", 0,
		"TLB capacity, 0 disables the TLB")
	flags.StringVarP(&writePolicyFlag, "write-policy", "w", "wt",
		"write policy: wt (write-through) or wb (write-back)")
	flags.BoolVarP(&quietFlag, "quiet", "q", false,
		"suppress the per-access log")
	flags.BoolVar(&recordFlag, "record", false,
		"record accesses and the final report into a SQLite database")
	flags.StringVar(&recordPathFlag, "record-path", "",
		"database path for --record, a unique name is generated if empty")
	flags.BoolVar(&monitorFlag, "monitor", false,
		"serve a live monitoring dashboard while the trace replays")
	flags.IntVar(&monitorPortFlag, "monitor-port", defaultMonitorPort(),
		"port of the monitoring dashboard, 0 picks a random port")
	flags.BoolVar(&openBrowserFlag, "open-browser", false,
		"open the monitoring dashboard in the default browser")
}

func defaultMonitorPort() int {
	port, err := strconv.Atoi(os.Getenv("PAGESIM_MONITOR_PORT"))
	if err != nil {
		return 0
	}

	return port
}

func runSimulation(_ *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	attachLoggers(engine)

	if recordFlag {
		recorder := recording.New(recordPathFlag)
		engine.AcceptHook(recording.NewAccessRecorder(recorder))
	}

	tracePath := args[0]

	var bar *monitoring.ProgressBar
	if monitorFlag {
		bar, err = startMonitor(engine, tracePath)
		if err != nil {
			return err
		}
	}

	file, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("opening trace file: %w", err)
	}
	defer file.Close()

	reader := trace.NewReader(file)
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading trace: %w", err)
		}

		engine.Process(rec)

		if bar != nil {
			bar.IncrementFinished(1)
		}
	}

	engine.Report()

	return nil
}

func buildEngine() (*sim.Engine, error) {
	policy, err := sim.ParsePolicy(algorithmFlag)
	if err != nil {
		return nil, err
	}

	writePolicy, err := parseWritePolicy(writePolicyFlag)
	if err != nil {
		return nil, err
	}

	return sim.MakeBuilder().
		WithPolicy(policy).
		WithNumFrames(numFramesFlag).
		WithTLBEntries(tlbEntriesFlag).
		WithWritePolicy(writePolicy).
		Build("Engine")
}

func parseWritePolicy(name string) (vm.WritePolicy, error) {
	switch name {
	case "wt", "write-through":
		return vm.WriteThrough, nil
	case "wb", "write-back":
		return vm.WriteBack, nil
	default:
		return vm.WriteThrough, fmt.Errorf(
			"unknown write policy %q, use wt or wb", name)
	}
}

func attachLoggers(engine *sim.Engine) {
	logger := log.New(os.Stdout, "", 0)

	if quietFlag {
		engine.AcceptHook(sim.NewReportLogger(logger))
	} else {
		engine.AcceptHook(sim.NewAccessLogger(logger))
	}
}

func startMonitor(
	engine *sim.Engine,
	tracePath string,
) (*monitoring.ProgressBar, error) {
	total, err := countRecords(tracePath)
	if err != nil {
		return nil, err
	}

	monitor := monitoring.NewMonitor().WithPortNumber(monitorPortFlag)
	if openBrowserFlag {
		monitor.WithBrowser()
	}

	monitor.RegisterEngine(engine)
	monitor.StartServer()

	return monitor.CreateProgressBar("trace replay", total), nil
}

func countRecords(tracePath string) (uint64, error) {
	file, err := os.Open(tracePath)
	if err != nil {
		return 0, fmt.Errorf("opening trace file: %w", err)
	}
	defer file.Close()

	total := uint64(0)
	reader := trace.NewReader(file)
	for {
		_, err := reader.Next()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return 0, fmt.Errorf("reading trace: %w", err)
		}

		total++
	}
}
