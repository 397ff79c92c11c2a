// Package trace reads memory access traces. A trace is whitespace
// separated text where each record is an operation marker followed by a
// hexadecimal address, e.g. `R 0x1a2b` or `W 3000`.
package trace

// Operation markers understood by the simulator. Records with any other
// marker are carried through so that the consumer can skip them.
const (
	OpRead  byte = 'R'
	OpWrite byte = 'W'
)

// A Record is one memory access from a trace. Records are immutable once
// produced.
type Record struct {
	Op   byte
	Addr uint32
}
