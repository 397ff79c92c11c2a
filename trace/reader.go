package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Reader parses records from a textual trace stream.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a Reader that consumes from r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Reader{scanner: scanner}
}

// Next returns the next record. It returns io.EOF when the trace is
// exhausted and a descriptive error when a record is syntactically broken.
func (r *Reader) Next() (Record, error) {
	opToken, err := r.nextToken()
	if err != nil {
		return Record{}, err
	}

	if len(opToken) != 1 {
		return Record{}, fmt.Errorf(
			"trace: operation marker %q is not a single character", opToken)
	}

	addrToken, err := r.nextToken()
	if err == io.EOF {
		return Record{}, fmt.Errorf(
			"trace: record %q has no address", opToken)
	}
	if err != nil {
		return Record{}, err
	}

	addrToken = strings.TrimPrefix(strings.TrimPrefix(addrToken, "0x"), "0X")
	addr, err := strconv.ParseUint(addrToken, 16, 32)
	if err != nil {
		return Record{}, fmt.Errorf(
			"trace: cannot parse address %q: %w", addrToken, err)
	}

	return Record{Op: opToken[0], Addr: uint32(addr)}, nil
}

func (r *Reader) nextToken() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return r.scanner.Text(), nil
}
