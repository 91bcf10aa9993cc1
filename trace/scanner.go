package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// A Scanner tokenizes a textual trace, one record per line, in the form
// "L 7ff000214190,8". Lines that do not parse are dropped silently.
type Scanner struct {
	lines  *bufio.Scanner
	record Record
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewScanner(r)}
}

// Scan advances to the next well-formed record. It returns false when the
// input is exhausted.
func (s *Scanner) Scan() bool {
	for s.lines.Scan() {
		record, ok := parseLine(s.lines.Text())
		if !ok {
			continue
		}

		s.record = record

		return true
	}

	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the first error encountered while reading the input.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

func parseLine(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 1 {
		return Record{}, false
	}

	addrStr, sizeStr, found := strings.Cut(fields[1], ",")
	if !found {
		return Record{}, false
	}

	addr, err := strconv.ParseUint(addrStr, 16, 64)
	if err != nil {
		return Record{}, false
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return Record{}, false
	}

	return Record{
		Kind:    Kind(fields[0][0]),
		Address: addr,
		Size:    size,
	}, true
}
