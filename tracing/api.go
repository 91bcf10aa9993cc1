// Package tracing provides hooks for observing the accesses performed while
// a trace is replayed.
package tracing

import (
	"github.com/sarchlab/csim/cache"
)

// A Task is one trace record together with the cache accesses it produced.
// Load and store records produce one result; a modify record produces two.
type Task struct {
	Kind    byte
	Address uint64
	Size    int
	Results []cache.AccessResult
}

// A Tracer observes replayed trace records.
type Tracer interface {
	TraceAccess(task Task)
}
