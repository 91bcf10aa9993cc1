package trace

import (
	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/tracing"
)

// A Replayer drives a cache with a stream of trace records.
type Replayer struct {
	cache   *cache.Cache
	tracers []tracing.Tracer
}

// NewReplayer creates a Replayer that feeds c.
func NewReplayer(c *cache.Cache) *Replayer {
	r := new(Replayer)
	r.cache = c

	return r
}

// AcceptTracer registers a tracer to be notified after every replayed
// record.
func (r *Replayer) AcceptTracer(tracer tracing.Tracer) {
	r.tracers = append(r.tracers, tracer)
}

// PlayOne applies a single record to the cache. Loads and stores access the
// cache once; a modify accesses it twice with the same address, so its
// second access hits whenever no eviction separated the pair. Records of any
// other kind are skipped without touching the cache or the tracers.
func (r *Replayer) PlayOne(record Record) []cache.AccessResult {
	var results []cache.AccessResult

	switch record.Kind {
	case KindLoad, KindStore:
		results = append(results, r.cache.Access(record.Address))
	case KindModify:
		results = append(results, r.cache.Access(record.Address))
		results = append(results, r.cache.Access(record.Address))
	default:
		return nil
	}

	task := tracing.Task{
		Kind:    byte(record.Kind),
		Address: record.Address,
		Size:    record.Size,
		Results: results,
	}

	for _, tracer := range r.tracers {
		tracer.TraceAccess(task)
	}

	return results
}

// Replay consumes the scanner until the input is exhausted.
func (r *Replayer) Replay(scanner *Scanner) error {
	for scanner.Scan() {
		r.PlayOne(scanner.Record())
	}

	return scanner.Err()
}
