package tracing

import (
	"github.com/rs/xid"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
)

// An AccessEntry is one cache access as stored in the database. A modify
// record contributes two rows that share the same Seq value.
type AccessEntry struct {
	ID      string
	RunID   string
	Seq     uint64
	Kind    string
	Address uint64
	Size    int
	SetID   int
	WayID   int
	Hit     bool
	Evicted bool
}

// A RunEntry is the summary row of one full trace replay.
type RunEntry struct {
	ID              string
	TraceFile       string
	SetIndexBits    int
	BlockOffsetBits int
	Associativity   int
	Hits            uint64
	Misses          uint64
	Evictions       uint64
}

// A DBTracer records every replayed access, plus a final run summary, into a
// data recorder.
type DBTracer struct {
	recorder datarecording.DataRecorder
	runID    string
	seq      uint64
}

// NewDBTracer creates a DBTracer and prepares the tables it writes to.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{
		recorder: recorder,
		runID:    xid.New().String(),
	}

	t.recorder.CreateTable("cache_accesses", AccessEntry{})
	t.recorder.CreateTable("cache_runs", RunEntry{})

	return t
}

// RunID returns the identifier shared by all rows of this replay.
func (t *DBTracer) RunID() string {
	return t.runID
}

// TraceAccess stores one row per access the record caused.
func (t *DBTracer) TraceAccess(task Task) {
	t.seq++

	for _, result := range task.Results {
		entry := AccessEntry{
			ID:      xid.New().String(),
			RunID:   t.runID,
			Seq:     t.seq,
			Kind:    string(task.Kind),
			Address: task.Address,
			Size:    task.Size,
			SetID:   result.SetID,
			WayID:   result.WayID,
			Hit:     result.Hit,
			Evicted: result.Evicted,
		}

		t.recorder.InsertData("cache_accesses", entry)
	}
}

// EndRun stores the run summary and flushes all buffered rows.
func (t *DBTracer) EndRun(
	traceFile string,
	geometry cache.Geometry,
	stats cache.Stats,
) {
	entry := RunEntry{
		ID:              t.runID,
		TraceFile:       traceFile,
		SetIndexBits:    geometry.SetIndexBits,
		BlockOffsetBits: geometry.BlockOffsetBits,
		Associativity:   geometry.Associativity,
		Hits:            stats.Hits,
		Misses:          stats.Misses,
		Evictions:       stats.Evictions,
	}

	t.recorder.InsertData("cache_runs", entry)
	t.recorder.Flush()
}
