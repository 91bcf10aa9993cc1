package tracing

import (
	"log"
	"strings"
)

// A loggerTracer writes one line per trace record, echoing the record
// followed by the outcome of each access it caused, such as
// "M 7ff000214190,8 miss eviction hit".
type loggerTracer struct {
	logger *log.Logger
}

// NewLoggerTracer creates a Tracer that reports access outcomes through a
// logger.
func NewLoggerTracer(logger *log.Logger) Tracer {
	t := new(loggerTracer)
	t.logger = logger

	return t
}

// TraceAccess logs the outcome of one replayed record.
func (t *loggerTracer) TraceAccess(task Task) {
	b := new(strings.Builder)

	for _, result := range task.Results {
		if result.Hit {
			b.WriteString(" hit")
			continue
		}

		b.WriteString(" miss")
		if result.Evicted {
			b.WriteString(" eviction")
		}
	}

	t.logger.Printf("%c %x,%d%s\n",
		task.Kind,
		task.Address,
		task.Size,
		b.String())
}
