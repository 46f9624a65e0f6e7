// Package sinktest provides a recording sink provider for tests.
package sinktest

import (
	"sync"

	"github.com/angeloszaimis/logfacade/pkg/sink"
)

// Record is one delivered log record.
type Record struct {
	Subsystem string
	Category  string
	Severity  sink.Severity
	Message   string
}

// Recorder is a sink.Provider that keeps every record delivered through the sinks it
// hands out. When Unavailable is set, Acquire fails with sink.ErrUnavailable.
type Recorder struct {
	Unavailable bool

	mu       sync.Mutex
	records  []Record
	acquired int
}

func (r *Recorder) Acquire(subsystem, category string) (sink.Sink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Unavailable {
		return nil, sink.ErrUnavailable
	}
	r.acquired++

	return &recordingSink{recorder: r, subsystem: subsystem, category: category}, nil
}

// Records returns a copy of the records delivered so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Acquired reports how many sinks were handed out.
func (r *Recorder) Acquired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acquired
}

// Reset drops all records and the acquire count.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	r.acquired = 0
}

type recordingSink struct {
	recorder  *Recorder
	subsystem string
	category  string
}

func (s *recordingSink) Emit(sev sink.Severity, message string) {
	s.recorder.mu.Lock()
	defer s.recorder.mu.Unlock()

	s.recorder.records = append(s.recorder.records, Record{
		Subsystem: s.subsystem,
		Category:  s.category,
		Severity:  sev,
		Message:   message,
	})
}
