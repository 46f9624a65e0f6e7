package sink

import (
	"github.com/pkg/errors"
)

// ErrUnavailable is returned by a Provider that cannot hand out a sink.
var ErrUnavailable = errors.New("sink: platform sink unavailable")

// Sink delivers one already formatted record. The message is opaque and must not be
// parsed for further substitution.
type Sink interface {
	Emit(sev Severity, message string)
}

// Provider acquires the sink for a subsystem and category.
type Provider interface {
	Acquire(subsystem, category string) (Sink, error)
}

type unavailable struct{}

func (unavailable) Acquire(_, _ string) (Sink, error) {
	return nil, ErrUnavailable
}

// Unavailable returns a Provider that never has a sink, forcing every logger onto its
// console fallback.
func Unavailable() Provider {
	return unavailable{}
}
