package sink

import (
	"io"
	"sync"
)

// Console is the fallback sink. It writes each record as one line and ignores severity.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console writing to w. The writer must not be nil.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Emit writes message followed by a newline. Write errors are dropped.
func (c *Console) Emit(_ Severity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = io.WriteString(c.w, message+"\n")
}
