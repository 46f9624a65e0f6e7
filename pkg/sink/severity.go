package sink

import (
	"log/slog"
	"strings"
)

// Severity is the sink-side classification of a record.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityDefault
	SeverityError
	SeverityFault
)

var severityNames = [...]string{"DEBUG", "INFO", "DEFAULT", "ERROR", "FAULT"}

// slog has no DEFAULT or FAULT level, so they sit between and above the stock ones.
var slogLevels = [...]slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelInfo + 2, slog.LevelError, slog.LevelError + 4}

func (s Severity) String() string {
	if s < SeverityDebug || s > SeverityFault {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// SlogLevel returns the slog level records of this severity are written at.
func (s Severity) SlogLevel() slog.Level {
	if s < SeverityDebug || s > SeverityFault {
		return slogLevels[SeverityDefault]
	}
	return slogLevels[s]
}

// ParseSeverity accepts the lower or upper case severity name.
func ParseSeverity(name string) (Severity, bool) {
	for i, n := range severityNames {
		if strings.EqualFold(n, name) {
			return Severity(i), true
		}
	}
	return SeverityDefault, false
}

func severityOf(level slog.Level) Severity {
	for i := len(slogLevels) - 1; i >= 0; i-- {
		if level >= slogLevels[i] {
			return Severity(i)
		}
	}
	return SeverityDebug
}
