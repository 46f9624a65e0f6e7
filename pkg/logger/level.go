package logger

import "github.com/angeloszaimis/logfacade/pkg/sink"

// Level selects the operation a record is logged through.
type Level int

const (
	InfoLevel Level = iota
	DefaultLevel
	DebugLevel
	ErrorLevel
	FaultLevel
)

var severities = map[Level]sink.Severity{
	InfoLevel:    sink.SeverityInfo,
	DefaultLevel: sink.SeverityDefault,
	DebugLevel:   sink.SeverityDebug,
	ErrorLevel:   sink.SeverityError,
	FaultLevel:   sink.SeverityFault,
}

// Severity maps the level to the sink severity. Unknown levels map to DEFAULT.
func (l Level) Severity() sink.Severity {
	if sev, ok := severities[l]; ok {
		return sev
	}
	return sink.SeverityDefault
}

func (l Level) String() string {
	return l.Severity().String()
}
