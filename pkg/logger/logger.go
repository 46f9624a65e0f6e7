package logger

import (
	"time"

	"github.com/pkg/errors"

	"github.com/angeloszaimis/logfacade/pkg/sink"
)

// ErrConstruction is wrapped by every error New and NewWithSubsystem return.
var ErrConstruction = errors.New("logger: cannot construct logger")

// Logger emits records for one subsystem and category. It is immutable and safe for
// concurrent use.
type Logger struct {
	subsystem string
	category  string
	out       sink.Sink
	platform  bool
	verbose   bool
	clock     func() time.Time
}

// New returns a Logger for category in the process default subsystem.
func New(category string, opts ...Option) (*Logger, error) {
	return NewWithSubsystem("", category, opts...)
}

// NewWithSubsystem returns a Logger for subsystem and category. An empty subsystem falls
// back to the default one; construction fails when that is empty too, or when category
// is empty. Unless Silent is given, the new Logger records a startup message.
func NewWithSubsystem(subsystem, category string, opts ...Option) (*Logger, error) {
	o := processOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if category == "" {
		return nil, errors.Wrap(ErrConstruction, "empty category")
	}
	if subsystem == "" {
		subsystem = o.subsystem
	}
	if subsystem == "" {
		return nil, errors.Wrapf(ErrConstruction, "no subsystem for category %q", category)
	}

	l := &Logger{
		subsystem: subsystem,
		category:  category,
		verbose:   o.verbose,
		clock:     o.clock,
	}

	if o.provider != nil {
		if s, err := o.provider.Acquire(subsystem, category); err == nil && s != nil {
			l.out = s
			l.platform = true
		}
	}
	if l.out == nil {
		l.out = sink.NewConsole(o.console)
	}

	if !o.silent {
		l.emit(InfoLevel, false, CallSite{}, "!! Starting %s logger !!", []any{category})
	}

	return l, nil
}

func (l *Logger) Subsystem() string {
	return l.subsystem
}

func (l *Logger) Category() string {
	return l.category
}

// HasPlatformSink reports whether records go to the platform sink rather than the console.
func (l *Logger) HasPlatformSink() bool {
	return l.platform
}

// Verbose reports whether this Logger produces output at all.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Info logs at INFO with caller data.
func (l *Logger) Info(format string, args ...any) {
	l.emit(InfoLevel, true, CaptureCallSite(1), format, args)
}

// Default logs at DEFAULT with caller data.
func (l *Logger) Default(format string, args ...any) {
	l.emit(DefaultLevel, true, CaptureCallSite(1), format, args)
}

// Debug logs at DEBUG with caller data.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(DebugLevel, true, CaptureCallSite(1), format, args)
}

// Error logs at ERROR with caller data.
func (l *Logger) Error(format string, args ...any) {
	l.emit(ErrorLevel, true, CaptureCallSite(1), format, args)
}

// Fault logs at FAULT with caller data.
func (l *Logger) Fault(format string, args ...any) {
	l.emit(FaultLevel, true, CaptureCallSite(1), format, args)
}

// Log logs at level, appending caller data only when includeCallerData is set.
func (l *Logger) Log(level Level, includeCallerData bool, format string, args ...any) {
	l.emit(level, includeCallerData, CaptureCallSite(1), format, args)
}

// LogAt is Log with an explicit call site, for wrappers that captured it themselves.
func (l *Logger) LogAt(level Level, includeCallerData bool, site CallSite, format string, args ...any) {
	l.emit(level, includeCallerData, site, format, args)
}

func (l *Logger) emit(level Level, includeCallerData bool, site CallSite, format string, args []any) {
	if !l.verbose {
		return
	}

	// A broken argument or sink must never take the caller down with it.
	defer func() {
		_ = recover()
	}()

	var now time.Time
	if includeCallerData {
		now = l.clock()
	}

	l.out.Emit(level.Severity(), compose(format, args, includeCallerData, site, now))
}
