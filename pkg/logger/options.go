package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/angeloszaimis/logfacade/pkg/sink"
)

// Option configures a Logger at construction, or the whole process through Configure.
type Option func(*options)

type options struct {
	subsystem string
	silent    bool
	verbose   bool
	provider  sink.Provider
	console   io.Writer
	clock     func() time.Time
}

// Silent suppresses the startup record a new Logger writes. Ignored by Configure.
func Silent() Option {
	return func(o *options) {
		o.silent = true
	}
}

// WithDefaultSubsystem sets the subsystem used when the caller does not name one.
func WithDefaultSubsystem(subsystem string) Option {
	return func(o *options) {
		o.subsystem = subsystem
	}
}

// WithVerbose turns output on or off regardless of the build flag.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithProvider sets where platform sinks are acquired from. A nil provider means every
// logger writes to the console.
func WithProvider(p sink.Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithConsole sets the fallback writer. Nil is ignored.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.console = w
		}
	}
}

// WithClock sets the time source for caller data timestamps. Nil is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func defaultOptions() options {
	return options{
		subsystem: applicationIdentifier(),
		verbose:   buildVerbose,
		provider:  sink.NewSlogProvider(sink.NewHandler(os.Stderr, "debug", "dev")),
		console:   os.Stdout,
		clock:     time.Now,
	}
}

// applicationIdentifier is the main module path, or the executable name when the binary
// carries no module information.
func applicationIdentifier() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		return info.Main.Path
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return ""
}

var (
	settingsOnce sync.Once
	settings     options
)

// Configure fixes the process-wide settings used by New, NewWithSubsystem and the
// one-shot helpers. It must run before any logging. Only the first call, and only if no
// logger was built yet, takes effect; it reports whether the options were applied.
func Configure(opts ...Option) bool {
	applied := false
	settingsOnce.Do(func() {
		settings = defaultOptions()
		for _, opt := range opts {
			opt(&settings)
		}
		settings.silent = false
		applied = true
	})
	return applied
}

func processOptions() options {
	settingsOnce.Do(func() {
		settings = defaultOptions()
	})
	return settings
}

// BuildVerbose reports whether the binary was built with the debug tag.
func BuildVerbose() bool {
	return buildVerbose
}
