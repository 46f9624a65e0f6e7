package sink

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

type slogProvider struct {
	handler slog.Handler
}

// NewSlogProvider returns a Provider whose sinks write through h. A nil handler yields a
// provider that is always unavailable.
func NewSlogProvider(h slog.Handler) Provider {
	if h == nil {
		return unavailable{}
	}
	return &slogProvider{handler: h}
}

func (p *slogProvider) Acquire(subsystem, category string) (Sink, error) {
	if subsystem == "" || category == "" {
		return nil, errors.Wrapf(ErrUnavailable, "subsystem %q category %q", subsystem, category)
	}

	l := slog.New(p.handler).With(
		slog.String("subsystem", subsystem),
		slog.String("category", category),
	)

	return &slogSink{logger: l}, nil
}

type slogSink struct {
	logger *slog.Logger
}

func (s *slogSink) Emit(sev Severity, message string) {
	s.logger.Log(context.Background(), sev.SlogLevel(), message)
}

// NewHandler builds the platform handler: JSON in prod, text everywhere else. Records
// below level are discarded by the handler and every record carries the environment.
func NewHandler(w io.Writer, level string, environment string) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: replaceLevel,
	}
	var handler slog.Handler

	if strings.ToLower(environment) == "prod" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return handler.WithAttrs([]slog.Attr{
		slog.String("environment", environment),
	})
}

func parseLevel(level string) slog.Level {
	sev, ok := ParseSeverity(level)
	if !ok {
		return slog.LevelInfo
	}
	return sev.SlogLevel()
}

// replaceLevel renders our severity names instead of slog's "INFO+2" style offsets.
func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	a.Value = slog.StringValue(severityOf(lvl).String())
	return a
}
