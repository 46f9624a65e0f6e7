package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/angeloszaimis/logfacade/config"
	"github.com/angeloszaimis/logfacade/pkg/logger"
	"github.com/angeloszaimis/logfacade/pkg/sink"
)

func main() {
	fs := config.Flags(os.Args[0])
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(parseExitCode(err))
	}

	cfg, err := config.Load(fs)
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	// Nothing has logged yet, so the settings always apply here.
	_ = logger.Configure(buildOptions(cfg, os.Stderr)...)

	log, err := logger.New(cfg.Logging.Category)
	if err != nil {
		slog.Error("failed to create logger",
			slog.String("category", cfg.Logging.Category),
			slog.Any("err", err))
		os.Exit(1)
	}

	run(log)
}

// parseExitCode is 0 when the user asked for help and 2 for any other flag error.
func parseExitCode(err error) int {
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	return 2
}

// buildOptions turns the loaded config into facade settings. Platform records go to w.
func buildOptions(cfg *config.Config, w io.Writer) []logger.Option {
	opts := []logger.Option{
		logger.WithVerbose(cfg.Verbose(logger.BuildVerbose())),
	}

	if cfg.App.Subsystem != "" {
		opts = append(opts, logger.WithDefaultSubsystem(cfg.App.Subsystem))
	}

	switch cfg.Logging.Sink {
	case config.SinkConsole:
		opts = append(opts, logger.WithProvider(sink.Unavailable()))
	default:
		opts = append(opts, logger.WithProvider(
			sink.NewSlogProvider(sink.NewHandler(w, cfg.Logging.Level, cfg.App.Environment)),
		))
	}

	return opts
}

// run writes one record per level, then one through each one-shot helper.
func run(log *logger.Logger) {
	log.Debug("subsystem %@ category %@", log.Subsystem(), log.Category())
	log.Info("platform sink attached: %@", log.HasPlatformSink())
	log.Default("verbose build: %@", logger.BuildVerbose())
	log.Error("failed %@", "timeout")
	log.Fault("giving up after %d attempts", 3)
	log.Log(logger.InfoLevel, false, "without caller data")

	logger.I("Networking", "connected to %@", "localhost")
	logger.D("Networking", "keepalive %@", true)
	logger.E("DB", "code %@", 42)
}
