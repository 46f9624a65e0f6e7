package config

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	VerboseBuild = "build"
	VerboseOn    = "on"
	VerboseOff   = "off"
)

const (
	SinkSlog    = "slog"
	SinkConsole = "console"
)

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelDefault = "default"
	LogLevelError   = "error"
	LogLevelFault   = "fault"
)

// EnvPrefix is prepended to every environment variable, e.g. LOGFACADE_LOGGING_VERBOSE.
const EnvPrefix = "LOGFACADE"

type AppConfig struct {
	Subsystem   string `mapstructure:"subsystem"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Verbose  string `mapstructure:"verbose"`
	Sink     string `mapstructure:"sink"`
	Level    string `mapstructure:"level"`
	Category string `mapstructure:"category"`
}

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"subsystem":   "app.subsystem",
	"environment": "app.environment",
	"verbose":     "logging.verbose",
	"sink":        "logging.sink",
	"level":       "logging.level",
	"category":    "logging.category",
}

// Flags returns a flag set whose flags override the file and environment when set.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("subsystem", "", "subsystem loggers default to")
	fs.String("environment", EnvDev, "deployment environment (dev, staging, prod)")
	fs.String("verbose", VerboseBuild, "output mode (build, on, off)")
	fs.String("sink", SinkSlog, "platform sink (slog, console)")
	fs.String("level", LogLevelDebug, "lowest severity the platform sink keeps")
	fs.String("category", "Main", "category of the application logger")
	return fs
}

// Load reads config.yaml from ./config or the working directory, then the environment,
// then any flags in fs that were set. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.subsystem", "")
	v.SetDefault("app.environment", EnvDev)
	v.SetDefault("logging.verbose", VerboseBuild)
	v.SetDefault("logging.sink", SinkSlog)
	v.SetDefault("logging.level", LogLevelDebug)
	v.SetDefault("logging.category", "Main")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, errors.Wrap(err, "read config")
		}
		slog.Debug("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, errors.Wrap(err, "unmarshal config")
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

func (c *Config) normalize() {
	c.App.Environment = strings.ToLower(strings.TrimSpace(c.App.Environment))
	c.Logging.Verbose = strings.ToLower(strings.TrimSpace(c.Logging.Verbose))
	c.Logging.Sink = strings.ToLower(strings.TrimSpace(c.Logging.Sink))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Verbose resolves the output mode against the build flag.
func (c *Config) Verbose(build bool) bool {
	switch c.Logging.Verbose {
	case VerboseOn:
		return true
	case VerboseOff:
		return false
	default:
		return build
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.App,
			validation.Required,
			validation.By(func(value interface{}) error {
				ac, ok := value.(AppConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an AppConfig")
				}
				return validation.ValidateStruct(&ac,
					validation.Field(&ac.Subsystem,
						is.PrintableASCII,
						validation.By(noWhitespace),
					),
					validation.Field(&ac.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Verbose,
						validation.Required,
						validation.In(VerboseBuild, VerboseOn, VerboseOff),
					),
					validation.Field(&lc.Sink,
						validation.Required,
						validation.In(SinkSlog, SinkConsole),
					),
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelDefault, LogLevelError, LogLevelFault),
					),
					validation.Field(&lc.Category,
						validation.Required,
						is.PrintableASCII,
					),
				)
			}),
		),
	)
}

func noWhitespace(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if strings.ContainsAny(s, " \t\r\n") {
		return validation.NewError("validation_whitespace", "must not contain whitespace")
	}

	return nil
}
