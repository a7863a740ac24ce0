// Package config builds the knoldue settings from flags, environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "KNOLDUE_"

// Config is the resolved configuration for a single run.
type Config struct {
	File       string `koanf:"file" validate:"required"`
	Timezone   string `koanf:"timezone" validate:"required"`
	TimeFormat string `koanf:"time_format" validate:"required"`
	Border     string `koanf:"border" validate:"oneof=ascii normal rounded markdown"`
	LogLevel   string `koanf:"log_level" validate:"oneof=debug info warn error"`

	location *time.Location
}

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("usage")

// NewFlagSet declares the command-line flags. Defaults double as the
// configuration defaults.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("file", "f", "flashcards.json", "Path to the flashcard deck (.json, .yaml or .db)")
	fs.StringP("config", "c", "", "Optional YAML config file")
	fs.String("timezone", "Local", "IANA time zone used to render review dates")
	fs.String("time-format", "%Y-%m-%d %H:%M:%S", "strftime layout for review dates")
	fs.String("border", "ascii", "Table border: ascii, normal, rounded or markdown")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [deck]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// Load parses args (without the program name) and merges, lowest first:
// flag defaults, the config file, KNOLDUE_* environment variables, flags set
// on the command line and the positional deck path.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%w: expected at most one deck path, got %d", ErrUsage, fs.NArg())
	}

	k := koanf.New(".")

	if path := configPath(fs); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if f.Name == "config" {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	if fs.NArg() == 1 {
		if err := k.Set("file", fs.Arg(0)); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// configPath returns the config file named by --config or KNOLDUE_CONFIG.
func configPath(fs *pflag.FlagSet) string {
	if f := fs.Lookup("config"); f != nil && f.Changed {
		return f.Value.String()
	}
	return os.Getenv(envPrefix + "CONFIG")
}

var validate = validator.New()

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid config: timezone %q: %w", c.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location returns the time zone review dates are rendered in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
