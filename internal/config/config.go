// Package config resolves runtime settings from defaults, an optional .env
// file, the environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
)

const (
	EnvBackend  = "RESEARCHDESK_BACKEND"
	EnvSeed     = "RESEARCHDESK_SEED"
	EnvLog      = "RESEARCHDESK_LOG"
	EnvLogLevel = "RESEARCHDESK_LOG_LEVEL"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Config holds all runtime settings.
type Config struct {
	Backend  Backend
	SeedPath string // empty means the built-in dataset
	LogPath  string // empty disables logging
	LogLevel string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Backend:  BackendMemory,
		LogLevel: "info",
	}
}

// Load applies envFile (if it exists) and then the process environment on
// top of the defaults. Variables already set in the environment win over the
// file. A missing envFile is not an error. Values are not validated here,
// since flags may still override them; call Validate once flags are parsed.
func Load(envFile string) (Config, error) {
	cfg := Default()

	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVars[key]
	}

	if v := lookup(EnvBackend); v != "" {
		cfg.Backend = Backend(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := lookup(EnvSeed); v != "" {
		cfg.SeedPath = v
	}
	if v := lookup(EnvLog); v != "" {
		cfg.LogPath = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// BindFlags registers flags that override the loaded values. Call Validate
// after the flags are parsed.
func (c *Config) BindFlags(flags *pflag.FlagSet) {
	flags.Var(&backendValue{&c.Backend}, "backend", "record store: memory or sqlite")
	flags.StringVar(&c.SeedPath, "seed", c.SeedPath, "YAML file replacing the built-in seed dataset")
	flags.StringVar(&c.LogPath, "log", c.LogPath, "write structured logs to this file")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendMemory, BackendSQLite)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// NewLogger opens LogPath for appending and returns a text logger writing to
// it. With no LogPath the returned logger is nil and the closer is a no-op.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogPath == "" {
		return nil, io.NopCloser(nil), nil
	}
	lvl, err := c.Level()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}

type backendValue struct{ b *Backend }

func (v *backendValue) String() string {
	if v.b == nil {
		return ""
	}
	return string(*v.b)
}

func (v *backendValue) Set(s string) error {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BackendMemory, BackendSQLite:
		*v.b = b
		return nil
	default:
		return fmt.Errorf("want %q or %q", BackendMemory, BackendSQLite)
	}
}

func (v *backendValue) Type() string { return "backend" }
