package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/kovakit/kova"
)

// Settings holds the env-driven defaults of the validation engine.
type Settings struct {
	// FailFast stops sibling constraint evaluation after the first
	// violation.
	FailFast bool `env:"KOVA_FAIL_FAST" envDefault:"false"`
	// Locale is installed as the ambient message locale by Apply.
	Locale string `env:"KOVA_LOCALE" envDefault:"en"`
	// LogLevel is the slog level for constraint logging: debug, info, warn
	// or error.
	LogLevel string `env:"KOVA_LOG_LEVEL" envDefault:"info"`
}

// Load reads Settings from the environment. When env files are given, each
// existing one is loaded first without overriding variables already set;
// a missing default .env is not an error.
func Load(envFiles ...string) (Settings, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Settings{}, errors.Join(ErrLoadingEnvFile, err)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingSettings, err)
	}
	return s, nil
}

// MustLoad works like Load but panics on failure. Useful when the engine
// defaults are required for the application to start.
func MustLoad(envFiles ...string) Settings {
	s, err := Load(envFiles...)
	if err != nil {
		panic(err)
	}
	return s
}

// Options translates the settings into per-call validation options.
func (s Settings) Options() []kova.Option {
	var opts []kova.Option
	if s.FailFast {
		opts = append(opts, kova.WithFailFast())
	}
	return opts
}

// Logger builds a slog logger at the configured level, writing to w. Wrap it
// with kova.SlogLogger to log constraint evaluations.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Apply installs the process-wide parts of the settings, currently the
// ambient message locale.
func (s Settings) Apply() {
	kova.SetLocale(s.Locale)
}
