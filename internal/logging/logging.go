// Package logging owns the process logger used by vinyl.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "VINYL_LOG_LEVEL"
	EnvLogTimestamp = "VINYL_LOG_TIMESTAMP"
	EnvLogNoColor   = "VINYL_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var (
	configureOnce sync.Once
	current       atomic.Pointer[zerolog.Logger]
)

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure builds the process logger for profile. Only the first call has
// an effect, and Set takes precedence over it.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		l := New(cfg)
		current.CompareAndSwap(nil, &l)
	})
}

// Set replaces the process logger.
func Set(l zerolog.Logger) {
	configureOnce.Do(func() {})
	current.Store(&l)
}

// L returns the process logger, configuring the runtime profile on first use.
func L() *zerolog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	ConfigureRuntime()

	return current.Load()
}

func New(cfg Config) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor}
	ctx := zerolog.New(w).Level(cfg.Level).With().Str("lib", "vinyl")
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel}
	default:
		return Config{Level: zerolog.ErrorLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.ErrorLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.ErrorLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}

	return v, true
}
