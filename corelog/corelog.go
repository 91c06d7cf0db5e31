// Package corelog builds a zerolog.Logger that a host process can hand to
// each consensus package's UseLogger. Packages never write to stdout
// directly; they hold a package-level logger that defaults to a no-op
// sink until a host process calls UseLogger.
package corelog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Disabled is the logger used by a package before UseLogger is called.
	Disabled = zerolog.Nop()

	DefaultLevel = zerolog.InfoLevel
)

// Config describes where and how a subsystem logger writes.
type Config struct {
	Unit               string
	DisableConsoleLog  bool
	LogsAsJSON         bool
	FileLoggingEnabled bool
	Directory          string
	Filename           string
	MaxSizeMB          int
	MaxBackups         int
	MaxAgeDays         int
}

// Default returns a Config with the default log directory, file name and
// rotation limits for unit.
func Default(unit string) Config {
	return Config{
		Unit:       unit,
		Directory:  "logs",
		Filename:   "cnconsensus.log",
		MaxSizeMB:  150,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// New builds a zerolog.Logger for a single subsystem from cfg, writing to
// console and/or a rotating file depending on cfg.
func New(level zerolog.Level, cfg Config) zerolog.Logger {
	var writers []io.Writer
	if !cfg.DisableConsoleLog && !cfg.LogsAsJSON {
		out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}
		out.TimeFormat = time.RFC3339
		out.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(zerolog.LevelFieldName + "=" + toStr(i))
		}
		writers = append(writers, out)
	}
	if !cfg.DisableConsoleLog && cfg.LogsAsJSON {
		writers = append(writers, os.Stdout)
	}
	if cfg.FileLoggingEnabled {
		writers = append(writers, newRollingFile(cfg))
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	mw := io.MultiWriter(writers...)
	return zerolog.New(mw).
		Level(level).
		With().
		Str("app", "cnconsensus").
		Str("unit", cfg.Unit).
		Timestamp().
		Logger()
}

func newRollingFile(cfg Config) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.Directory + string(os.PathSeparator) + cfg.Filename,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
}

func toStr(i interface{}) string {
	if s, ok := i.(string); ok {
		return s
	}
	return ""
}
