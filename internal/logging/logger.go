// Package logging builds the zap-backed logr loggers used across curated-mcp.
// Output always goes to stderr so the stdio transport keeps stdout to itself.
package logging

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	log logr.Logger
}

// Options selects the zap encoder and level used by NewZap.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// New wraps base. A logger without a sink gets the development logger instead.
func New(base logr.Logger) Logger {
	if base.GetSink() == nil {
		base = DefaultLogger()
	}
	return Logger{log: base}
}

// DefaultLogger is a debug-level console logger for code paths that run before
// configuration is loaded.
func DefaultLogger() logr.Logger {
	return NewZap(Options{Level: "debug", Format: "console"})
}

func NewZap(opts Options) logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	if strings.EqualFold(opts.Format, "json") {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(opts.Level))

	zapLogger, err := cfg.Build()
	if err != nil {
		return zapr.NewLogger(zap.NewNop())
	}
	return zapr.NewLogger(zapLogger)
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{log: l.log.WithValues(keysAndValues...)}
}

func (l Logger) WithName(name string) Logger {
	return Logger{log: l.log.WithName(name)}
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

// Debug logs at V(1), which maps to zap's debug level.
func (l Logger) Debug(msg string, keysAndValues ...any) {
	l.log.V(1).Info(msg, keysAndValues...)
}

func (l Logger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(err, msg, keysAndValues...)
}

// Logr returns the underlying logr.Logger for libraries that take one.
func (l Logger) Logr() logr.Logger {
	return l.log
}
