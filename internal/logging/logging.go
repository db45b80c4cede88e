// Package logging builds the zap logger shared by all components.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger flavour.
type Options struct {
	// Debug switches to a development console logger at debug level.
	Debug bool

	// Quiet raises the level to error.
	Quiet bool

	// Out receives log lines. Defaults to stderr.
	Out io.Writer
}

// New builds a logger. Debug output is human-readable; everything else is
// JSON at warn level so normal command output stays clean.
func New(opts Options) *zap.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var (
		encCfg zapcore.EncoderConfig
		enc    zapcore.Encoder
		level  zapcore.Level
	)

	switch {
	case opts.Debug:
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
		level = zapcore.DebugLevel
	default:
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
		level = zapcore.WarnLevel
		if opts.Quiet {
			level = zapcore.ErrorLevel
		}
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))
	if opts.Debug {
		return zap.New(core, zap.AddCaller())
	}
	return zap.New(core)
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
