// Package logging builds the zap logger used by the fpidioms command.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	Debug  bool
	Format string // "json" or "console"
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	switch opts.Format {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	logger := zap.New(core)
	if opts.Debug {
		logger = logger.WithOptions(zap.AddCaller())
	}
	return logger, nil
}

// Progress returns a callback that logs recursion depth at debug level.
func Progress(logger *zap.Logger, name string) func(int64) {
	return func(depth int64) {
		logger.Debug("recursion progress", zap.String("demo", name), zap.Int64("depth", depth))
	}
}
