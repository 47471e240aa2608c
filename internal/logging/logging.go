// Package logging builds the zap logger shared by the CLI and TUI.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	// Output defaults to stderr so stdout stays machine-readable.
	Output io.Writer
}

func New(opt Options) *zap.Logger {
	out := opt.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(buildEncoder(opt.Format), zapcore.AddSync(out), zap.NewAtomicLevelAt(ParseLevel(opt.Level)))
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

// Nop discards everything.
func Nop() *zap.Logger { return zap.NewNop() }

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	if strings.EqualFold(format, "json") {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if os.Getenv("NO_COLOR") != "" {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
