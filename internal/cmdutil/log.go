// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger writing level-tagged lines to dst.
// Timestamps are omitted so runs stay reproducible. quiet keeps errors only.
func NewLogger(dst io.Writer, quiet bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.WarnLevel
	if quiet {
		level = zapcore.ErrorLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(dst), level)
	return zap.New(core)
}

// Warnf logs a formatted warning through l.
func Warnf(l *zap.Logger, format string, a ...any) {
	l.Sugar().Warnf(format, a...)
}
