// Package logger wires a zap core behind the logr API and propagates the
// resulting logger through context. Application code logs through logr;
// Sync flushes the underlying zap logger before exit.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/oakwood-commons/gridx/pkg/settings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Unexported context key type to prevent collisions.
type loggerContextKey struct{}

const (
	CommitKey    = "commit"
	VersionKey   = "version"
	BuildTimeKey = "build_time"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

var (
	once sync.Once

	// globalZapLogger is the underlying *zap.Logger, kept for Sync().
	globalZapLogger *zap.Logger

	// globalLogrLogger is the logr.Logger application code uses when no
	// logger is found in context.
	globalLogrLogger *logr.Logger

	defaultNoopLogger logr.Logger = logr.Discard()
)

// Get initializes the global loggers on first call and returns the logr
// logger. Subsequent calls return the same instance regardless of logLevel.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.TimeKey = TimeStampKey
		encoderCfg.MessageKey = MessageKey

		buildInfo, _ := debug.ReadBuildInfo()
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
		).With(
			[]zapcore.Field{
				zap.String(CommitKey, settings.VersionInformation.Commit),
				zap.String(VersionKey, settings.VersionInformation.BuildVersion),
				zap.String(BuildTimeKey, settings.VersionInformation.BuildTime),
				zap.String(GoVersionKey, buildInfo.GoVersion),
			},
		)

		globalZapLogger = zap.New(core,
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
			zap.WithFatalHook(zapcore.WriteThenPanic),
		)

		gl := zapr.NewLogger(globalZapLogger)
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// WithLogger returns a new context carrying log. The original context is
// returned unchanged when it already carries the same instance.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		if lp == log {
			return ctx
		}
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logger from ctx, falling back to the global
// logger, then to a no-op logger so callers never panic.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	}
	if log := globalLogrLogger; log != nil {
		return log
	}
	return &defaultNoopLogger
}

// Sync flushes buffered log entries; call it before the process exits.
func Sync() {
	if globalZapLogger == nil {
		return
	}
	if err := globalZapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync zap logger: %v\n", err)
	}
}

// isIgnorableSyncError returns true for the Sync errors pipes and TTYs
// produce. Windows consoles return ERROR_INVALID_HANDLE wrapped in an
// *os.PathError that does not compare equal to syscall.EINVAL, hence the
// string match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}

// GetGlobalLogger returns the global logger, or a no-op logger when Get has
// not been called yet.
func GetGlobalLogger() *logr.Logger {
	if globalLogrLogger != nil {
		return globalLogrLogger
	}
	return &defaultNoopLogger
}

// WithValues returns a logger with extra key-value pairs attached.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	nlgr := lgr.WithValues(keysAndValues...)
	return &nlgr
}
