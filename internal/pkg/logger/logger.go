package logger

import (
	"context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global = zap.NewNop().Sugar()

// Init replaces the process logger. Development mode uses the console encoder.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = l.Sugar()
	return nil
}

// SetLogger is used by tests to capture output.
func SetLogger(l *zap.Logger) {
	global = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

func Sync() {
	_ = global.Sync()
}

// WithFields returns a context whose log lines carry the given key/value pairs.
func WithFields(ctx context.Context, keysAndValues ...interface{}) context.Context {
	fields := append(fieldsFrom(ctx), keysAndValues...)
	return context.WithValue(ctx, ctxKey{}, fields)
}

func fieldsFrom(ctx context.Context) []interface{} {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]interface{})
	return append([]interface{}(nil), fields...)
}

func from(ctx context.Context) *zap.SugaredLogger {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return global
	}
	return global.With(fields...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Infof(format, args...)
}

func Info(ctx context.Context, msg string, keysAndValues ...interface{}) {
	from(ctx).Infow(msg, keysAndValues...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	from(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	from(ctx).Errorw(msg, keysAndValues...)
}

func Fatal(ctx context.Context, err error) {
	from(ctx).Fatal(err)
}
