package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields to be added to a logger
type Fields map[string]interface{}

// Logger contains logger and fields
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

// Options controls how the process logger is built
type Options struct {
	// Debug enables debug level messages
	Debug bool
	// Development switches to the human readable console encoder
	Development bool
	// Service is attached to every message when not empty
	Service string
}

var (
	mu               sync.RWMutex
	zapSugaredLogger *zap.SugaredLogger
)

func init() {
	zapLogger, _ := zap.NewProduction(zap.AddCallerSkip(1))
	zapSugaredLogger = zapLogger.Sugar()
}

// Configure rebuilds the process logger. Loggers obtained before the call keep
// the previous configuration.
func Configure(opts Options) error {
	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	if opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	if opts.Service != "" {
		zapLogger = zapLogger.With(zap.String("service", opts.Service))
	}

	mu.Lock()
	zapSugaredLogger = zapLogger.Sugar()
	mu.Unlock()
	return nil
}

// Log returns an empty field logger
func Log() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return Logger{
		logger: zapSugaredLogger,
		fields: []interface{}{},
	}
}

// WithField add a key/value pair to its fields
func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, 0, len(l.fields)+2)
	fields = append(fields, l.fields...)
	l.fields = append(fields, key, value)
	return l
}

// WithFields add multiple key/value pairs to its fields
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

// Debug log
func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

// Info log
func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

// Warn log
func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

// Error log
func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

// Panic log
func (l Logger) Panic(args ...interface{}) {
	l.logger.With(l.fields...).Panic(args...)
}

// Sync flushes buffered entries of the process logger
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return zapSugaredLogger.Sync()
}
