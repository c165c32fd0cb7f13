package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

// Logger wraps zap.Logger
type Logger struct {
	*zap.Logger
}

var (
	global *Logger
	once   sync.Once
)

// Init initializes the global logger
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = &Config{Level: "info"}
	}

	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg.ServiceName != "" {
		opts = append(opts, zap.Fields(zap.String("service", cfg.ServiceName)))
	}

	l, err := zapCfg.Build(opts...)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	global = &Logger{Logger: l}
	return nil
}

// Get returns the global logger, initializing a default one if needed
func Get() *Logger {
	once.Do(func() {
		if global == nil {
			l, _ := zap.NewProduction(zap.AddCallerSkip(1))
			global = &Logger{Logger: l}
		}
	})
	return global
}

// Sync flushes any buffered log entries
func Sync() {
	if global != nil {
		_ = global.Logger.Sync()
	}
}

// Info logs a message at info level on the global logger
func Info(msg string, fields ...zap.Field) {
	Get().Logger.Info(msg, fields...)
}

// Warn logs a message at warn level on the global logger
func Warn(msg string, fields ...zap.Field) {
	Get().Logger.Warn(msg, fields...)
}

// Error logs a message at error level on the global logger
func Error(msg string, fields ...zap.Field) {
	Get().Logger.Error(msg, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.Logger.Error(msg, fields...)
}

// Fatal logs a message at fatal level and exits
func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.Logger.Fatal(msg, fields...)
}
