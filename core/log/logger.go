// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type on top of a zap core. Loggers are
//              immutable: every With* method returns a derived logger and
//              leaves the receiver untouched.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: zap backend

package log

import (
	"errors"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	config Config
	level  zap.AtomicLevel
	fields []zap.Field
	zl     *zap.Logger
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger writing JSON at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatJSON,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	l := &Logger{
		config: config,
		level:  zap.NewAtomicLevelAt(config.Level.zapLevel()),
	}
	l.build()
	return l
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{
		config: Config{Level: LevelError, Output: io.Discard},
		level:  zap.NewAtomicLevelAt(zapcore.FatalLevel),
		zl:     zap.NewNop(),
	}
}

func (l *Logger) build() {
	core := zapcore.NewCore(newEncoder(l.config.Format), zapcore.AddSync(l.config.Output), l.level)
	var opts []zap.Option
	if l.config.EnableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
	}
	zl := zap.New(core, opts...)
	if l.config.Name != "" {
		zl = zl.Named(l.config.Name)
	}
	l.zl = zl.With(l.fields...)
}

func (l *Logger) clone() *Logger {
	return &Logger{
		config: l.config,
		level:  zap.NewAtomicLevelAt(l.level.Level()),
		fields: append([]zap.Field(nil), l.fields...),
	}
}

// WithLevel returns a logger with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.config.Level = level
	c.level.SetLevel(level.zapLevel())
	c.build()
	return c
}

// WithFormat returns a logger using a different output format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.config.Format = format
	c.build()
	return c
}

// WithOutput returns a logger writing to a different destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.config.Output = output
	c.build()
	return c
}

// WithName returns a logger with a different name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.config.Name = name
	c.build()
	return c
}

// WithField returns a logger that adds a field to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Field(key, value))
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.fields = append(c.fields, fields.zapFields()...)
	c.build()
	return c
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(zapcore.DebugLevel, message, nil, fields)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(zapcore.InfoLevel, message, nil, fields)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(zapcore.WarnLevel, message, nil, fields)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(zapcore.ErrorLevel, message, nil, fields)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(zapcore.ErrorLevel, message, err, fields)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(zapcore.WarnLevel, message, err, fields)
}

// LogError logs err at a level derived from its severity. Structured errors
// contribute their code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var gzErr *gzerror.Error
	if !errors.As(err, &gzErr) {
		l.log(zapcore.ErrorLevel, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":     gzErr.Code().String(),
		"error_severity": gzErr.Severity().String(),
	}
	if op := gzErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range gzErr.Details() {
		fields["error_"+k] = v
	}

	level := zapcore.ErrorLevel
	switch gzErr.Severity() {
	case gzerror.SeverityLow:
		level = zapcore.InfoLevel
	case gzerror.SeverityMedium:
		level = zapcore.WarnLevel
	}
	l.log(level, err.Error(), nil, []Fields{fields})
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level.Enabled(level.zapLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.config.Level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.config.Name
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

func (l *Logger) log(level zapcore.Level, message string, err error, fields []Fields) {
	ce := l.zl.Check(level, message)
	if ce == nil {
		return
	}
	var zfs []zap.Field
	for _, f := range fields {
		zfs = append(zfs, f.zapFields()...)
	}
	if err != nil {
		zfs = append(zfs, zap.Error(err))
	}
	ce.Write(zfs...)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
