// Package log provides structured logging for framelift.
//
// Two logger variants are available:
//   - Logger: Non-sugared zap.Logger for the pipeline (structured fields)
//   - SugaredLogger: Printf-style logging for CLI surfaces
//
// Use Logger.Sugar() to obtain a SugaredLogger when needed.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with capture context. All entries for one invocation
// carry the input path and capture id so interleaved invocations remain
// attributable.
type Logger struct {
	zap *zap.Logger
}

// SugaredLogger provides printf-style logging for CLI surfaces.
type SugaredLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger at the given level writing JSON to os.Stderr.
func New(level zapcore.Level) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a logger writing to the specified writer.
func NewWithWriter(level zapcore.Level, w io.Writer) *Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return &Logger{zap: zap.New(core)}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
}

// WithCapture returns a logger whose entries carry capture identity.
func (l *Logger) WithCapture(input, captureID string) *Logger {
	return &Logger{zap: l.zap.With(
		zap.String("input", input),
		zap.String("capture_id", captureID),
	)}
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields ...zap.Field) {
	l.zap.Debug(message, fields...)
}

// Info logs an info message.
func (l *Logger) Info(message string, fields ...zap.Field) {
	l.zap.Info(message, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields ...zap.Field) {
	l.zap.Warn(message, fields...)
}

// Error logs an error message.
func (l *Logger) Error(message string, fields ...zap.Field) {
	l.zap.Error(message, fields...)
}

// Sugar returns a SugaredLogger for printf-style logging.
func (l *Logger) Sugar() *SugaredLogger {
	return &SugaredLogger{sugar: l.zap.Sugar()}
}

// Debugf logs a debug message with printf-style formatting.
func (s *SugaredLogger) Debugf(template string, args ...any) {
	s.sugar.Debugf(template, args...)
}

// Infof logs an info message with printf-style formatting.
func (s *SugaredLogger) Infof(template string, args ...any) {
	s.sugar.Infof(template, args...)
}

// Warnf logs a warning message with printf-style formatting.
func (s *SugaredLogger) Warnf(template string, args ...any) {
	s.sugar.Warnf(template, args...)
}

// Errorf logs an error message with printf-style formatting.
func (s *SugaredLogger) Errorf(template string, args ...any) {
	s.sugar.Errorf(template, args...)
}
