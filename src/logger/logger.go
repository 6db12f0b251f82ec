// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging operations.
// Implementations must not write to standard output.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Errorf formats and reports a failure.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger for the given format, writing to standard error.
// Any format other than "json" yields a CLILogger.
//
// Parameters:
//   - format: "text" or "json"
//   - tool: Executable name attached to structured records
//
// Returns:
//   - Logger: Ready-to-use logger
func New(format, tool string) Logger {
	if strings.EqualFold(format, FormatJSON) {
		return NewStructuredLogger(os.Stderr, tool)
	}
	return NewCLILogger()
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to standard error with timestamps disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Errorf prints a message prefixed with "Error: ".
func (c *CLILogger) Errorf(format string, v ...any) { c.logger.Printf("Error: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// StructuredLogger implements Logger on top of a [zap.Logger] with a JSON encoder.
// Printf and Println emit info records, Errorf emits error records, and
// every record carries a "tool" field.
//
// StructuredLogger is safe for concurrent use by multiple goroutines.
type StructuredLogger struct {
	mu   sync.RWMutex
	tool string
	zl   *zap.Logger
}

// NewStructuredLogger creates a JSON logger writing to writer.
// A nil writer discards all output.
func NewStructuredLogger(writer io.Writer, tool string) *StructuredLogger {
	s := &StructuredLogger{tool: tool}
	s.SetOutput(writer)
	return s
}

func newZap(w io.Writer, tool string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(zap.InfoLevel),
	)

	zl := zap.New(core)
	if tool != "" {
		zl = zl.With(zap.String("tool", tool))
	}
	return zl
}

// Printf formats and logs a message as one JSON record.
func (s *StructuredLogger) Printf(format string, v ...any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.zl.Info(fmt.Sprintf(format, v...))
}

// Println logs its operands, space-separated, as one JSON record.
func (s *StructuredLogger) Println(v ...any) {
	msg := fmt.Sprintln(v...)

	s.mu.RLock()
	defer s.mu.RUnlock()
	s.zl.Info(msg[:len(msg)-1])
}

// Errorf formats and logs a message as one error-level JSON record.
func (s *StructuredLogger) Errorf(format string, v ...any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.zl.Error(fmt.Sprintf(format, v...))
}

// SetOutput redirects subsequent records to w.
func (s *StructuredLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	zl := newZap(w, s.tool)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.zl = zl
}
