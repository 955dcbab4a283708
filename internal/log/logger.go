package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error", "critical" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	default:
		return LevelWarn
	}
}

// Logger writes leveled messages to a single destination, thread-safe.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Level
}

var (
	defaultLogger   = New(os.Stderr, LevelWarn)
	defaultLoggerMu sync.RWMutex
)

// New creates a logger writing to out, dropping messages below minLevel.
func New(out io.Writer, minLevel Level) *Logger {
	return &Logger{out: out, minLevel: minLevel}
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// Default returns the process-wide logger.
func Default() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetLevel adjusts the minimum level of this logger.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// log writes one line with the given level.
func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] %s: %s\n", timestamp, level.String(), message)
}

// Debug writes a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error writes an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Critical writes a message that always survives level filtering in
// practice: it is the highest level and reports conditions the process
// will exit over.
func (l *Logger) Critical(format string, args ...any) {
	l.log(LevelCritical, format, args...)
}

// Writer returns an io.Writer that logs each write at the given level.
// Useful for draining subprocess output into the log.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Convenience functions on the process-wide logger.

// Debug writes a debug message to the default logger.
func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

// Info writes an informational message to the default logger.
func Info(format string, args ...any) {
	Default().Info(format, args...)
}

// Warn writes a warning to the default logger.
func Warn(format string, args ...any) {
	Default().Warn(format, args...)
}

// Error writes an error message to the default logger.
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

// Critical writes a critical message to the default logger.
func Critical(format string, args ...any) {
	Default().Critical(format, args...)
}

// SetLevel adjusts the minimum level of the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any)    {}
func (NopLogger) Info(_ string, _ ...any)     {}
func (NopLogger) Warn(_ string, _ ...any)     {}
func (NopLogger) Error(_ string, _ ...any)    {}
func (NopLogger) Critical(_ string, _ ...any) {}
