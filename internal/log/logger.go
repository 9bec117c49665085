// Package log writes leveled lines to the drawer log file.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/footprint-tools/drawer/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
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
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts "debug", "info", "warn" or "error" (any case) to a
// Level. Anything else is LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger appends to a file and is safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	out      io.WriteCloser
	minLevel Level
	enabled  bool
	now      func() time.Time
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init opens the global logger. Calling it again replaces the previous
// logger and closes it.
func Init(logPath string, minLevel Level) error {
	l, err := New(logPath, minLevel)
	if err != nil {
		return err
	}
	defaultLoggerMu.Lock()
	prev := defaultLogger
	defaultLogger = l
	defaultLoggerMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// New opens logPath for appending, creating it and its directory with
// owner-only permissions.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWriter(file, minLevel), nil
}

// NewWriter logs to w. Close closes w.
func NewWriter(w io.WriteCloser, minLevel Level) *Logger {
	return &Logger{out: w, minLevel: minLevel, enabled: true, now: time.Now}
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.out == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Close()
}

// SetEnabled turns output on or off without closing the file.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}

	message := fmt.Sprintf(format, args...)
	line := fmt.Sprintf("[%s] %s: %s\n", l.now().Format("2006-01-02 15:04:05"), level, message)
	if _, err := io.WriteString(l.out, line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Writer adapts the logger to an io.Writer at a fixed level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.logger.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func global() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug logs to the global logger, if any.
func Debug(format string, args ...any) { global().Debug(format, args...) }

// Info logs to the global logger, if any.
func Info(format string, args ...any) { global().Info(format, args...) }

// Warn logs to the global logger, if any.
func Warn(format string, args ...any) { global().Warn(format, args...) }

// Error logs to the global logger, if any.
func Error(format string, args ...any) { global().Error(format, args...) }

// Close closes the global logger.
func Close() error { return global().Close() }

// GetLogger returns the global logger as a domain.Logger. Before Init it
// returns a NopLogger.
func GetLogger() domain.Logger {
	if l := global(); l != nil {
		return l
	}
	return NopLogger{}
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var (
	_ domain.Logger = (*Logger)(nil)
	_ domain.Logger = NopLogger{}
)
