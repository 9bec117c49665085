package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type bufCloser struct {
	strings.Builder
	closed bool
}

func (b *bufCloser) Close() error { b.closed = true; return nil }

func fixedClock(l *Logger) {
	l.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		min  Level
		want []string
	}{
		{LevelDebug, []string{"DEBUG: d", "INFO: i", "WARN: w", "ERROR: e"}},
		{LevelWarn, []string{"WARN: w", "ERROR: e"}},
		{LevelError, []string{"ERROR: e"}},
	}
	for _, tt := range tests {
		t.Run(tt.min.String(), func(t *testing.T) {
			buf := &bufCloser{}
			l := NewWriter(buf, tt.min)
			fixedClock(l)

			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, len(tt.want))
			for i, line := range lines {
				require.Equal(t, "[2026-03-04 05:06:07] "+tt.want[i], line)
			}
		})
	}
}

func TestLogger_FileCreatedPrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "drawer.log")

	l, err := New(path, LevelInfo)
	require.NoError(t, err)
	l.Info("hello %d", 42)
	require.NoError(t, l.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dir, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), dir.Mode().Perm())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "INFO: hello 42")
}

func TestLogger_AppendsAndFixesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawer.log")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0644))

	l, err := New(path, LevelInfo)
	require.NoError(t, err)
	l.Info("next")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "previous\n"))
	require.Contains(t, string(content), "INFO: next")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_Disabled(t *testing.T) {
	buf := &bufCloser{}
	l := NewWriter(buf, LevelDebug)
	l.SetEnabled(false)
	l.Error("dropped")
	require.Empty(t, buf.String())

	l.SetEnabled(true)
	l.Error("kept")
	require.Contains(t, buf.String(), "kept")
}

func TestLogger_Writer(t *testing.T) {
	buf := &bufCloser{}
	l := NewWriter(buf, LevelDebug)

	n, err := l.Writer(LevelWarn).Write([]byte("from writer\n"))
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Contains(t, buf.String(), "WARN: from writer\n")
	require.NotContains(t, buf.String(), "writer\n\n")
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() {
		l.Debug("x")
		l.SetEnabled(true)
		require.NoError(t, l.Close())
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"Error":   LevelError,
		"verbose": LevelWarn,
		"":        LevelWarn,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestGlobalLogger(t *testing.T) {
	require.NotPanics(t, func() { Warn("before init") })

	path := filepath.Join(t.TempDir(), "global.log")
	require.NoError(t, Init(path, LevelDebug))
	t.Cleanup(func() {
		_ = Close()
		defaultLoggerMu.Lock()
		defaultLogger = nil
		defaultLoggerMu.Unlock()
	})

	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
	GetLogger().Info("e")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, want := range []string{"DEBUG: a", "INFO: b", "WARN: c", "ERROR: d", "INFO: e"} {
		require.Contains(t, string(content), want)
	}
}

func TestGetLogger_NopBeforeInit(t *testing.T) {
	_, ok := GetLogger().(NopLogger)
	require.True(t, ok)
	require.NoError(t, NopLogger{}.Close())
}
