package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setupTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"single line", "side=right\n", []string{"side=right"}},
		{"comments kept", "# note\nside=left\n", []string{"# note", "side=left"}},
		{"CRLF", "a=1\r\nb=2\r\n", []string{"a=1", "b=2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			path := filepath.Join(home, ".drawerrc")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := ReadLines()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			info, err := os.Stat(path)
			require.NoError(t, err)
			require.Equal(t, os.FileMode(0600), info.Mode().Perm())
		})
	}
}

func TestReadLines_SeedsDefaults(t *testing.T) {
	home := setupTempHome(t)

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Contains(t, lines, "side=left")
	require.Contains(t, lines, "animation_ms=1000")
	require.Contains(t, lines, "# color_ui_dim=")
	require.Contains(t, lines, "# Swipe")
	require.FileExists(t, filepath.Join(home, ".drawerrc"))

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "vscode", cfg["refocus_blocklist"])
	require.NotContains(t, cfg, "color_ui_dim")
}

func TestWriteLines_Atomic(t *testing.T) {
	home := setupTempHome(t)

	require.NoError(t, WriteLines([]string{"side=right", "theme=neon"}))
	require.NoError(t, WriteLines([]string{"side=left"}))

	content, err := os.ReadFile(filepath.Join(home, ".drawerrc"))
	require.NoError(t, err)
	require.Equal(t, "side=left\n", string(content))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		key     string
		value   string
		want    []string
		updated bool
	}{
		{"update", []string{"side=left"}, "side", "right", []string{"side=right"}, true},
		{"append", []string{"side=left"}, "theme", "neon", []string{"side=left", "theme=neon"}, false},
		{"keeps inline comment", []string{"side=left # edge"}, "side", "right", []string{"side=right # edge"}, true},
		{"skips commented key", []string{"# side=left"}, "side", "right", []string{"# side=left", "side=right"}, false},
		{"quotes spaces", nil, "theme", "my theme", []string{`theme="my theme"`}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.lines, tt.key, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.updated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	lines := []string{"# header", "side=right", "", "theme=neon", " side = left "}

	got, removed := Unset(lines, "side")
	require.True(t, removed)
	require.Equal(t, []string{"# header", "", "theme=neon"}, got)
	require.Equal(t, "side=right", lines[1], "input is not modified")

	_, removed = Unset(got, "missing")
	require.False(t, removed)
}

func TestGetAndGetAll(t *testing.T) {
	home := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".drawerrc"), []byte("side=right\ncustom=1\n"), 0600))

	v, ok := Get("side")
	require.True(t, ok)
	require.Equal(t, "right", v)

	v, ok = Get("animation_ms")
	require.True(t, ok)
	require.Equal(t, "1000", v)

	_, ok = Get("nope")
	require.False(t, ok)

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "right", all["side"])
	require.Equal(t, "1", all["custom"])
	require.Equal(t, "0.5", all["swipe_commit_fraction"])
}

func TestGetAll_BrokenFileFallsBackToDefaults(t *testing.T) {
	home := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".drawerrc"), []byte("not a pair\n"), 0600))

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "left", all["side"])
}

func TestProvider_SetUnset(t *testing.T) {
	setupTempHome(t)
	p := NewProvider()

	require.NoError(t, p.Set("side", "right"))
	v, _ := p.Get("side")
	require.Equal(t, "right", v)

	require.NoError(t, p.Unset("side"))
	v, _ = p.Get("side")
	require.Equal(t, "left", v)
}

func TestWithLock(t *testing.T) {
	home := setupTempHome(t)
	lockPath := filepath.Join(home, lockFileName)

	sentinel := errors.New("inner")
	err := WithLock(func() error {
		require.FileExists(t, lockPath)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.NoFileExists(t, lockPath)
}

func TestWithLock_RemovesStaleLock(t *testing.T) {
	home := setupTempHome(t)
	lockPath := filepath.Join(home, lockFileName)
	require.NoError(t, os.WriteFile(lockPath, []byte("1"), 0600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	ran := false
	require.NoError(t, WithLock(func() error { ran = true; return nil }))
	require.True(t, ran)
}
