package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/drawer/internal/events"
	"github.com/footprint-tools/drawer/internal/store"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := DefaultOptions()

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.JournalEnabled)
	require.Equal(t, "left", opts.Settings.Side)
	require.NotEmpty(t, opts.JournalPath)
	require.Equal(t, "default", opts.StyleConfig["theme"])
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Styler)
	require.Nil(t, app.Journal)
	require.Equal(t, 40, app.Settings.WidthPercent)
}

func TestClose_NilComponents(t *testing.T) {
	app := NewForTesting()
	app.Logger = nil

	require.NoError(t, Close(app))
}

func TestNew_WithOptions(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		LogEnabled:     true,
		LogPath:        filepath.Join(dir, "logs", "drawer.log"),
		JournalEnabled: true,
		JournalPath:    filepath.Join(dir, "journal.db"),
		StyleEnabled:   false,
	}

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.NotNil(t, app.Journal)
	require.NoError(t, app.Journal.Record(events.Event{Source: "nav", Name: "open"}))
	n, err := app.Journal.Count(store.Filter{})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	app.Logger.Error("hello")
	data, err := os.ReadFile(opts.LogPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "ERROR: hello")
}

func TestNew_JournalOff(t *testing.T) {
	app, err := New(Options{JournalEnabled: false, JournalPath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	require.Nil(t, app.Journal)
	require.NoError(t, Close(app))
}

func TestNew_JournalFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := New(Options{JournalEnabled: true, JournalPath: filepath.Join(blocker, "journal.db")})
	require.Error(t, err)
}
